package model_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/beamplot/internal/domain/model"
)

func TestFrequencyGrid(t *testing.T) {
	Convey("Given a 13x20 pad grid", t, func() {
		g := model.NewFrequencyGrid(13, 20)

		Convey("Then it starts zeroed with the right shape", func() {
			So(len(g.Cells), ShouldEqual, 13*20)
			So(g.At(12, 19), ShouldEqual, 0)
		})

		Convey("When channels are mapped to cells", func() {
			Convey("Then numbering is row-major", func() {
				r, c := g.CellForChannel(0)
				So(r, ShouldEqual, 0)
				So(c, ShouldEqual, 0)

				r, c = g.CellForChannel(19)
				So(r, ShouldEqual, 0)
				So(c, ShouldEqual, 19)

				r, c = g.CellForChannel(20)
				So(r, ShouldEqual, 1)
				So(c, ShouldEqual, 0)

				r, c = g.CellForChannel(259)
				So(r, ShouldEqual, 12)
				So(c, ShouldEqual, 19)
			})
		})

		Convey("When cells are mutated", func() {
			g.Add(3, 4, 2)
			g.Add(3, 4, 1)
			g.Set(0, 0, 8)
			g.Scale(0.5)

			Convey("Then values reflect the operations", func() {
				So(g.At(3, 4), ShouldEqual, 1.5)
				So(g.At(0, 0), ShouldEqual, 4)
			})
		})
	})
}

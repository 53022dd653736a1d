package heatmap_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/beamplot/internal/domain/heatmap"
	"github.com/okian/beamplot/internal/domain/model"
)

func TestNormalize(t *testing.T) {
	Convey("Given a grid with empty and populated cells", t, func() {
		g := model.NewFrequencyGrid(2, 3)
		g.Set(0, 0, 0.5)
		g.Set(0, 1, 0.01)
		// remaining cells stay zero

		Convey("When normalized linearly", func() {
			d := heatmap.Normalize(g, false)

			Convey("Then zero cells become the under-range sentinel", func() {
				So(d.Grid.At(0, 2), ShouldEqual, heatmap.EmptyCellSentinel)
				So(d.Grid.At(1, 0), ShouldEqual, heatmap.EmptyCellSentinel)
			})

			Convey("Then small nonzero cells are preserved, not masked", func() {
				So(d.Grid.At(0, 1), ShouldEqual, 0.01)
			})

			Convey("Then the display range excludes the sentinel", func() {
				So(d.VMin, ShouldEqual, 0)
				So(d.VMax, ShouldEqual, 0.5)
				So(d.Sentinel, ShouldBeLessThan, d.VMin)
			})

			Convey("Then the input grid is untouched", func() {
				So(g.At(0, 2), ShouldEqual, 0)
			})

			Convey("Then the scale is linear", func() {
				So(d.Scale, ShouldEqual, heatmap.Linear)
			})
		})

		Convey("When normalized with the log flag", func() {
			d := heatmap.Normalize(g, true)
			So(d.Scale, ShouldEqual, heatmap.Log)
		})

		Convey("When an explicit range is requested", func() {
			d := heatmap.Normalize(g, false, heatmap.WithRange(0, 1))
			So(d.VMin, ShouldEqual, 0)
			So(d.VMax, ShouldEqual, 1)
		})
	})

	Convey("Given an entirely empty grid", t, func() {
		d := heatmap.Normalize(model.NewFrequencyGrid(2, 2), false)

		Convey("Then every cell is the sentinel and the range stays sane", func() {
			for _, v := range d.Grid.Cells {
				So(v, ShouldEqual, heatmap.EmptyCellSentinel)
			}
			So(d.VMax, ShouldBeGreaterThan, d.VMin)
		})
	})
}

func TestGeometry(t *testing.T) {
	Convey("Given the fixed pad grid", t, func() {
		Convey("Then row labels are inverted bottom-up", func() {
			labels := heatmap.RowLabels(13)
			So(labels[0], ShouldEqual, 12)
			So(labels[12], ShouldEqual, 0)
		})

		Convey("Then pad boundaries sit at half-integer offsets", func() {
			offsets := heatmap.PadBoundaries(20)
			So(len(offsets), ShouldEqual, 19)
			So(offsets[0], ShouldEqual, 0.5)
			So(offsets[18], ShouldEqual, 18.5)
		})
	})
}

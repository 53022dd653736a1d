package render

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/beamplot/internal/domain/heatmap"
	"github.com/okian/beamplot/internal/domain/model"
)

func TestLogScaleEmptyPads(t *testing.T) {
	Convey("Given a log-scale display whose smallest frequency is below 0.1", t, func() {
		g := model.NewFrequencyGrid(13, 20)
		g.Set(0, 0, 0.05)
		g.Set(5, 5, 0.8)
		d := heatmap.Normalize(g, true)

		grid := padGrid{d: d}
		vmin := grid.rangeMin()

		Convey("Then the populated range floor is log10 of the minimum", func() {
			So(vmin, ShouldAlmostEqual, math.Log10(0.05), 1e-12)
		})

		Convey("Then empty pads stay strictly below the range floor", func() {
			// matrix row 1 col 0 is empty; plot row index flips rows
			z := grid.Z(0, g.Rows-1-1)
			So(z, ShouldBeLessThan, vmin)
			So(math.IsInf(z, -1), ShouldBeTrue)
		})

		Convey("Then populated pads land inside the range", func() {
			z := grid.Z(0, g.Rows-1)
			So(z, ShouldAlmostEqual, math.Log10(0.05), 1e-12)
			So(z, ShouldBeGreaterThanOrEqualTo, vmin)
			So(z, ShouldBeLessThanOrEqualTo, grid.rangeMax())
		})
	})

	Convey("Given a linear display", t, func() {
		g := model.NewFrequencyGrid(2, 2)
		g.Set(0, 0, 0.4)
		d := heatmap.Normalize(g, false, heatmap.WithRange(0, 1))
		grid := padGrid{d: d}

		Convey("Then empty pads are still below the range floor", func() {
			So(grid.Z(1, 1), ShouldBeLessThan, grid.rangeMin())
		})
	})
}

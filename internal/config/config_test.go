package config_test

import (
	"testing"

	"github.com/okian/beamplot/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.ResultsDir, convey.ShouldEqual, "Results")
			convey.So(cfg.RunNumber, convey.ShouldEqual, 1)
			convey.So(cfg.Layers, convey.ShouldResemble, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
			convey.So(cfg.GridRows, convey.ShouldEqual, 13)
			convey.So(cfg.GridCols, convey.ShouldEqual, 20)
			convey.So(cfg.ShowerBinStep, convey.ShouldEqual, 100)
			convey.So(cfg.LayerBinStep, convey.ShouldEqual, 10)
			convey.So(cfg.ChannelBinStep, convey.ShouldEqual, 1)
			convey.So(cfg.HeatmapLog, convey.ShouldBeFalse)
			convey.So(cfg.WorkerCount, convey.ShouldEqual, 1)
		})
	})
}

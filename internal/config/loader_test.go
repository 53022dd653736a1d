package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/beamplot/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.ResultsDir, convey.ShouldEqual, "Results")
				convey.So(cfg.GridRows, convey.ShouldEqual, 13)
				convey.So(cfg.GridCols, convey.ShouldEqual, 20)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("BEAMPLOT_RESULTS_DIR", "out")
			_ = os.Setenv("BEAMPLOT_RUN_NUMBER", "42")
			_ = os.Setenv("BEAMPLOT_WORKER_COUNT", "4")
			_ = os.Setenv("BEAMPLOT_HEATMAP_LOG", "true")
			_ = os.Setenv("BEAMPLOT_SHOWER_BIN_STEP", "50")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.ResultsDir, convey.ShouldEqual, "out")
				convey.So(cfg.RunNumber, convey.ShouldEqual, 42)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
				convey.So(cfg.HeatmapLog, convey.ShouldBeTrue)
				convey.So(cfg.ShowerBinStep, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			clearConfigEnvVars()

			dir := t.TempDir()
			path := filepath.Join(dir, "beamplot.yaml")
			data := []byte("results_dir: from_file\nrun_number: 7\nlayers: [0, 1, 2]\n")
			convey.So(os.WriteFile(path, data, 0o600), convey.ShouldBeNil)

			_ = os.Setenv("BEAMPLOT_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.ResultsDir, convey.ShouldEqual, "from_file")
				convey.So(cfg.RunNumber, convey.ShouldEqual, 7)
				convey.So(cfg.Layers, convey.ShouldResemble, []int{0, 1, 2})
			})
		})

		convey.Convey("When the config is invalid", func() {
			_ = os.Setenv("BEAMPLOT_GRID_ROWS", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then Load fails with ErrInvalidConfig", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"BEAMPLOT_CONFIG",
		"BEAMPLOT_RESULTS_DIR",
		"BEAMPLOT_RUN_NUMBER",
		"BEAMPLOT_WORKER_COUNT",
		"BEAMPLOT_HEATMAP_LOG",
		"BEAMPLOT_SHOWER_BIN_STEP",
		"BEAMPLOT_GRID_ROWS",
	} {
		_ = os.Unsetenv(key)
	}
}

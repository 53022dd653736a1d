package logger_test

import (
	"context"
	"testing"

	"github.com/okian/beamplot/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		err := logger.Init()
		So(err, ShouldBeNil)

		Convey("Then Get returns a usable logger", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)

			// Should not panic with assorted field types.
			ctx := context.Background()
			l.Info(ctx, "info message", logger.String("k", "v"), logger.Int("n", 1))
			l.Debug(ctx, "debug message", logger.Float64("f", 1.5))
			l.Warn(ctx, "warn message", logger.Int64("i", 2))
		})

		Convey("Then Named returns a scoped logger", func() {
			l := logger.Named("render")
			So(l, ShouldNotBeNil)
			l.Info(context.Background(), "scoped message")
		})

		Convey("When setting the level from a string", func() {
			Convey("Then valid levels are accepted", func() {
				So(logger.SetLevelString("debug"), ShouldBeNil)
				So(logger.SetLevelString("INFO"), ShouldBeNil)
				So(logger.SetLevelString("warning"), ShouldBeNil)
				So(logger.SetLevelString("error"), ShouldBeNil)
				So(logger.SetLevelString(""), ShouldBeNil)
			})

			Convey("Then unknown levels are rejected", func() {
				So(logger.SetLevelString("verbose"), ShouldNotBeNil)
			})
		})
	})
}

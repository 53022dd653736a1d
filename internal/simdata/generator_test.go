package simdata_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/beamplot/internal/adapters/csvload"
	"github.com/okian/beamplot/internal/domain/model"
	"github.com/okian/beamplot/internal/simdata"
	"github.com/okian/beamplot/pkg/logger"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func testConfig() simdata.Config {
	return simdata.Config{
		NumEvents:  25,
		Layers:     10,
		GridRows:   13,
		GridCols:   20,
		BeamEnergy: 400,
		Seed:       7,
	}
}

func TestGenerate(t *testing.T) {
	Convey("Given a seeded generator", t, func() {
		gen := simdata.NewGenerator(testConfig())

		Convey("When generating a dataset", func() {
			hits, stats, err := gen.Generate(context.Background())

			Convey("Then it produces hits for every event and layer", func() {
				So(err, ShouldBeNil)
				So(stats.EventsGenerated, ShouldEqual, 25)
				So(stats.HitsGenerated, ShouldEqual, len(hits))
				So(len(hits), ShouldBeGreaterThan, 25*10)

				events := map[int64]bool{}
				layers := map[int]bool{}
				for _, h := range hits {
					events[h.EventID] = true
					layers[h.Layer] = true
					So(h.Channel, ShouldBeBetweenOrEqual, 0, 13*20-1)
					So(h.Amplitude, ShouldBeGreaterThan, 0)
					So(h.ShowerEnergy, ShouldBeGreaterThan, 0)
				}
				So(len(events), ShouldEqual, 25)
				So(len(layers), ShouldEqual, 10)
			})
		})

		Convey("When generating twice with the same seed", func() {
			first, _, err1 := simdata.NewGenerator(testConfig()).Generate(context.Background())
			second, _, err2 := simdata.NewGenerator(testConfig()).Generate(context.Background())

			Convey("Then the datasets are identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestRunWritesLoadableCSV(t *testing.T) {
	Convey("Given a generator run writing to a temp file", t, func() {
		cfg := testConfig()
		cfg.NumEvents = 5
		cfg.OutputFile = filepath.Join(t.TempDir(), "hits.csv")

		Convey("When Run completes", func() {
			stats, err := simdata.Run(context.Background(), cfg)
			So(err, ShouldBeNil)
			So(stats.HitsGenerated, ShouldBeGreaterThan, 0)

			Convey("Then the CSV loader can read the output back", func() {
				data, readErr := os.ReadFile(cfg.OutputFile)
				So(readErr, ShouldBeNil)
				So(strings.HasPrefix(string(data), "event_id,layer_id,channel_id,amplitude,shower_energy"), ShouldBeTrue)

				sink := &collector{}
				n, loadErr := csvload.NewLoader().LoadFile(context.Background(), cfg.OutputFile, sink)
				So(loadErr, ShouldBeNil)
				So(n, ShouldEqual, stats.HitsGenerated)
			})
		})
	})
}

type collector struct {
	hits []model.HitRecord
}

func (c *collector) Append(_ context.Context, hit model.HitRecord) {
	c.hits = append(c.hits, hit)
}

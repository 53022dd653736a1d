package csvload_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/beamplot/internal/adapters/csvload"
	"github.com/okian/beamplot/internal/domain/model"
	"github.com/okian/beamplot/pkg/logger"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

type sliceSink struct {
	hits []model.HitRecord
}

func (s *sliceSink) Append(_ context.Context, hit model.HitRecord) {
	s.hits = append(s.hits, hit)
}

// countingLogger counts info messages so tests can check the load is reported.
type countingLogger struct {
	infos int
}

func (l *countingLogger) Info(_ context.Context, _ string, _ ...logger.Field) { l.infos++ }
func (l *countingLogger) Error(_ context.Context, _ string, _ ...logger.Field) {}
func (l *countingLogger) Debug(_ context.Context, _ string, _ ...logger.Field) {}
func (l *countingLogger) Warn(_ context.Context, _ string, _ ...logger.Field)  {}
func (l *countingLogger) Named(_ string) logger.Logger                         { return l }

func TestLoadFile(t *testing.T) {
	Convey("Given a dataset file on disk", t, func() {
		data := strings.Join([]string{
			"event_id, layer_id, channel_id, amplitude, shower_energy",
			"1, 0, 5, 12.5, 340",
			"2, 1, 8, 4.0, 120",
		}, "\n")
		path := filepath.Join(t.TempDir(), "hits.csv")
		So(os.WriteFile(path, []byte(data), 0o600), ShouldBeNil)

		log := &countingLogger{}
		loader := csvload.NewLoader(csvload.WithLogger(log))
		sink := &sliceSink{}

		Convey("When loading the file", func() {
			n, err := loader.LoadFile(context.Background(), path, sink)

			Convey("Then the hits arrive and the load is reported", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)
				So(sink.hits, ShouldHaveLength, 2)
				So(log.infos, ShouldEqual, 1)
			})
		})
	})

	Convey("Given a missing file", t, func() {
		loader := csvload.NewLoader(csvload.WithLogger(&countingLogger{}))

		Convey("When loading", func() {
			_, err := loader.LoadFile(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), &sliceSink{})

			Convey("Then it reports the open failure", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a well formed dataset", t, func() {
		data := strings.Join([]string{
			"event_id, layer_id, channel_id, amplitude, shower_energy",
			"1, 0, 5, 12.5, 340",
			"1, 2, 19, 7.25, 340",
			"2, 0, 5, 3.0, 120",
		}, "\n")

		loader := csvload.NewLoader()
		sink := &sliceSink{}

		Convey("When loading", func() {
			n, err := loader.Load(context.Background(), strings.NewReader(data), sink)

			Convey("Then every record parses into a hit", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 3)
				So(sink.hits, ShouldHaveLength, 3)
				So(sink.hits[0], ShouldResemble, model.HitRecord{
					EventID: 1, Layer: 0, Channel: 5, Amplitude: 12.5, ShowerEnergy: 340,
				})
				So(sink.hits[2].EventID, ShouldEqual, 2)
			})
		})
	})

	Convey("Given a dataset missing a required column", t, func() {
		data := "event_id, layer_id, amplitude, shower_energy\n1, 0, 12.5, 340\n"
		loader := csvload.NewLoader()

		Convey("When loading", func() {
			_, err := loader.Load(context.Background(), strings.NewReader(data), &sliceSink{})

			Convey("Then it reports a header error", func() {
				So(err, ShouldWrap, csvload.ErrBadHeader)
			})
		})
	})

	Convey("Given a dataset with a malformed value", t, func() {
		data := "event_id, layer_id, channel_id, amplitude, shower_energy\n1, 0, 5, not-a-number, 340\n"
		loader := csvload.NewLoader()

		Convey("When loading", func() {
			_, err := loader.Load(context.Background(), strings.NewReader(data), &sliceSink{})

			Convey("Then it reports a record error", func() {
				So(err, ShouldWrap, csvload.ErrBadRecord)
			})
		})
	})

	Convey("Given columns in a shuffled order", t, func() {
		data := "shower_energy, channel_id, event_id, amplitude, layer_id\n50, 3, 9, 1.5, 4\n"
		loader := csvload.NewLoader()
		sink := &sliceSink{}

		Convey("When loading", func() {
			n, err := loader.Load(context.Background(), strings.NewReader(data), sink)

			Convey("Then the header mapping is respected", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)
				So(sink.hits[0], ShouldResemble, model.HitRecord{
					EventID: 9, Layer: 4, Channel: 3, Amplitude: 1.5, ShowerEnergy: 50,
				})
			})
		})
	})

	Convey("Given a header with no rows", t, func() {
		data := "event_id, layer_id, channel_id, amplitude, shower_energy\n"
		loader := csvload.NewLoader()

		Convey("When loading", func() {
			_, err := loader.Load(context.Background(), strings.NewReader(data), &sliceSink{})

			Convey("Then it reports an empty dataset", func() {
				So(err, ShouldWrap, csvload.ErrEmptyDataset)
			})
		})
	})
}

package repository_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/beamplot/internal/adapters/repository"
	"github.com/okian/beamplot/internal/domain/model"
)

func TestHitStore(t *testing.T) {
	Convey("Given a store loaded with two events across two layers", t, func() {
		ctx := context.Background()
		s := repository.NewHitStore(repository.WithCapacity(16))

		rows := []model.HitRecord{
			{EventID: 1, Layer: 0, Channel: 3, Amplitude: 10, ShowerEnergy: 100},
			{EventID: 1, Layer: 0, Channel: 4, Amplitude: 20, ShowerEnergy: 100},
			{EventID: 1, Layer: 1, Channel: 3, Amplitude: 7, ShowerEnergy: 100},
			{EventID: 2, Layer: 0, Channel: 3, Amplitude: 5, ShowerEnergy: 50},
		}
		for _, r := range rows {
			s.Append(ctx, r)
		}

		Convey("Then sizes reflect the dataset", func() {
			So(s.Len(ctx), ShouldEqual, 4)
			So(s.EventCount(ctx), ShouldEqual, 2)
		})

		Convey("Then layer access returns every hit of that layer only", func() {
			So(s.LayerAmplitudes(ctx, 0), ShouldResemble, []float64{10, 20, 5})
			So(s.LayerAmplitudes(ctx, 1), ShouldResemble, []float64{7})
			So(len(s.LayerHits(ctx, 0)), ShouldEqual, 3)
		})

		Convey("Then channel access is scoped to one pad in one layer", func() {
			So(s.ChannelAmplitudes(ctx, 0, 3), ShouldResemble, []float64{10, 5})
			So(s.ChannelAmplitudes(ctx, 1, 3), ShouldResemble, []float64{7})
			So(s.ChannelAmplitudes(ctx, 0, 9), ShouldBeEmpty)
		})

		Convey("Then an unknown layer yields an empty sample, not an error", func() {
			So(s.LayerAmplitudes(ctx, 99), ShouldBeEmpty)
		})

		Convey("Then ForEach visits rows in insertion order", func() {
			var seen []int64
			s.ForEach(ctx, func(h model.HitRecord) {
				seen = append(seen, h.EventID)
			})
			So(seen, ShouldResemble, []int64{1, 1, 1, 2})
		})
	})
}

package dedupe_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/beamplot/internal/domain/dedupe"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a fresh deduper", t, func() {
		d := dedupe.NewInMemoryDeduper()
		ctx := context.Background()

		Convey("When a key is recorded twice", func() {
			first := d.SeenAndRecord(ctx, dedupe.EventKey(42))
			second := d.SeenAndRecord(ctx, dedupe.EventKey(42))

			Convey("Then only the first record is new", func() {
				So(first, ShouldBeFalse)
				So(second, ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When event and event-channel keys overlap numerically", func() {
			So(d.SeenAndRecord(ctx, dedupe.EventKey(7)), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, dedupe.EventChannelKey(7, 0)), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, dedupe.EventChannelKey(7, 1)), ShouldBeFalse)

			Convey("Then they are tracked independently", func() {
				So(d.Size(), ShouldEqual, 3)
			})
		})

		Convey("When the same channel fires in different events", func() {
			So(d.SeenAndRecord(ctx, dedupe.EventChannelKey(1, 5)), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, dedupe.EventChannelKey(2, 5)), ShouldBeFalse)

			Convey("Then both are counted", func() {
				So(d.Size(), ShouldEqual, 2)
			})
		})
	})
}

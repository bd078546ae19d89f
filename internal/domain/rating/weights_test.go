package rating_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/elorun/internal/domain/model"
	"github.com/okian/elorun/internal/domain/rating"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeriesWeights(t *testing.T) {
	Convey("Given series weights", t, func() {
		weights := rating.SeriesWeights{Bo1: 1.0, Bo3: 1.5, Bo5: 2.0}

		Convey("When resolving each known kind", func() {
			w1, err1 := weights.WeightFor(model.SeriesBo1)
			w3, err3 := weights.WeightFor(model.SeriesBo3)
			w5, err5 := weights.WeightFor(model.SeriesBo5)

			So(err1, ShouldBeNil)
			So(err3, ShouldBeNil)
			So(err5, ShouldBeNil)
			So(w1, ShouldEqual, 1.0)
			So(w3, ShouldEqual, 1.5)
			So(w5, ShouldEqual, 2.0)
		})

		Convey("When resolving an unknown kind", func() {
			_, err := weights.WeightFor(model.SeriesKind("Bo9"))

			So(errors.Is(err, model.ErrUnknownSeries), ShouldBeTrue)
		})

		Convey("When validating finite weights", func() {
			So(weights.Validate(), ShouldBeNil)
		})

		Convey("When validating a non-finite weight", func() {
			bad := rating.SeriesWeights{Bo1: 1.0, Bo3: math.NaN(), Bo5: 2.0}

			So(errors.Is(bad.Validate(), rating.ErrNonFiniteValue), ShouldBeTrue)
		})
	})
}

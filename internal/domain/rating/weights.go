package rating

import (
	"fmt"

	"github.com/okian/elorun/internal/domain/model"
)

// SeriesWeights holds the score multiplier for each series kind.
type SeriesWeights struct {
	Bo1 float64
	Bo3 float64
	Bo5 float64
}

// WeightFor returns the multiplier for the given series kind. Unknown kinds
// are rejected at the JSON boundary and should never reach here; the error
// return keeps the lookup total anyway.
func (w SeriesWeights) WeightFor(kind model.SeriesKind) (float64, error) {
	switch kind {
	case model.SeriesBo1:
		return w.Bo1, nil
	case model.SeriesBo3:
		return w.Bo3, nil
	case model.SeriesBo5:
		return w.Bo5, nil
	default:
		return 0, fmt.Errorf("%w: %q", model.ErrUnknownSeries, kind)
	}
}

// Validate reports a configuration error if any weight is not a finite number.
func (w SeriesWeights) Validate() error {
	for _, v := range []float64{w.Bo1, w.Bo3, w.Bo5} {
		if !isFinite(v) {
			return fmt.Errorf("%w: series weight %v", ErrNonFiniteValue, v)
		}
	}
	return nil
}

package statistics

import (
	"github.com/fractalfin/quant/pkg/datatype/floats"
)

// Returns computes simple period returns p[i]/p[i-1] - 1. The result has
// length len(prices)-1 and alignment offset 1; it is empty for fewer than two
// prices. A zero price produces an infinite return rather than an error.
func Returns(prices []float64) floats.Slice {
	if len(prices) < 2 {
		return nil
	}

	values := make(floats.Slice, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		values.Push(prices[i]/prices[i-1] - 1)
	}

	return values
}

// Momentum is the trailing return over the last lookback samples:
// prices[len-1]/prices[len-lookback] - 1. It returns zero when the series is
// shorter than the lookback.
func Momentum(prices []float64, lookback int) float64 {
	if lookback <= 0 || len(prices) < lookback {
		return 0.0
	}

	base := prices[len(prices)-lookback]
	return prices[len(prices)-1]/base - 1
}

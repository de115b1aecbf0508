package statistics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Volatility annualizes the sample standard deviation of period returns.
//
// @param returns (float64 slice): Series of profit/loss fraction per interval
// @param periods (int): Freq. of returns (252/365 for daily, 12 for monthly)
func Volatility(returns []float64, periods int) float64 {
	if len(returns) < 2 || periods <= 0 {
		return 0.0
	}

	return stat.StdDev(returns, nil) * math.Sqrt(float64(periods))
}

// MaxDrawdown is the largest peak-to-trough decline of the value series,
// expressed as a fraction of the peak. Points observed before the first
// positive peak carry no drawdown.
func MaxDrawdown(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	peak := values[0]
	maxDrawdown := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}

		// no ratio until the series has seen a non-zero peak
		if peak == 0 {
			continue
		}

		drawdown := (peak - v) / peak
		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	return maxDrawdown
}

// ValueAtRisk is the historical VaR of the return series at the given
// confidence level: VaR 95 is the 5th percentile of observed returns, a
// negative number for any series with meaningful downside.
func ValueAtRisk(returns []float64, confidence float64) float64 {
	if len(returns) == 0 || confidence <= 0 || confidence >= 1 {
		return 0.0
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	return stat.Quantile(1-confidence, stat.LinInterp, sorted, nil)
}

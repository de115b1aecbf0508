package statistics

import (
	"math"
)

// Summary bundles the performance and risk figures computed from one value
// series, in the shape portfolio clients consume.
type Summary struct {
	TotalReturn      float64 `json:"total_return"`
	AnnualizedReturn float64 `json:"annualized_return"`
	Volatility       float64 `json:"volatility"`
	SharpeRatio      float64 `json:"sharpe_ratio"`
	MaxDrawdown      float64 `json:"max_drawdown"`
	ValueAtRisk95    float64 `json:"var_95"`
}

// Summarize computes the full metric set over a price or equity series.
// Fewer than two samples yield the zero Summary.
func Summarize(prices []float64, rf float64, periods int) Summary {
	if len(prices) < 2 {
		return Summary{}
	}

	returns := Returns(prices)
	totalReturn := prices[len(prices)-1]/prices[0] - 1

	return Summary{
		TotalReturn:      totalReturn,
		AnnualizedReturn: math.Pow(1+totalReturn, float64(periods)/float64(len(prices))) - 1,
		Volatility:       Volatility(returns, periods),
		SharpeRatio:      Sharpe(returns, rf, periods),
		MaxDrawdown:      MaxDrawdown(prices),
		ValueAtRisk95:    ValueAtRisk(returns, 0.95),
	}
}

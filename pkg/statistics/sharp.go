package statistics

import (
	"github.com/fractalfin/quant/pkg/datatype/floats"
)

// Sharpe calculates the sharpe ratio of excess returns.
//
// @param returns (float64 slice): Series of profit/loss fraction per interval
// @param rf (float): Risk-free rate expressed as a yearly (annualized) return
// @param periods (int): Freq. of returns (252/365 for daily, 12 for monthly)
func Sharpe(returns []float64, rf float64, periods int) float64 {
	vol := Volatility(returns, periods)
	if vol == 0 {
		return 0.0
	}

	annualized := floats.Slice(returns).Mean() * float64(periods)
	return (annualized - rf) / vol
}

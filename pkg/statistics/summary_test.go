package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	var Delta = 1e-12

	// two samples spanning exactly one year of periods: the annualized
	// return equals the total return and the single observed return is
	// too short for a deviation
	got := Summarize([]float64{100, 121}, 0, 2)
	assert.InDelta(t, 0.21, got.TotalReturn, Delta)
	assert.InDelta(t, 0.21, got.AnnualizedReturn, Delta)
	assert.Equal(t, 0.0, got.Volatility)
	assert.Equal(t, 0.0, got.SharpeRatio)
	assert.Equal(t, 0.0, got.MaxDrawdown)
	assert.InDelta(t, 0.21, got.ValueAtRisk95, Delta)
}

func TestSummarize_Consistency(t *testing.T) {
	prices := []float64{100, 110, 99, 108.9, 103.455, 114.9}
	returns := Returns(prices)

	got := Summarize(prices, 0.02, 252)
	assert.Equal(t, Volatility(returns, 252), got.Volatility)
	assert.Equal(t, Sharpe(returns, 0.02, 252), got.SharpeRatio)
	assert.Equal(t, MaxDrawdown(prices), got.MaxDrawdown)
	assert.Equal(t, ValueAtRisk(returns, 0.95), got.ValueAtRisk95)
	assert.InDelta(t, prices[5]/prices[0]-1, got.TotalReturn, 1e-12)
}

func TestSummarize_Short(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil, 0, 252))
	assert.Equal(t, Summary{}, Summarize([]float64{100}, 0, 252))
}

package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fractalfin/quant/pkg/datatype/floats"
)

// On the linear ramp both EMAs advance one unit per step, so the MACD line is
// the constant gap between them and the histogram vanishes. fast=3 tracks at
// the window mean, slow=4 lags it by exactly 0.5.
func Test_MACD(t *testing.T) {
	var Delta = 1e-9
	prices := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	result := MACD(prices, 3, 4, 3)

	assert.Equal(t, 7, len(result.MACD))
	assert.Equal(t, 5, len(result.Signal))
	assert.Equal(t, 5, len(result.Histogram))

	assert.Equal(t, 3, result.MACDOffset())
	assert.Equal(t, 5, result.SignalOffset())
	assert.Equal(t, 5, result.HistogramOffset())

	for i, v := range result.MACD {
		assert.InDelta(t, 0.5, v, Delta, "macd[%d]", i)
	}
	for i, v := range result.Signal {
		assert.InDelta(t, 0.5, v, Delta, "signal[%d]", i)
	}
	for i, v := range result.Histogram {
		assert.InDelta(t, 0.0, v, Delta, "histogram[%d]", i)
	}
}

/*
python:

import pandas as pd
s = pd.Series([0,1,2,3,4,5,6,7,8,9]*5)
slow = s.ewm(span=26, adjust=False).mean()
fast = s.ewm(span=12, adjust=False).mean()
# pandas seeds from the first sample; here both EMAs are seeded from their
# first window mean, so only the line alignment is comparable
*/
func Test_MACD_Alignment(t *testing.T) {
	var ramp []float64
	for i := 0; i < 50; i++ {
		ramp = append(ramp, float64(i%10))
	}

	result := MACD(ramp, 12, 26, 9)

	// len(prices)-slow+1 MACD values, then the signal EMA trims another
	// signal-1 entries
	assert.Equal(t, 25, len(result.MACD))
	assert.Equal(t, 17, len(result.Signal))
	assert.Equal(t, 17, len(result.Histogram))

	// the MACD line equals the re-aligned EMA difference
	fastEMA := EMA(ramp, 12)
	slowEMA := EMA(ramp, 26)
	shift := 26 - 12
	for i := range result.MACD {
		assert.Equal(t, fastEMA[i+shift]-slowEMA[i], result.MACD[i], "macd[%d]", i)
	}

	// the signal line is the EMA of the MACD line
	assert.Equal(t, EMA(result.MACD, 9), result.Signal)

	// each histogram entry subtracts the signal from the MACD value it is
	// aligned with, never from MACD[i]
	for i := range result.Histogram {
		assert.Equal(t, result.MACD[i+8]-result.Signal[i], result.Histogram[i], "histogram[%d]", i)
	}
}

func Test_MACD_Empty(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	tests := []struct {
		name            string
		prices          []float64
		fast, slow, sig int
	}{
		{name: "empty prices", prices: nil, fast: 12, slow: 26, sig: 9},
		{name: "zero fast", prices: prices, fast: 0, slow: 26, sig: 9},
		{name: "zero slow", prices: prices, fast: 12, slow: 0, sig: 9},
		{name: "zero signal", prices: prices, fast: 12, slow: 26, sig: 0},
		{name: "fast equals slow", prices: prices, fast: 12, slow: 12, sig: 9},
		{name: "fast above slow", prices: prices, fast: 26, slow: 12, sig: 9},
		{name: "shorter than slow", prices: []float64{1, 2, 3, 4, 5}, fast: 3, slow: 6, sig: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MACD(tt.prices, tt.fast, tt.slow, tt.sig)
			assert.Empty(t, result.MACD)
			assert.Empty(t, result.Signal)
			assert.Empty(t, result.Histogram)
		})
	}
}

// A series long enough for the MACD line but not for the signal EMA leaves
// the later lines empty instead of panicking.
func Test_MACD_SaturatingSignal(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5, 6}

	result := MACD(prices, 2, 5, 9)
	assert.Equal(t, 2, len(result.MACD))
	assert.Empty(t, result.Signal)
	assert.Empty(t, result.Histogram)
}

func Test_MACDStream_MatchesBatch(t *testing.T) {
	var ramp []float64
	for i := 0; i < 50; i++ {
		ramp = append(ramp, float64(i%10))
	}

	stream := &MACDStream{FastPeriod: 12, SlowPeriod: 26, SignalPeriod: 9}
	for _, p := range ramp {
		stream.Update(p)
	}

	want := MACD(ramp, 12, 26, 9)
	assert.Equal(t, want.MACD, stream.Values)
	assert.Equal(t, want.Signal, stream.Signal)
	assert.Equal(t, want.Histogram, stream.Histogram)
}

func Test_MACDStream_Callback(t *testing.T) {
	var histograms floats.Slice

	stream := &MACDStream{FastPeriod: 3, SlowPeriod: 4, SignalPeriod: 3}
	stream.OnUpdate(func(macd, signal, histogram float64) {
		histograms.Push(histogram)
	})

	for _, p := range []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		stream.Update(p)
	}

	// emits only once the histogram is warm
	assert.Equal(t, 5, len(histograms))
	for _, h := range histograms {
		assert.InDelta(t, 0.0, h, 1e-9)
	}
}

func Test_MACDStream_InvalidConfig(t *testing.T) {
	stream := &MACDStream{FastPeriod: 26, SlowPeriod: 12, SignalPeriod: 9}
	for _, p := range []float64{1, 2, 3, 4, 5} {
		stream.Update(p)
	}

	assert.Equal(t, 0, stream.Length())
}

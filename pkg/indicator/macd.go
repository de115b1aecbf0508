package indicator

import (
	"github.com/fractalfin/quant/pkg/datatype/floats"
	"github.com/fractalfin/quant/pkg/types"
)

/*
macd implements Moving Average Convergence Divergence (MACD)

- https://www.investopedia.com/terms/m/macd.asp
- https://school.stockcharts.com/doku.php?id=technical_indicators:macd-histogram
*/

// MACDResult carries the three MACD lines. The lines do NOT share alignment:
// each one exposes its own offset and consumers must map indexes through it.
type MACDResult struct {
	MACD      floats.Slice
	Signal    floats.Slice
	Histogram floats.Slice

	FastPeriod   int
	SlowPeriod   int
	SignalPeriod int
}

// MACDOffset is the source index of MACD[0].
func (r MACDResult) MACDOffset() int {
	return r.SlowPeriod - 1
}

// SignalOffset is the source index of Signal[0]. The signal line is an EMA
// over the MACD line, so it starts SignalPeriod-1 entries later.
func (r MACDResult) SignalOffset() int {
	return r.SlowPeriod - 1 + r.SignalPeriod - 1
}

// HistogramOffset is the source index of Histogram[0]. The histogram is
// aligned with the signal line.
func (r MACDResult) HistogramOffset() int {
	return r.SignalOffset()
}

// MACD computes the MACD line, its signal line and the histogram.
//
// The fast EMA starts earlier than the slow one, so the two are re-aligned
// before subtracting: MACD[i] = fastEMA[i+(slow-fast)] - slowEMA[i]. The
// signal line is EMA(MACD, signalPeriod) and the histogram is the MACD line
// minus the signal line over their common range,
// Histogram[i] = MACD[i+signalPeriod-1] - Signal[i].
//
// All three lines are empty when prices is empty, any period is zero, or
// fastPeriod >= slowPeriod.
func MACD(prices []float64, fastPeriod, slowPeriod, signalPeriod int) MACDResult {
	result := MACDResult{
		FastPeriod:   fastPeriod,
		SlowPeriod:   slowPeriod,
		SignalPeriod: signalPeriod,
	}

	if len(prices) == 0 || fastPeriod <= 0 || slowPeriod <= 0 || signalPeriod <= 0 || fastPeriod >= slowPeriod {
		return result
	}

	fastEMA := EMA(prices, fastPeriod)
	slowEMA := EMA(prices, slowPeriod)

	shift := slowPeriod - fastPeriod
	n := min(len(slowEMA), len(fastEMA)-shift)
	for i := 0; i < n; i++ {
		result.MACD.Push(fastEMA[i+shift] - slowEMA[i])
	}

	result.Signal = EMA(result.MACD, signalPeriod)

	m := min(len(result.Signal), len(result.MACD)-(signalPeriod-1))
	for i := 0; i < m; i++ {
		result.Histogram.Push(result.MACD[i+signalPeriod-1] - result.Signal[i])
	}

	return result
}

//go:generate callbackgen -type MACDStream
type MACDStream struct {
	FastPeriod   int
	SlowPeriod   int
	SignalPeriod int

	// Values is the MACD line; Signal and Histogram lag it by
	// SignalPeriod-1 samples.
	Values    floats.Slice
	Signal    floats.Slice
	Histogram floats.Slice

	fastEMA   *EMAStream
	slowEMA   *EMAStream
	signalEMA *EMAStream

	updateCallbacks []func(macd, signal, histogram float64)
}

// Update feeds one price. Update emits only once all three lines are warm;
// afterwards the outputs match MACD() fed the same sequence.
func (inc *MACDStream) Update(value float64) {
	if inc.FastPeriod <= 0 || inc.SlowPeriod <= 0 || inc.SignalPeriod <= 0 || inc.FastPeriod >= inc.SlowPeriod {
		return
	}

	if inc.fastEMA == nil {
		inc.fastEMA = &EMAStream{Window: inc.FastPeriod}
		inc.slowEMA = &EMAStream{Window: inc.SlowPeriod}
		inc.signalEMA = &EMAStream{Window: inc.SignalPeriod}
	}

	inc.fastEMA.Update(value)
	inc.slowEMA.Update(value)

	// the fast EMA warms up first, so the slow EMA gates the MACD line
	if inc.slowEMA.Length() == 0 {
		return
	}

	macd := inc.fastEMA.Last(0) - inc.slowEMA.Last(0)
	inc.Values.Push(macd)

	before := inc.signalEMA.Length()
	inc.signalEMA.Update(macd)
	if inc.signalEMA.Length() == before {
		return
	}

	signal := inc.signalEMA.Last(0)
	inc.Signal.Push(signal)

	histogram := macd - signal
	inc.Histogram.Push(histogram)

	inc.EmitUpdate(macd, signal, histogram)
}

func (inc *MACDStream) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *MACDStream) Index(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *MACDStream) Length() int {
	return len(inc.Values)
}

var _ types.UpdatableSeries = &MACDStream{}

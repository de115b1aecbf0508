package indicator

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/fractalfin/quant/pkg/datatype/floats"
)

/*
boll implements the Bollinger Bands indicator

The Basics of Bollinger Bands
- https://www.investopedia.com/articles/technical/102201.asp

Bollinger Bands
- https://www.investopedia.com/terms/b/bollingerbands.asp
*/

// BollResult carries the three bands plus the per-window standard deviation.
// All four sequences share the SMA alignment: Offset() maps index 0 back to
// the source sequence.
type BollResult struct {
	Up     floats.Slice
	Mid    floats.Slice
	Down   floats.Slice
	StdDev floats.Slice

	Period int
	K      float64
}

// Offset is the source index of each band's first value.
func (r BollResult) Offset() int {
	return r.Period - 1
}

// BollingerBands computes the middle band as SMA(prices, period) and the
// upper/lower bands k standard deviations away. The deviation is the
// population standard deviation of each window taken about the window's SMA
// value, so a constant window collapses all three bands onto the mean.
// Same guards, length and offset as SMA.
func BollingerBands(prices []float64, period int, k float64) BollResult {
	result := BollResult{Period: period, K: k}

	mid := SMA(prices, period)
	if len(mid) == 0 {
		return result
	}

	result.Mid = mid
	result.Up = make(floats.Slice, 0, len(mid))
	result.Down = make(floats.Slice, 0, len(mid))
	result.StdDev = make(floats.Slice, 0, len(mid))

	for i := range mid {
		window := prices[i : i+period]
		std := math.Sqrt(stat.MomentAbout(2, window, mid[i], nil))
		result.StdDev.Push(std)

		band := k * std
		result.Up.Push(mid[i] + band)
		result.Down.Push(mid[i] - band)
	}

	return result
}

//go:generate callbackgen -type BOLLStream
type BOLLStream struct {
	Window int

	// K scales the standard deviation band width, generally 2
	K float64

	SMA      floats.Slice
	StdDev   floats.Slice
	UpBand   floats.Slice
	DownBand floats.Slice

	rawValues floats.Slice
	sum       float64

	updateCallbacks []func(sma, upBand, downBand float64)
}

// Update feeds one price. No bands are produced until a full window has been
// seen; afterwards the outputs match BollingerBands() fed the same sequence.
func (inc *BOLLStream) Update(value float64) {
	if inc.Window <= 0 {
		return
	}

	inc.rawValues.Push(value)
	inc.sum = inc.sum + value
	if len(inc.rawValues) > inc.Window {
		inc.sum = inc.sum - inc.rawValues[0]
		inc.rawValues = inc.rawValues[1:]
	}

	if len(inc.rawValues) < inc.Window {
		return
	}

	sma := inc.sum / float64(inc.Window)
	inc.SMA.Push(sma)

	std := math.Sqrt(stat.MomentAbout(2, inc.rawValues, sma, nil))
	inc.StdDev.Push(std)

	band := inc.K * std
	upBand := sma + band
	inc.UpBand.Push(upBand)

	downBand := sma - band
	inc.DownBand.Push(downBand)

	inc.EmitUpdate(sma, upBand, downBand)
}

func (inc *BOLLStream) LastSMA() float64 {
	return inc.SMA.Last(0)
}

func (inc *BOLLStream) LastStdDev() float64 {
	return inc.StdDev.Last(0)
}

func (inc *BOLLStream) LastUpBand() float64 {
	return inc.UpBand.Last(0)
}

func (inc *BOLLStream) LastDownBand() float64 {
	return inc.DownBand.Last(0)
}

func (inc *BOLLStream) Length() int {
	return len(inc.SMA)
}

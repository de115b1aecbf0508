package indicator

import (
	"math"

	"github.com/fractalfin/quant/pkg/datatype/floats"
	"github.com/fractalfin/quant/pkg/types"
)

/*
rsi implements the Relative Strength Index (RSI) with Wilder smoothing

https://www.investopedia.com/terms/r/rsi.asp
*/

// RSI computes the relative strength index of prices with the given period.
// The seed averages are plain means of the gains and losses over the first
// period deltas; later averages use Wilder smoothing
// avg = (avg*(period-1)+current)/period. The result has length
// len(prices)-period and alignment offset period (one extra sample is
// consumed by the first delta); it is empty when period is zero or
// len(prices) <= period. Values are always within [0, 100]: a window without
// losses yields RS=+Inf and therefore exactly 100, never NaN.
func RSI(prices []float64, period int) floats.Slice {
	if period <= 0 || len(prices) <= period {
		return nil
	}

	values := make(floats.Slice, 0, len(prices)-period)

	var gainSum, lossSum float64
	for i := 1; i <= period; i++ {
		diff := prices[i] - prices[i-1]
		gainSum += math.Max(diff, 0)
		lossSum += -math.Min(diff, 0)
	}

	avgGain := gainSum / float64(period)
	avgLoss := lossSum / float64(period)
	values.Push(rsiValue(avgGain, avgLoss))

	for i := period + 1; i < len(prices); i++ {
		diff := prices[i] - prices[i-1]
		gain := math.Max(diff, 0)
		loss := -math.Min(diff, 0)

		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		values.Push(rsiValue(avgGain, avgLoss))
	}

	return values
}

func rsiValue(avgGain, avgLoss float64) float64 {
	rs := math.Inf(1)
	if avgLoss != 0 {
		rs = avgGain / avgLoss
	}

	return 100.0 - (100.0 / (1.0 + rs))
}

//go:generate callbackgen -type RSIStream
type RSIStream struct {
	Window int
	Values floats.Slice

	PreviousAvgGain float64
	PreviousAvgLoss float64

	last    float64
	count   int
	gainSum float64
	lossSum float64

	updateCallbacks []func(value float64)
}

// Update feeds one price. The first value appears once Window deltas have
// been seen; afterwards the outputs match RSI() fed the same sequence.
func (inc *RSIStream) Update(price float64) {
	if inc.Window <= 0 {
		return
	}

	inc.count++
	if inc.count == 1 {
		inc.last = price
		return
	}

	diff := price - inc.last
	inc.last = price
	gain := math.Max(diff, 0)
	loss := -math.Min(diff, 0)

	switch {
	case inc.count <= inc.Window:
		inc.gainSum += gain
		inc.lossSum += loss
		return

	case inc.count == inc.Window+1:
		inc.gainSum += gain
		inc.lossSum += loss
		inc.PreviousAvgGain = inc.gainSum / float64(inc.Window)
		inc.PreviousAvgLoss = inc.lossSum / float64(inc.Window)

	default:
		inc.PreviousAvgGain = (inc.PreviousAvgGain*float64(inc.Window-1) + gain) / float64(inc.Window)
		inc.PreviousAvgLoss = (inc.PreviousAvgLoss*float64(inc.Window-1) + loss) / float64(inc.Window)
	}

	rsi := rsiValue(inc.PreviousAvgGain, inc.PreviousAvgLoss)
	inc.Values.Push(rsi)
	inc.EmitUpdate(rsi)
}

func (inc *RSIStream) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *RSIStream) Index(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *RSIStream) Length() int {
	return len(inc.Values)
}

var _ types.UpdatableSeries = &RSIStream{}

package indicator

import (
	"github.com/fractalfin/quant/pkg/datatype/floats"
	"github.com/fractalfin/quant/pkg/types"
)

/*
ema implements the Exponential Moving Average (EMA)

https://www.investopedia.com/terms/e/ema.asp
*/

// EMA computes the exponential moving average of prices with the given
// period. The first output is the simple average of the first period samples;
// later outputs follow the recurrence ema = (price-prev)*multiplier + prev
// with multiplier 2/(period+1). Same guards, length and offset as SMA.
func EMA(prices []float64, period int) floats.Slice {
	if period <= 0 || len(prices) < period {
		return nil
	}

	values := make(floats.Slice, 0, len(prices)-period+1)

	sum := 0.0
	for _, p := range prices[:period] {
		sum += p
	}
	prev := sum / float64(period)
	values.Push(prev)

	multiplier := 2.0 / float64(period+1)
	for i := period; i < len(prices); i++ {
		prev = (prices[i]-prev)*multiplier + prev
		values.Push(prev)
	}

	return values
}

//go:generate callbackgen -type EMAStream
type EMAStream struct {
	Window int
	Values floats.Slice

	seedSum   float64
	seedCount int

	updateCallbacks []func(value float64)
}

// Update feeds one sample. The stream stays silent while accumulating the
// seed window; afterwards the outputs match EMA() fed the same sequence.
func (inc *EMAStream) Update(value float64) {
	if inc.Window <= 0 {
		return
	}

	if len(inc.Values) == 0 {
		inc.seedSum += value
		inc.seedCount++
		if inc.seedCount < inc.Window {
			return
		}

		seed := inc.seedSum / float64(inc.Window)
		inc.Values.Push(seed)
		inc.EmitUpdate(seed)
		return
	}

	multiplier := 2.0 / float64(inc.Window+1)
	prev := inc.Values.Last(0)
	ema := (value-prev)*multiplier + prev
	inc.Values.Push(ema)
	inc.EmitUpdate(ema)
}

func (inc *EMAStream) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *EMAStream) Index(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *EMAStream) Length() int {
	return len(inc.Values)
}

var _ types.UpdatableSeries = &EMAStream{}

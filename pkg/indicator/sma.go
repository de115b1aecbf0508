package indicator

import (
	"github.com/fractalfin/quant/pkg/datatype/floats"
	"github.com/fractalfin/quant/pkg/types"
)

/*
sma implements the Simple Moving Average (SMA)

https://www.investopedia.com/terms/s/sma.asp
*/

// SMA computes the simple moving average of prices with the given period.
// The result has length len(prices)-period+1 and alignment offset period-1;
// it is empty when period is zero or the prices are shorter than one window.
//
// The windowed sum is carried across iterations instead of being recomputed,
// so a full pass costs O(len(prices)) regardless of period.
func SMA(prices []float64, period int) floats.Slice {
	if period <= 0 || len(prices) < period {
		return nil
	}

	values := make(floats.Slice, 0, len(prices)-period+1)

	sum := 0.0
	for _, p := range prices[:period] {
		sum += p
	}
	values.Push(sum / float64(period))

	for i := period; i < len(prices); i++ {
		sum = sum + prices[i] - prices[i-period]
		values.Push(sum / float64(period))
	}

	return values
}

//go:generate callbackgen -type SMAStream
type SMAStream struct {
	Window int
	Values floats.Slice

	rawValues floats.Slice
	sum       float64

	updateCallbacks []func(value float64)
}

// Update feeds one sample. No value is produced until a full window has been
// seen; afterwards the outputs match SMA() fed the same sequence.
func (inc *SMAStream) Update(value float64) {
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
	inc.Values.Push(sma)
	inc.EmitUpdate(sma)
}

func (inc *SMAStream) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *SMAStream) Index(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *SMAStream) Length() int {
	return len(inc.Values)
}

var _ types.UpdatableSeries = &SMAStream{}

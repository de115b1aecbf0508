package signal

import (
	"fmt"

	"github.com/fractalfin/quant/pkg/indicator"
	"github.com/fractalfin/quant/pkg/types"
)

const (
	DefaultMACDShort  = 12
	DefaultMACDLong   = 26
	DefaultMACDSignal = 9
)

// MACDRule emits crossover events from MACD histogram sign changes: bullish
// when the histogram turns positive, bearish when it turns negative. Event
// indexes are mapped through the histogram's own alignment offset, which
// trails the MACD line by SignalWindow-1 samples.
type MACDRule struct {
	// Short is the short term period EMA, usually 12
	Short int `json:"short" yaml:"short"`
	// Long is the long term period EMA, usually 26
	Long int `json:"long" yaml:"long"`
	// SignalWindow is the EMA period applied to the MACD line, usually 9
	SignalWindow int `json:"signal" yaml:"signal"`
}

func (r *MACDRule) Defaults() error {
	if r.Short == 0 {
		r.Short = DefaultMACDShort
	}

	if r.Long == 0 {
		r.Long = DefaultMACDLong
	}

	if r.SignalWindow == 0 {
		r.SignalWindow = DefaultMACDSignal
	}

	return nil
}

func (r *MACDRule) Validate() error {
	if r.Short <= 0 || r.Long <= 0 || r.SignalWindow <= 0 {
		return fmt.Errorf("macd periods must be positive, got %d/%d/%d", r.Short, r.Long, r.SignalWindow)
	}

	if r.Short >= r.Long {
		return fmt.Errorf("macd short period %d must be below the long period %d", r.Short, r.Long)
	}

	return nil
}

func (r *MACDRule) Scan(series types.PriceSeries) []Event {
	result := indicator.MACD(series.Closes(), r.Short, r.Long, r.SignalWindow)
	offset := result.HistogramOffset()

	var events []Event
	for i := 1; i < len(result.Histogram); i++ {
		prev, cur := result.Histogram[i-1], result.Histogram[i]
		idx := i + offset

		if prev <= 0 && cur > 0 {
			events = append(events, Event{
				Index: idx,
				Time:  series[idx].Time,
				Type:  MACDBullishCross,
				Value: cur,
			})
		} else if prev >= 0 && cur < 0 {
			events = append(events, Event{
				Index: idx,
				Time:  series[idx].Time,
				Type:  MACDBearishCross,
				Value: cur,
			})
		}
	}

	return events
}

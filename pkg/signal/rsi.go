package signal

import (
	"fmt"

	"github.com/fractalfin/quant/pkg/indicator"
	"github.com/fractalfin/quant/pkg/types"
)

const (
	DefaultRSIWindow  = 14
	DefaultOverbought = 70.0
	DefaultOversold   = 30.0
)

// RSIRule emits an event whenever the RSI enters the overbought or oversold
// zone. Staying inside a zone does not re-emit; the series leaving and
// re-entering does. A series whose first RSI value is already inside a zone
// emits immediately.
type RSIRule struct {
	Window     int     `json:"window" yaml:"window"`
	Overbought float64 `json:"overbought" yaml:"overbought"`
	Oversold   float64 `json:"oversold" yaml:"oversold"`
}

func (r *RSIRule) Defaults() error {
	if r.Window == 0 {
		r.Window = DefaultRSIWindow
	}

	if r.Overbought == 0 {
		r.Overbought = DefaultOverbought
	}

	if r.Oversold == 0 {
		r.Oversold = DefaultOversold
	}

	return nil
}

func (r *RSIRule) Validate() error {
	if r.Window <= 0 {
		return fmt.Errorf("rsi window must be positive, got %d", r.Window)
	}

	if r.Oversold < 0 || r.Overbought > 100 || r.Oversold >= r.Overbought {
		return fmt.Errorf("rsi thresholds must satisfy 0 <= oversold < overbought <= 100, got %v/%v",
			r.Oversold, r.Overbought)
	}

	return nil
}

func (r *RSIRule) Scan(series types.PriceSeries) []Event {
	values := indicator.RSI(series.Closes(), r.Window)
	offset := indicator.RSIOffset(r.Window)

	var events []Event
	var inOverbought, inOversold bool
	for i, v := range values {
		idx := i + offset

		switch {
		case v >= r.Overbought:
			if !inOverbought {
				events = append(events, Event{
					Index: idx,
					Time:  series[idx].Time,
					Type:  RSIOverbought,
					Value: v,
				})
			}
			inOverbought, inOversold = true, false

		case v <= r.Oversold:
			if !inOversold {
				events = append(events, Event{
					Index: idx,
					Time:  series[idx].Time,
					Type:  RSIOversold,
					Value: v,
				})
			}
			inOverbought, inOversold = false, true

		default:
			inOverbought, inOversold = false, false
		}
	}

	return events
}

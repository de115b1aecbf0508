package signal

import (
	"fmt"

	"github.com/fractalfin/quant/pkg/indicator"
	"github.com/fractalfin/quant/pkg/types"
)

const (
	DefaultBollWindow = 20
	DefaultBollK      = 2.0
)

// BollRule emits an event when the close breaks above the upper band or
// below the lower band. Like RSIRule it emits on entry only: a close that
// stays outside a band does not re-emit until it returns inside first.
type BollRule struct {
	Window int `json:"window" yaml:"window"`

	// K scales the standard deviation band width, generally 2
	K float64 `json:"bandWidth" yaml:"bandWidth"`
}

func (r *BollRule) Defaults() error {
	if r.Window == 0 {
		r.Window = DefaultBollWindow
	}

	if r.K == 0 {
		r.K = DefaultBollK
	}

	return nil
}

func (r *BollRule) Validate() error {
	if r.Window <= 0 {
		return fmt.Errorf("bollinger window must be positive, got %d", r.Window)
	}

	if r.K < 0 {
		return fmt.Errorf("bollinger band width must not be negative, got %v", r.K)
	}

	return nil
}

func (r *BollRule) Scan(series types.PriceSeries) []Event {
	closes := series.Closes()
	result := indicator.BollingerBands(closes, r.Window, r.K)
	offset := result.Offset()

	var events []Event
	var aboveBand, belowBand bool
	for i := range result.Mid {
		idx := i + offset
		close := closes[idx]

		switch {
		case close > result.Up[i]:
			if !aboveBand {
				events = append(events, Event{
					Index: idx,
					Time:  series[idx].Time,
					Type:  BollBreakUp,
					Value: close,
				})
			}
			aboveBand, belowBand = true, false

		case close < result.Down[i]:
			if !belowBand {
				events = append(events, Event{
					Index: idx,
					Time:  series[idx].Time,
					Type:  BollBreakDown,
					Value: close,
				})
			}
			aboveBand, belowBand = false, true

		default:
			aboveBand, belowBand = false, false
		}
	}

	return events
}

// PercentB locates a price inside the band channel: 0 at the lower band, 1
// at the upper band. Collapsed bands pin the score to the middle.
func PercentB(price, upper, lower float64) float64 {
	denom := upper - lower
	if denom == 0 {
		return 0.5
	}

	return (price - lower) / denom
}

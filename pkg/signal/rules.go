package signal

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/fractalfin/quant/pkg/types"
)

// Rules bundles the configured scan rules. A nil rule is disabled.
type Rules struct {
	RSI       *RSIRule  `json:"rsi,omitempty" yaml:"rsi,omitempty"`
	MACD      *MACDRule `json:"macd,omitempty" yaml:"macd,omitempty"`
	Bollinger *BollRule `json:"bollinger,omitempty" yaml:"bollinger,omitempty"`
}

func (r *Rules) Defaults() error {
	if r.RSI != nil {
		if err := r.RSI.Defaults(); err != nil {
			return err
		}
	}

	if r.MACD != nil {
		if err := r.MACD.Defaults(); err != nil {
			return err
		}
	}

	if r.Bollinger != nil {
		if err := r.Bollinger.Defaults(); err != nil {
			return err
		}
	}

	return nil
}

func (r *Rules) Validate() error {
	if r.RSI != nil {
		if err := r.RSI.Validate(); err != nil {
			return err
		}
	}

	if r.MACD != nil {
		if err := r.MACD.Validate(); err != nil {
			return err
		}
	}

	if r.Bollinger != nil {
		if err := r.Bollinger.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Scan runs every enabled rule over the series and merges the events,
// ordered by source index with a stable type tie-break.
func (r *Rules) Scan(series types.PriceSeries) []Event {
	var events []Event

	if r.RSI != nil {
		events = append(events, r.RSI.Scan(series)...)
	}

	if r.MACD != nil {
		events = append(events, r.MACD.Scan(series)...)
	}

	if r.Bollinger != nil {
		events = append(events, r.Bollinger.Scan(series)...)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Index != events[j].Index {
			return events[i].Index < events[j].Index
		}
		return events[i].Type < events[j].Type
	})

	log.Debugf("scanned %d price points, %d events", series.Len(), len(events))
	return events
}

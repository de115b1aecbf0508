// Package signal scans indicator outputs for threshold and crossover events.
//
// Scans are pure: they recompute the indicators they need from the price
// series they are handed and never keep state between calls. Every emitted
// event carries a SOURCE index, already mapped through the indicator's
// alignment offset, so callers can look the originating bar straight up in
// the series they passed in.
package signal

import (
	"github.com/fractalfin/quant/pkg/types"
)

type Type string

const (
	RSIOverbought    Type = "rsi_overbought"
	RSIOversold      Type = "rsi_oversold"
	MACDBullishCross Type = "macd_bullish_cross"
	MACDBearishCross Type = "macd_bearish_cross"
	BollBreakUp      Type = "boll_break_up"
	BollBreakDown    Type = "boll_break_down"
)

// Event is one rule match. Index points into the scanned price series, Value
// is rule-specific: the RSI value, the MACD histogram value, or the breaking
// close price.
type Event struct {
	Index int        `json:"index"`
	Time  types.Time `json:"time"`
	Type  Type       `json:"type"`
	Value float64    `json:"value"`
}

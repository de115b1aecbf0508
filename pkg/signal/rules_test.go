package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRules_Scan(t *testing.T) {
	// the same V-shaped path trips all three rule families: the descent
	// breaks the lower band and pins the RSI at zero, the rebound flips the
	// MACD histogram, breaks the upper band and pushes the RSI over 70
	series := buildSeries(10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	rules := &Rules{
		RSI:       &RSIRule{Window: 3, Overbought: 70, Oversold: 30},
		MACD:      &MACDRule{Short: 3, Long: 4, SignalWindow: 3},
		Bollinger: &BollRule{Window: 3, K: 1},
	}
	assert.NoError(t, rules.Validate())

	events := rules.Scan(series)
	assert.Len(t, events, 5)

	wantTypes := []Type{BollBreakDown, RSIOversold, MACDBullishCross, BollBreakUp, RSIOverbought}
	wantIndexes := []int{2, 3, 10, 11, 12}
	for i, event := range events {
		assert.Equal(t, wantTypes[i], event.Type, "event #%d", i)
		assert.Equal(t, wantIndexes[i], event.Index, "event #%d", i)
		assert.Equal(t, series[event.Index].Time, event.Time, "event #%d", i)
	}
}

func TestRules_NilRulesDisabled(t *testing.T) {
	var rules Rules
	assert.NoError(t, rules.Defaults())
	assert.NoError(t, rules.Validate())
	assert.Empty(t, rules.Scan(buildSeries(1, 2, 3, 4, 5)))
}

func TestRules_Defaults(t *testing.T) {
	rules := &Rules{
		RSI:       &RSIRule{},
		MACD:      &MACDRule{},
		Bollinger: &BollRule{},
	}
	assert.NoError(t, rules.Defaults())

	assert.Equal(t, DefaultRSIWindow, rules.RSI.Window)
	assert.Equal(t, DefaultOverbought, rules.RSI.Overbought)
	assert.Equal(t, DefaultOversold, rules.RSI.Oversold)
	assert.Equal(t, DefaultMACDShort, rules.MACD.Short)
	assert.Equal(t, DefaultMACDLong, rules.MACD.Long)
	assert.Equal(t, DefaultMACDSignal, rules.MACD.SignalWindow)
	assert.Equal(t, DefaultBollWindow, rules.Bollinger.Window)
	assert.Equal(t, DefaultBollK, rules.Bollinger.K)

	assert.NoError(t, rules.Validate())
}

func TestRules_ValidatePropagates(t *testing.T) {
	rules := &Rules{MACD: &MACDRule{Short: 26, Long: 12, SignalWindow: 9}}
	assert.Error(t, rules.Validate())

	rules = &Rules{RSI: &RSIRule{Window: 14, Overbought: 30, Oversold: 70}}
	assert.Error(t, rules.Validate())
}

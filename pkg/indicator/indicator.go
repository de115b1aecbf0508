// Package indicator computes technical indicators over price sequences.
//
// Every batch function is pure: it recomputes from scratch on each call,
// shares no state, and returns an empty result when the input cannot support
// the requested window. Outputs are shorter than inputs; each function
// documents its alignment offset, the index into the source sequence that
// corresponds to output index 0. Consumers mapping outputs back onto
// timestamps must add the offset, and must never assume two different
// indicator lines share alignment.
package indicator

// SMAOffset returns the source index of the first SMA output.
// Meaningful only when the output is non-empty.
func SMAOffset(period int) int {
	return period - 1
}

// EMAOffset returns the source index of the first EMA output.
func EMAOffset(period int) int {
	return period - 1
}

// RSIOffset returns the source index of the first RSI output. RSI consumes
// one extra sample for the initial delta, so its offset is period, not
// period-1.
func RSIOffset(period int) int {
	return period
}

package types

// Series is a handle for reading indicator outputs without caring about the
// concrete accumulator behind them. Index 0 is the most recent value.
type Series interface {
	Last(i int) float64
	Index(i int) float64
	Length() int
}

// UpdatableSeries is a Series fed one value at a time.
type UpdatableSeries interface {
	Series
	Update(value float64)
}

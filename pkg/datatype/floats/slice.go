package floats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Slice is an ordered sequence of float64 samples, oldest first.
type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s *Slice) Pop(i int64) (v float64) {
	v = (*s)[i]
	*s = append((*s)[:i], (*s)[i+1:]...)
	return v
}

func (s Slice) Max() float64 {
	return floats.Max(s)
}

func (s Slice) Min() float64 {
	return floats.Min(s)
}

func (s Slice) Sum() float64 {
	return floats.Sum(s)
}

func (s Slice) Mean() float64 {
	return Average(s)
}

func (s Slice) Add(b Slice) (c Slice) {
	if len(s) != len(b) {
		panic("size not match")
	}

	c = make(Slice, len(s))
	for i := range s {
		c[i] = s[i] + b[i]
	}

	return c
}

func (s Slice) Sub(b Slice) (c Slice) {
	if len(s) != len(b) {
		panic("size not match")
	}

	c = make(Slice, len(s))
	for i := range s {
		c[i] = s[i] - b[i]
	}

	return c
}

// Diff returns the per-sample change s[i] - s[i-1]. The first element is
// always zero so the output stays aligned with the input.
func (s Slice) Diff() (values Slice) {
	for i, v := range s {
		if i == 0 {
			values.Push(0)
			continue
		}
		values.Push(v - s[i-1])
	}
	return values
}

func (s Slice) PositiveValuesOrZero() (values Slice) {
	for _, v := range s {
		values.Push(math.Max(v, 0))
	}
	return values
}

func (s Slice) NegativeValuesOrZero() (values Slice) {
	for _, v := range s {
		values.Push(math.Min(v, 0))
	}
	return values
}

func (s Slice) Abs() (values Slice) {
	for _, v := range s {
		values.Push(math.Abs(v))
	}
	return values
}

func (s Slice) Tail(size int) Slice {
	length := len(s)
	if length <= size {
		win := make(Slice, length)
		copy(win, s)
		return win
	}

	win := make(Slice, size)
	copy(win, s[length-size:])
	return win
}

// Truncate keeps the last size elements. Unlike Tail it does not copy,
// so the returned slice shares the backing array.
func (s Slice) Truncate(size int) Slice {
	if size < 0 || len(s) <= size {
		return s
	}

	return s[len(s)-size:]
}

// Last returns the i-th element counted from the end, 0 being the most
// recent sample. Out-of-range lookups return 0.
func (s Slice) Last(i int) float64 {
	length := len(s)
	if i < 0 || length-1-i < 0 {
		return 0.0
	}
	return s[length-1-i]
}

// Index is an alias of Last.
func (s Slice) Index(i int) float64 {
	return s.Last(i)
}

func (s Slice) Length() int {
	return len(s)
}

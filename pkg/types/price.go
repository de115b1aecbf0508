package types

import (
	"fmt"
	"sort"
	"time"

	"github.com/fractalfin/quant/pkg/datatype/floats"
)

// PricePoint is a single observation of a tradeable asset: one bar of OHLCV
// data, or a bare close when only one price per bar is known.
type PricePoint struct {
	Time   Time    `json:"time" yaml:"time"`
	Open   float64 `json:"open" yaml:"open"`
	High   float64 `json:"high" yaml:"high"`
	Low    float64 `json:"low" yaml:"low"`
	Close  float64 `json:"close" yaml:"close"`
	Volume float64 `json:"volume,omitempty" yaml:"volume,omitempty"`
}

// NewClosePoint builds a point where all price fields carry the close.
// Useful for series loaded from single-column files.
func NewClosePoint(t time.Time, close float64) PricePoint {
	return PricePoint{
		Time:  Time(t),
		Open:  close,
		High:  close,
		Low:   close,
		Close: close,
	}
}

// PriceValueMapper extracts one float64 from a price point.
type PriceValueMapper func(p PricePoint) float64

func OpenPriceMapper(p PricePoint) float64 {
	return p.Open
}

func HighPriceMapper(p PricePoint) float64 {
	return p.High
}

func LowPriceMapper(p PricePoint) float64 {
	return p.Low
}

func ClosePriceMapper(p PricePoint) float64 {
	return p.Close
}

func TypicalPriceMapper(p PricePoint) float64 {
	return (p.High + p.Low + p.Close) / 3.
}

func VolumeMapper(p PricePoint) float64 {
	return p.Volume
}

// ParsePriceMapper resolves a price field name used on command lines and in
// config files into its mapper.
func ParsePriceMapper(name string) (PriceValueMapper, error) {
	switch name {
	case "open":
		return OpenPriceMapper, nil
	case "high":
		return HighPriceMapper, nil
	case "low":
		return LowPriceMapper, nil
	case "close", "":
		return ClosePriceMapper, nil
	case "typical", "hlc3":
		return TypicalPriceMapper, nil
	case "volume":
		return VolumeMapper, nil
	}

	return nil, fmt.Errorf("invalid price field %q, valid fields are open, high, low, close, typical, volume", name)
}

// PriceSeries is a time-ordered window of price points, oldest first.
type PriceSeries []PricePoint

func (s PriceSeries) Len() int {
	return len(s)
}

func (s PriceSeries) First() PricePoint {
	return s[0]
}

func (s PriceSeries) Last() PricePoint {
	return s[len(s)-1]
}

// Map extracts one price column from the series.
func (s PriceSeries) Map(f PriceValueMapper) floats.Slice {
	prices := make(floats.Slice, 0, len(s))
	for _, p := range s {
		prices = append(prices, f(p))
	}

	return prices
}

func (s PriceSeries) Opens() floats.Slice {
	return s.Map(OpenPriceMapper)
}

func (s PriceSeries) Highs() floats.Slice {
	return s.Map(HighPriceMapper)
}

func (s PriceSeries) Lows() floats.Slice {
	return s.Map(LowPriceMapper)
}

func (s PriceSeries) Closes() floats.Slice {
	return s.Map(ClosePriceMapper)
}

func (s PriceSeries) Volumes() floats.Slice {
	return s.Map(VolumeMapper)
}

// Tail returns a copy of the last size points.
func (s PriceSeries) Tail(size int) PriceSeries {
	length := len(s)
	if length <= size {
		win := make(PriceSeries, length)
		copy(win, s)
		return win
	}

	win := make(PriceSeries, size)
	copy(win, s[length-size:])
	return win
}

// Truncate removes the old points from the series in place.
func (s *PriceSeries) Truncate(size int) {
	if len(*s) <= size {
		return
	}

	end := len(*s)
	start := end - size
	if start < 0 {
		start = 0
	}
	sn := (*s)[start:]
	*s = sn
}

func (s *PriceSeries) Append(p PricePoint) {
	*s = append(*s, p)
}

// TimeAt returns the timestamp of the i-th point.
func (s PriceSeries) TimeAt(i int) Time {
	return s[i].Time
}

// SortByTime sorts the series by timestamp ascending, oldest first.
func (s PriceSeries) SortByTime() {
	sort.Slice(s, func(i, j int) bool {
		return s[i].Time.Time().Before(s[j].Time.Time())
	})
}

// Validate checks that timestamps are strictly increasing. Series produced by
// SortByTime may still fail here when two points share a timestamp.
func (s PriceSeries) Validate() error {
	for i := 1; i < len(s); i++ {
		prev, cur := s[i-1].Time.Time(), s[i].Time.Time()
		if !prev.Before(cur) {
			return fmt.Errorf("price series is not strictly ordered at index %d: %s >= %s",
				i, prev.Format(time.RFC3339), cur.Format(time.RFC3339))
		}
	}

	return nil
}

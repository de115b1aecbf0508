package csvsource

import (
	"github.com/fractalfin/quant/pkg/types"
)

// PriceReader is an interface for reading historical price records.
type PriceReader interface {
	Read(i int) (*types.PricePoint, error)
	ReadAll() (types.PriceSeries, error)
}

package csvsource

import (
	"encoding/csv"
	"io"

	"github.com/fractalfin/quant/pkg/types"
)

var _ PriceReader = (*CSVPriceReader)(nil)

// CSVPriceReader is a PriceReader that reads OHLCV records from a CSV file.
type CSVPriceReader struct {
	csv     *csv.Reader
	decoder PriceDecoder
}

// MakeCSVPriceReader is a factory method type that creates a new CSVPriceReader.
type MakeCSVPriceReader func(csv *csv.Reader) *CSVPriceReader

// NewCSVPriceReader creates a new CSVPriceReader with the default epoch decoder.
func NewCSVPriceReader(csv *csv.Reader) *CSVPriceReader {
	return &CSVPriceReader{
		csv:     csv,
		decoder: EpochPriceDecoder,
	}
}

// NewHeaderCSVPriceReader creates a new CSVPriceReader for files that start
// with a Date,Open,High,Low,Close[,Volume] header row.
func NewHeaderCSVPriceReader(csv *csv.Reader) *CSVPriceReader {
	return &CSVPriceReader{
		csv:     csv,
		decoder: HeaderPriceDecoder,
	}
}

// NewCSVPriceReaderWithDecoder creates a new CSVPriceReader with the given decoder.
func NewCSVPriceReaderWithDecoder(csv *csv.Reader, decoder PriceDecoder) *CSVPriceReader {
	return &CSVPriceReader{
		csv:     csv,
		decoder: decoder,
	}
}

// Read decodes the next price point from the underlying CSV data. A nil point
// with a nil error means the decoder skipped the record.
func (r *CSVPriceReader) Read(i int) (*types.PricePoint, error) {
	rec, err := r.csv.Read()
	if err != nil {
		return nil, err
	}

	return r.decoder(rec, i)
}

// ReadAll reads the remaining price points in file order.
func (r *CSVPriceReader) ReadAll() (types.PriceSeries, error) {
	var prices types.PriceSeries
	var i int
	for {
		p, err := r.Read(i)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		i++ // used as jump logic inside the decoder to skip csv headers
		if p == nil {
			continue
		}
		prices = append(prices, *p)
	}

	return prices, nil
}

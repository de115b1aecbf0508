package csvsource

import (
	"errors"
	"strconv"
	"time"

	"github.com/fractalfin/quant/pkg/types"
)

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid timestamp column.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the OHLC columns are not plain decimal numbers.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")
)

// PriceDecoder is an extension point for CSVPriceReader to support custom file
// formats. Returning a nil point without an error skips the record, which lets
// decoders drop header rows.
type PriceDecoder func(record []string, index int) (*types.PricePoint, error)

// EpochPriceDecoder decodes a timestamp,open,high,low,close[,volume] record
// with the timestamp in unix seconds or milliseconds.
func EpochPriceDecoder(record []string, _ int) (*types.PricePoint, error) {
	if len(record) < 5 {
		return nil, ErrNotEnoughColumns
	}

	ts, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	var p types.PricePoint

	// millisecond timestamps passed 1e12 back in 2001, second timestamps
	// stay below it until year 33658
	if ts >= 1e12 {
		p.Time = types.Time(time.UnixMilli(ts))
	} else {
		p.Time = types.NewTimeFromUnix(ts, 0)
	}

	if err := decodeOHLCV(record, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// HeaderPriceDecoder decodes a date,open,high,low,close[,volume] record with
// the date column in any of the loose time formats. A first record whose date
// column does not parse is treated as the header row and skipped.
func HeaderPriceDecoder(record []string, index int) (*types.PricePoint, error) {
	if len(record) < 5 {
		return nil, ErrNotEnoughColumns
	}

	t, err := types.ParseLooseFormatTime(record[0])
	if err != nil {
		if index == 0 {
			return nil, nil
		}
		return nil, ErrInvalidTimeFormat
	}

	p := types.PricePoint{Time: types.Time(t.Time())}
	if err := decodeOHLCV(record, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func decodeOHLCV(record []string, p *types.PricePoint) (err error) {
	if p.Open, err = strconv.ParseFloat(record[1], 64); err != nil {
		return ErrInvalidPriceFormat
	}
	if p.High, err = strconv.ParseFloat(record[2], 64); err != nil {
		return ErrInvalidPriceFormat
	}
	if p.Low, err = strconv.ParseFloat(record[3], 64); err != nil {
		return ErrInvalidPriceFormat
	}
	if p.Close, err = strconv.ParseFloat(record[4], 64); err != nil {
		return ErrInvalidPriceFormat
	}

	if len(record) > 5 {
		if p.Volume, err = strconv.ParseFloat(record[5], 64); err != nil {
			return ErrInvalidVolumeFormat
		}
	}

	return nil
}

package csvsource

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fractalfin/quant/pkg/types"
)

var assertPriceEq = func(t *testing.T, exp, act types.PricePoint) {
	assert.Equal(t, exp.Time.Unix(), act.Time.Unix())
	assert.Equal(t, exp.Open, act.Open)
	assert.Equal(t, exp.High, act.High)
	assert.Equal(t, exp.Low, act.Low)
	assert.Equal(t, exp.Close, act.Close)
	assert.Equal(t, exp.Volume, act.Volume)
}

func TestCSVPriceReader_ReadWithEpochDecoder(t *testing.T) {
	tests := []struct {
		name string
		give string
		want types.PricePoint
		err  error
	}{
		{
			name: "Read millisecond DOHLCV",
			give: "1609459200000,28923.63000000,29031.34000000,28690.17000000,28995.13000000,2311.81144500",
			want: types.PricePoint{
				Time:   types.NewTimeFromUnix(1609459200, 0),
				Open:   28923.63,
				High:   29031.34,
				Low:    28690.17,
				Close:  28995.13,
				Volume: 2311.811445,
			},
			err: nil,
		},
		{
			name: "Read second DOHLC",
			give: "1609459200,28923.63000000,29031.34000000,28690.17000000,28995.13000000",
			want: types.PricePoint{
				Time:  types.NewTimeFromUnix(1609459200, 0),
				Open:  28923.63,
				High:  29031.34,
				Low:   28690.17,
				Close: 28995.13,
			},
			err: nil,
		},
		{
			name: "Not enough columns",
			give: "1609459200000,28923.63000000,29031.34000000",
			want: types.PricePoint{},
			err:  ErrNotEnoughColumns,
		},
		{
			name: "Invalid time format",
			give: "23/12/2021,28923.63000000,29031.34000000,28690.17000000,28995.13000000",
			want: types.PricePoint{},
			err:  ErrInvalidTimeFormat,
		},
		{
			name: "Invalid price format",
			give: "1609459200000,sixty,29031.34000000,28690.17000000,28995.13000000",
			want: types.PricePoint{},
			err:  ErrInvalidPriceFormat,
		},
		{
			name: "Invalid volume format",
			give: "1609459200000,28923.63000000,29031.34000000,28690.17000000,28995.13000000,vol",
			want: types.PricePoint{},
			err:  ErrInvalidVolumeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewCSVPriceReader(csv.NewReader(strings.NewReader(tt.give)))
			p, err := reader.Read(0)
			assert.Equal(t, tt.err, err)
			if err == nil {
				assertPriceEq(t, tt.want, *p)
			}
		})
	}
}

func TestCSVPriceReader_ReadWithHeaderDecoder(t *testing.T) {
	tests := []struct {
		name  string
		give  string
		index int
		want  *types.PricePoint
		err   error
	}{
		{
			name: "Read dated record",
			give: "2021-01-04,133.52,133.61,126.76,129.41,143301900",
			want: &types.PricePoint{
				Time:   types.NewTimeFromUnix(1609718400, 0),
				Open:   133.52,
				High:   133.61,
				Low:    126.76,
				Close:  129.41,
				Volume: 143301900,
			},
			err: nil,
		},
		{
			name: "Skip header row",
			give: "Date,Open,High,Low,Close,Volume",
			want: nil,
			err:  nil,
		},
		{
			name:  "Header row past the first record",
			give:  "Date,Open,High,Low,Close,Volume",
			index: 3,
			want:  nil,
			err:   ErrInvalidTimeFormat,
		},
		{
			name: "Not enough columns",
			give: "2021-01-04,133.52,133.61",
			want: nil,
			err:  ErrNotEnoughColumns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewHeaderCSVPriceReader(csv.NewReader(strings.NewReader(tt.give)))
			p, err := reader.Read(tt.index)
			assert.Equal(t, tt.err, err)
			if tt.want != nil {
				assert.NotNil(t, p)
				assertPriceEq(t, *tt.want, *p)
			} else {
				assert.Nil(t, p)
			}
		})
	}
}

func TestCSVPriceReader_ReadAllSkipsHeader(t *testing.T) {
	data := strings.Join([]string{
		"Date,Open,High,Low,Close,Volume",
		"2021-01-04,133.52,133.61,126.76,129.41,143301900",
		"2021-01-05,128.89,131.74,128.43,131.01,97664900",
	}, "\n")

	reader := NewHeaderCSVPriceReader(csv.NewReader(strings.NewReader(data)))
	prices, err := reader.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, prices, 2)
	assert.Equal(t, 129.41, prices[0].Close)
	assert.Equal(t, 131.01, prices[1].Close)
}

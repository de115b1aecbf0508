package csvsource

import (
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/fractalfin/quant/pkg/types"
)

// ReadPricesFromCSV reads all the .csv files in a given directory or a single file
// into one price series. Wraps a default CSVPriceReader with the epoch decoder for
// convenience. For finer grained memory management use the base price reader.
func ReadPricesFromCSV(path string) (types.PriceSeries, error) {
	return ReadPricesFromCSVWithDecoder(path, NewCSVPriceReader)
}

// ReadPricesFromCSVWithDecoder permits using a custom CSVPriceReader.
func ReadPricesFromCSVWithDecoder(path string, maker MakeCSVPriceReader) (types.PriceSeries, error) {
	var prices types.PriceSeries

	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			return nil
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		//nolint:errcheck // Read ops only so safe to ignore err return
		defer file.Close()
		reader := maker(csv.NewReader(file))
		newPrices, err := reader.ReadAll()
		if err != nil {
			return err
		}
		prices = append(prices, newPrices...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return prices, nil
}

// ReadSeriesFromFile loads a single CSV file into a sorted, validated price
// series. The first column of the first record picks the decoder: a plain
// integer means epoch records, anything else means header-style records with
// a loose-format date column.
func ReadSeriesFromFile(path string) (types.PriceSeries, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	//nolint:errcheck // Read ops only so safe to ignore err return
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "can not read csv file %s", path)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, nil
	}

	decoder := PriceDecoder(HeaderPriceDecoder)
	if _, err := strconv.ParseInt(records[0][0], 10, 64); err == nil {
		decoder = EpochPriceDecoder
	}

	var prices types.PriceSeries
	for i, record := range records {
		p, err := decoder(record, i)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d of %s", i+1, path)
		}
		if p == nil {
			continue
		}
		prices = append(prices, *p)
	}

	prices.SortByTime()
	if err := prices.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}

	return prices, nil
}

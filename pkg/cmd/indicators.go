package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fractalfin/quant/pkg/data/tsv"
	"github.com/fractalfin/quant/pkg/datasource/csvsource"
	"github.com/fractalfin/quant/pkg/datatype/floats"
	"github.com/fractalfin/quant/pkg/indicator"
	"github.com/fractalfin/quant/pkg/style"
	"github.com/fractalfin/quant/pkg/types"
	"github.com/fractalfin/quant/pkg/util"
)

func init() {
	IndicatorsCmd.Flags().StringSlice("input", nil, "price history CSV file, may be given multiple times")
	IndicatorsCmd.Flags().String("indicator", "sma", "indicator to compute: sma, ema, rsi, macd, boll")
	IndicatorsCmd.Flags().Int("window", 14, "window for sma, ema, rsi and boll")
	IndicatorsCmd.Flags().Int("fast", 12, "macd fast ema period")
	IndicatorsCmd.Flags().Int("slow", 26, "macd slow ema period")
	IndicatorsCmd.Flags().Int("signal", 9, "macd signal ema period")
	IndicatorsCmd.Flags().Float64("band-k", 2.0, "bollinger band width in standard deviations")
	IndicatorsCmd.Flags().String("price", "close", "price field: open, high, low, close, typical")
	IndicatorsCmd.Flags().String("output", "table", "output format: table or tsv")
	IndicatorsCmd.Flags().String("out", "", "write tsv output to the given file instead of stdout")
	RootCmd.AddCommand(IndicatorsCmd)
}

var IndicatorsCmd = &cobra.Command{
	Use:          "indicators",
	Short:        "compute technical indicators over price history files",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := cmd.Flags().GetStringSlice("input")
		if err != nil {
			return err
		}

		if len(inputs) == 0 {
			return errors.New("--input [FILE] is required")
		}

		name, err := cmd.Flags().GetString("indicator")
		if err != nil {
			return err
		}

		priceField, err := cmd.Flags().GetString("price")
		if err != nil {
			return err
		}

		mapper, err := types.ParsePriceMapper(priceField)
		if err != nil {
			return err
		}

		opts := indicatorOptions{
			Name:   name,
			Mapper: mapper,
		}

		if opts.Window, err = cmd.Flags().GetInt("window"); err != nil {
			return err
		}
		if opts.Fast, err = cmd.Flags().GetInt("fast"); err != nil {
			return err
		}
		if opts.Slow, err = cmd.Flags().GetInt("slow"); err != nil {
			return err
		}
		if opts.Signal, err = cmd.Flags().GetInt("signal"); err != nil {
			return err
		}
		if opts.BandK, err = cmd.Flags().GetFloat64("band-k"); err != nil {
			return err
		}

		// every input is an independent price sequence, so the reports can
		// be computed concurrently
		reports := make([]*indicatorReport, len(inputs))
		var g errgroup.Group
		for i, input := range inputs {
			i, input := i, input
			g.Go(func() error {
				series, err := csvsource.ReadSeriesFromFile(input)
				if err != nil {
					return err
				}

				log.Debugf("loaded %d price points from %s", series.Len(), input)

				report, err := buildIndicatorReport(input, series, opts)
				if err != nil {
					return errors.Wrap(err, input)
				}

				reports[i] = report
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		outFile, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}

		switch output {
		case "table":
			for _, report := range reports {
				renderReportTable(report)
			}
			return nil

		case "tsv":
			var w *tsv.Writer
			if outFile != "" {
				if w, err = tsv.NewWriterFile(outFile); err != nil {
					return err
				}
			} else {
				w = tsv.NewWriter(os.Stdout)
			}
			defer func() {
				util.LogErr(w.Close(), "can not close tsv writer")
			}()

			for _, report := range reports {
				if err := writeReportTSV(w, report); err != nil {
					return err
				}
			}
			return nil
		}

		return errors.Errorf("invalid output format %q, valid formats are table and tsv", output)
	},
}

type indicatorOptions struct {
	Name   string
	Window int
	Fast   int
	Slow   int
	Signal int
	BandK  float64
	Mapper types.PriceValueMapper
}

// indicatorReport is one input file rendered into aligned rows: the first
// column is the source timestamp each output value maps back to through its
// indicator's alignment offset.
type indicatorReport struct {
	Input  string
	Header []string
	Rows   [][]string
}

// buildIndicatorReport computes the requested indicator and maps every output
// index back onto the source series. Lines with a later offset, like the MACD
// signal line, render empty cells until they warm up.
func buildIndicatorReport(input string, series types.PriceSeries, opts indicatorOptions) (*indicatorReport, error) {
	prices := series.Map(opts.Mapper)
	report := &indicatorReport{Input: input}

	timeAt := func(idx int) string {
		return series.TimeAt(idx).Time().Format(time.RFC3339)
	}

	switch opts.Name {
	case "sma", "ema":
		var values floats.Slice
		if opts.Name == "sma" {
			values = indicator.SMA(prices, opts.Window)
		} else {
			values = indicator.EMA(prices, opts.Window)
		}
		if len(values) == 0 {
			return nil, errors.Errorf("%d price points can not fill a %s window of %d", len(prices), opts.Name, opts.Window)
		}

		offset := indicator.SMAOffset(opts.Window)
		report.Header = []string{"time", "price", fmt.Sprintf("%s(%d)", opts.Name, opts.Window)}
		for i, v := range values {
			idx := i + offset
			report.Rows = append(report.Rows, []string{
				timeAt(idx),
				util.FormatFloat(prices[idx], 4),
				util.FormatFloat(v, 4),
			})
		}

	case "rsi":
		values := indicator.RSI(prices, opts.Window)
		if len(values) == 0 {
			return nil, errors.Errorf("%d price points can not fill a rsi window of %d", len(prices), opts.Window)
		}

		offset := indicator.RSIOffset(opts.Window)
		report.Header = []string{"time", "price", fmt.Sprintf("rsi(%d)", opts.Window)}
		for i, v := range values {
			idx := i + offset
			report.Rows = append(report.Rows, []string{
				timeAt(idx),
				util.FormatFloat(prices[idx], 4),
				util.FormatFloat(v, 2),
			})
		}

	case "macd":
		result := indicator.MACD(prices, opts.Fast, opts.Slow, opts.Signal)
		if len(result.MACD) == 0 {
			return nil, errors.Errorf("%d price points can not fill a macd(%d,%d,%d)", len(prices), opts.Fast, opts.Slow, opts.Signal)
		}

		report.Header = []string{
			"time",
			fmt.Sprintf("macd(%d,%d)", opts.Fast, opts.Slow),
			fmt.Sprintf("signal(%d)", opts.Signal),
			"histogram",
		}

		// the three lines do not share alignment, so each one is looked up
		// through its own offset
		for i := range result.MACD {
			idx := i + result.MACDOffset()
			row := []string{timeAt(idx), util.FormatFloat(result.MACD[i], 4), "", ""}

			if j := idx - result.SignalOffset(); j >= 0 && j < len(result.Signal) {
				row[2] = util.FormatFloat(result.Signal[j], 4)
			}
			if j := idx - result.HistogramOffset(); j >= 0 && j < len(result.Histogram) {
				row[3] = util.FormatFloat(result.Histogram[j], 4)
			}

			report.Rows = append(report.Rows, row)
		}

	case "boll":
		result := indicator.BollingerBands(prices, opts.Window, opts.BandK)
		if len(result.Mid) == 0 {
			return nil, errors.Errorf("%d price points can not fill a bollinger window of %d", len(prices), opts.Window)
		}

		offset := result.Offset()
		report.Header = []string{
			"time",
			"price",
			fmt.Sprintf("up(%d,%v)", opts.Window, opts.BandK),
			fmt.Sprintf("mid(%d)", opts.Window),
			fmt.Sprintf("down(%d,%v)", opts.Window, opts.BandK),
		}
		for i := range result.Mid {
			idx := i + offset
			report.Rows = append(report.Rows, []string{
				timeAt(idx),
				util.FormatFloat(prices[idx], 4),
				util.FormatFloat(result.Up[i], 4),
				util.FormatFloat(result.Mid[i], 4),
				util.FormatFloat(result.Down[i], 4),
			})
		}

	default:
		return nil, errors.Errorf("invalid indicator %q, valid indicators are sma, ema, rsi, macd, boll", opts.Name)
	}

	return report, nil
}

func renderReportTable(report *indicatorReport) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(*style.NewDefaultTableStyle())
	t.SetTitle(report.Input)

	header := table.Row{}
	for _, h := range report.Header {
		header = append(header, h)
	}
	t.AppendHeader(header)

	for _, row := range report.Rows {
		r := table.Row{}
		for _, cell := range row {
			r = append(r, cell)
		}
		t.AppendRow(r)
	}

	t.Render()
}

func writeReportTSV(w *tsv.Writer, report *indicatorReport) error {
	if err := w.Write(append([]string{"input"}, report.Header...)); err != nil {
		return err
	}

	for _, row := range report.Rows {
		if err := w.Write(append([]string{report.Input}, row...)); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

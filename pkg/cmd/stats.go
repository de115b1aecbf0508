package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/fractalfin/quant/pkg/config"
	"github.com/fractalfin/quant/pkg/datasource/csvsource"
	"github.com/fractalfin/quant/pkg/envvar"
	"github.com/fractalfin/quant/pkg/statistics"
	"github.com/fractalfin/quant/pkg/style"
	"github.com/fractalfin/quant/pkg/util"
)

func init() {
	defaultRiskFree, _ := envvar.Float64("QUANT_RISK_FREE_RATE", 0.0)
	defaultPeriods, _ := envvar.Int("QUANT_PERIODS_PER_YEAR", 252)

	StatsCmd.Flags().StringSlice("input", nil, "price history CSV file, may be given multiple times")
	StatsCmd.Flags().Float64("risk-free-rate", defaultRiskFree, "annualized risk-free rate for the sharpe ratio")
	StatsCmd.Flags().Int("periods", defaultPeriods, "price samples per year, 252 for daily bars")
	RootCmd.AddCommand(StatsCmd)
}

var StatsCmd = &cobra.Command{
	Use:          "stats",
	Short:        "summarize return and risk statistics of price history files",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := cmd.Flags().GetStringSlice("input")
		if err != nil {
			return err
		}

		riskFree, err := cmd.Flags().GetFloat64("risk-free-rate")
		if err != nil {
			return err
		}

		periods, err := cmd.Flags().GetInt("periods")
		if err != nil {
			return err
		}

		if configFile := viper.GetString("config"); len(configFile) > 0 {
			userConfig, err := config.Load(configFile)
			if err != nil {
				return err
			}

			inputs, riskFree = applyStatsConfig(userConfig, inputs, riskFree,
				cmd.Flags().Changed("risk-free-rate"))
		}

		if len(inputs) == 0 {
			return errors.New("--input [FILE] is required when no config file lists inputs")
		}

		summaries := make([]statistics.Summary, len(inputs))
		var g errgroup.Group
		for i, input := range inputs {
			i, input := i, input
			g.Go(func() error {
				series, err := csvsource.ReadSeriesFromFile(input)
				if err != nil {
					return err
				}

				if series.Len() < 2 {
					return errors.Errorf("%s: at least two price points are needed", input)
				}

				summaries[i] = statistics.Summarize(series.Closes(), riskFree, periods)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(*style.NewDefaultTableStyle())
		t.AppendHeader(table.Row{
			"input", "total return", "annualized", "volatility", "sharpe", "max drawdown", "var 95",
		})

		for i, s := range summaries {
			t.AppendRow(table.Row{
				inputs[i],
				util.FormatFloat(s.TotalReturn, 4),
				util.FormatFloat(s.AnnualizedReturn, 4),
				util.FormatFloat(s.Volatility, 4),
				util.FormatFloat(s.SharpeRatio, 4),
				util.FormatFloat(s.MaxDrawdown, 4),
				util.FormatFloat(s.ValueAtRisk95, 4),
			})
		}

		t.Render()
		return nil
	},
}

// applyStatsConfig merges the config file into the command line arguments:
// the file supplies inputs when none were given, and its riskFreeRate becomes
// the default unless --risk-free-rate was set explicitly.
func applyStatsConfig(userConfig *config.Config, inputs []string, riskFree float64, riskFreeSet bool) ([]string, float64) {
	if userConfig == nil {
		return inputs, riskFree
	}

	if len(inputs) == 0 {
		inputs = userConfig.Inputs
	}

	if !riskFreeSet && userConfig.RiskFreeRate != 0 {
		riskFree = userConfig.RiskFreeRate
	}

	return inputs, riskFree
}

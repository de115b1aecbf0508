package cmd

import (
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/fractalfin/quant/pkg/config"
	"github.com/fractalfin/quant/pkg/datasource/csvsource"
	"github.com/fractalfin/quant/pkg/signal"
	"github.com/fractalfin/quant/pkg/style"
	"github.com/fractalfin/quant/pkg/util"
)

func init() {
	SignalsCmd.Flags().StringSlice("input", nil, "price history CSV file, may be given multiple times")
	RootCmd.AddCommand(SignalsCmd)
}

var SignalsCmd = &cobra.Command{
	Use:          "signals",
	Short:        "scan price history files for rule events",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile := viper.GetString("config")
		if len(configFile) == 0 {
			return errors.New("--config option is required")
		}

		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return err
		}

		userConfig, err := config.Load(configFile)
		if err != nil {
			return err
		}

		if userConfig.Signals == nil {
			return errors.Errorf("config file %s has no signals section", configFile)
		}

		inputs, err := cmd.Flags().GetStringSlice("input")
		if err != nil {
			return err
		}

		// the config file may carry the input list instead of the command line
		if len(inputs) == 0 {
			inputs = userConfig.Inputs
		}

		if len(inputs) == 0 {
			return errors.New("--input [FILE] is required when the config file lists no inputs")
		}

		eventsByInput := make([][]signal.Event, len(inputs))
		var g errgroup.Group
		for i, input := range inputs {
			i, input := i, input
			g.Go(func() error {
				series, err := csvsource.ReadSeriesFromFile(input)
				if err != nil {
					return err
				}

				eventsByInput[i] = userConfig.Signals.Scan(series)
				log.Debugf("%s: %d events over %d price points", input, len(eventsByInput[i]), series.Len())
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(*style.NewDefaultTableStyle())
		t.AppendHeader(table.Row{"input", "time", "signal", "value", "index"})

		for i, events := range eventsByInput {
			for _, e := range events {
				t.AppendRow(table.Row{
					inputs[i],
					e.Time.Time().Format(time.RFC3339),
					string(e.Type),
					util.FormatFloat(e.Value, 4),
					e.Index,
				})
			}
		}

		t.Render()
		return nil
	},
}

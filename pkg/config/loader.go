package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/fractalfin/quant/pkg/signal"
)

// Config is the top-level YAML document consumed by the scanning commands.
type Config struct {
	// Inputs are price history CSV files scanned when the command line does
	// not name any. Accepts a single string or a list.
	Inputs StringSlice `json:"inputs,omitempty" yaml:"inputs,omitempty"`

	// RiskFreeRate is the annualized risk-free rate fed into the statistics
	// summary.
	RiskFreeRate float64 `json:"riskFreeRate,omitempty" yaml:"riskFreeRate,omitempty"`

	Signals *signal.Rules `json:"signals,omitempty" yaml:"signals,omitempty"`
}

// Load reads the config file. When a signals section is present, its rule
// defaults are filled in and the rules are validated. A config without signals
// is still usable, the stats command only needs inputs and riskFreeRate.
func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, errors.Wrapf(err, "can not parse config file %s", configFile)
	}

	if config.Signals != nil {
		if err := config.Signals.Defaults(); err != nil {
			return nil, err
		}

		if err := config.Signals.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid signal rules in %s", configFile)
		}
	}

	return &config, nil
}

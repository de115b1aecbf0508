package cmd

import (
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/fractalfin/quant/pkg/envvar"
)

var RootCmd = &cobra.Command{
	Use:   "quant",
	Short: "technical indicator toolkit",
	Long:  "quant computes technical indicators, signal scans and risk statistics over price history files",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}

		if dotenvFile := viper.GetString("dotenv"); dotenvFile != "" {
			if _, err := os.Stat(dotenvFile); err == nil {
				if err := godotenv.Load(dotenvFile); err != nil {
					log.WithError(err).Errorf("error loading dotenv file %s", dotenvFile)
				}
			}
		}

		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "signal rules config file")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "dotenv file to load before running")
}

// bindRootFlags connects the root flag set to viper so that environment
// variables fill unset flags: CONFIG feeds --config, DEBUG feeds --debug,
// DOTENV feeds --dotenv. A flag given explicitly still wins.
func bindRootFlags() error {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		return err
	}

	return viper.BindPFlags(RootCmd.Flags())
}

func Execute() {
	if err := bindRootFlags(); err != nil {
		log.WithError(err).Errorf("failed to bind root flags. please check the flag settings.")
	}

	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()

	environment, _ := envvar.String("QUANT_ENV")
	switch environment {
	case "production", "prod":
		writer := &lumberjack.Logger{
			Filename:   path.Join("log", "access.log"),
			MaxSize:    100, // megabytes
			MaxBackups: 10,
			MaxAge:     30, // days
		}
		logger.AddHook(
			lfshook.NewHook(
				lfshook.WriterMap{
					log.DebugLevel: writer,
					log.InfoLevel:  writer,
					log.WarnLevel:  writer,
					log.ErrorLevel: writer,
					log.FatalLevel: writer,
				},
				&log.JSONFormatter{},
			),
		)
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}

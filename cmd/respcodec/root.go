package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/respcodec"
	cdlogrus "github.com/unkn0wn-root/respcodec/log/logrus"
	cdslog "github.com/unkn0wn-root/respcodec/log/slog"
	cdzap "github.com/unkn0wn-root/respcodec/log/zap"
)

var cfgFile string

// appLogger receives one structured event per decoded file in `batch`; it
// is a respcodec.NopLogger unless --log-backend selects a concrete adapter.
var appLogger respcodec.Logger = respcodec.NopLogger{}

var rootCmd = &cobra.Command{
	Use:           "respcodec",
	Short:         "Decode, encode, convert, and inspect RESP-family wire frames",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger(viper.GetString("log-backend"))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.respcodec.yaml)")
	rootCmd.PersistentFlags().String("revision", "v3", "protocol revision: v2 or v3")
	rootCmd.PersistentFlags().String("format", "json", "export format for decode/inspect: json, msgpack, cbor, raw")
	rootCmd.PersistentFlags().String("log-backend", "none", "structured log backend: none, zap, logrus, slog")

	_ = viper.BindPFlag("revision", rootCmd.PersistentFlags().Lookup("revision"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("log-backend", rootCmd.PersistentFlags().Lookup("log-backend"))
}

func initLogger(backend string) error {
	switch backend {
	case "", "none":
		appLogger = respcodec.NopLogger{}
	case "zap":
		l, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("log-backend zap: %w", err)
		}
		appLogger = cdzap.ZapLogger{L: l}
	case "logrus":
		appLogger = cdlogrus.LogrusLogger{E: logrus.NewEntry(logrus.StandardLogger())}
	case "slog":
		appLogger = cdslog.Logger{L: slog.Default()}
	default:
		return fmt.Errorf("unknown --log-backend %q (use none, zap, logrus, slog)", backend)
	}
	return nil
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".respcodec")
	}

	viper.SetEnvPrefix("RESPCODEC")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "respcodec: using config file:", viper.ConfigFileUsed())
	}
}

// Execute runs the root command, exiting the process with a non-zero
// status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "respcodec:", err)
		os.Exit(1)
	}
}

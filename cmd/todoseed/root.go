package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:           "todoseed",
	Short:         "Deterministic authorization-graph dataset generator",
	Long:          `todoseed builds a large synthetic graph of users, hierarchical teams, task lists, and tasks for a fixed seed, then emits it as a relational database and a nested entity document that stay mutually consistent.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree; errors are logged here so main stays bare.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("run failed")
		return err
	}
	return nil
}

// initConfig layers an optional todoseed.yaml and TODOSEED_* environment
// variables under the command-line flags.
func initConfig() {
	viper.SetConfigName("todoseed")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("TODOSEED")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config file")
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"randomwalk/config"
)

// envs carries environment defaults; flags override them per command.
var envs = config.Load()

var rootCmd = &cobra.Command{
	Use:   "randomwalk",
	Short: "Bounded random walk simulator",
	Long: `randomwalk runs discrete random walks on a bounded grid, rejecting and
resampling moves that would leave it, and reports path statistics.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelName, _ := cmd.Flags().GetString("log-level")
		level, err := zerolog.ParseLevel(levelName)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", levelName, err)
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", envs.LogLevel, "Log level (trace, debug, info, warn, error)")
}

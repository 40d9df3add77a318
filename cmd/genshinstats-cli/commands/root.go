package commands

import (
	"context"
	"fmt"
	"os"

	"genshinstats/lib/telemetry"

	"github.com/spf13/cobra"
)

var verbose bool
var configPath string

var rootCmd = &cobra.Command{
	Use:   "genshinstats-cli",
	Short: "genshinstats-cli queries hoyolab game stats and dumps gacha pull history.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and raw http message dumps.")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "Path to the credentials config.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

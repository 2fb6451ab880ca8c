// Package main is the cooperstown CLI: Hall of Fame worthiness scoring,
// career projection and inductee similarity for player files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/okian/cooperstown/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "cooperstown",
	Short: "Hall of Fame worthiness engine",
	Long: "cooperstown scores careers against positional Hall of Fame baselines, " +
		"projects active careers along aging curves and finds the most similar inductees.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
		return flushMetrics(cmd.Context())
	},
}

func main() {
	// Load .env file if it exists
	_ = config.LoadDotEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

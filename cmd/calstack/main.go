package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const defaultProfile = "calstack.yaml"

// rootFlags are shared across subcommands.
type rootFlags struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "calstack",
		Short: "Sensor calibration tolerance analyzer",
		Long: "calstack computes normative (standards-based) and metrological\n" +
			"(GUM-style) tolerance figures for calibrated sensors from\n" +
			"calibration error samples.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if flags.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", defaultProfile, "device profile file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newAnalyzeCmd(flags))
	root.AddCommand(newFormCmd(flags))
	root.AddCommand(newWatchCmd(flags))

	return root
}

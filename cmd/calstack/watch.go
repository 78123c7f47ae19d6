package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/calstack/calstack/internal/config"
	"github.com/calstack/calstack/internal/sample"
)

func newWatchCmd(flags *rootFlags) *cobra.Command {
	var (
		dataPath string
		details  bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-analyze whenever the calibration data file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProfile(flags.configPath)
			if err != nil {
				return err
			}

			path := dataPath
			if path == "" {
				path = cfg.Data.File
			}
			if path == "" {
				return fmt.Errorf("no calibration data: pass --data or set data.file in the profile")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			// rerun is called from both watchers; serialize so a profile
			// reload and a data write never interleave output.
			var mu sync.Mutex
			rerun := func() {
				mu.Lock()
				defer mu.Unlock()

				s, err := sample.ReadFile(path)
				if err != nil {
					slog.Error("watch: read data failed", "path", path, "err", err)
					return
				}
				if err := analyze(cfg, s, details || cfg.Data.Details); err != nil && err != errRejected {
					slog.Error("watch: analysis failed", "err", err)
				}
			}

			rerun()

			// Hot-reload the profile alongside the data file.
			go func() {
				err := config.Watch(ctx, flags.configPath, func(updated *config.Config) {
					mu.Lock()
					cfg = updated
					mu.Unlock()
					rerun()
				})
				if err != nil {
					slog.Debug("watch: profile watcher stopped", "err", err)
				}
			}()

			if err := config.WatchFile(ctx, path, rerun); err != nil {
				return fmt.Errorf("watch data file: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "calibration data file")
	cmd.Flags().BoolVar(&details, "details", false, "show intermediate values")

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calstack/calstack/internal/sample"
)

func newAnalyzeCmd(flags *rootFlags) *cobra.Command {
	var (
		dataPath string
		details  bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a calibration data file against the device profile",
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

			s, err := sample.ReadFile(path)
			if err != nil {
				return err
			}

			return analyze(cfg, s, details || cfg.Data.Details)
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "calibration data file")
	cmd.Flags().BoolVar(&details, "details", false, "show intermediate values")

	return cmd
}

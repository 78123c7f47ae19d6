package main

import (
	"github.com/spf13/cobra"

	"github.com/calstack/calstack/internal/form"
)

func newFormCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Collect inputs interactively and analyze",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProfile(flags.configPath)
			if err != nil {
				return err
			}

			in, err := form.Run(cfg)
			if err != nil {
				return err
			}

			// Fold the session back into the profile so the shared
			// analysis path (and its acceptance rules) applies as-is.
			cfg.Device.SensorType = string(in.SensorType)
			cfg.Device.PrecisionClass = string(in.PrecisionClass)
			cfg.Device.RangeMin = in.Range.Min
			cfg.Device.RangeMax = in.Range.Max
			cfg.Device.SensorTolerance = in.SensorTolOverride
			cfg.Chain.StandardUncertainty = in.StandardUncertainty
			cfg.Chain.TransmitterTolerance = in.TransmitterTol
			cfg.Chain.ControllerTolerance = in.ControllerTol
			cfg.Chain.DisplayTolerance = in.DisplayTol

			return analyze(cfg, in.Sample, in.Details)
		},
	}
}

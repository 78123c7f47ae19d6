package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/calstack/calstack/internal/acceptance"
	"github.com/calstack/calstack/internal/config"
	"github.com/calstack/calstack/internal/report"
	"github.com/calstack/calstack/internal/sample"
	"github.com/calstack/calstack/internal/tolerance"
)

// errRejected signals a reject-severity acceptance verdict; the report
// has already been printed when it is returned.
var errRejected = errors.New("calibration rejected by acceptance rules")

// loadProfile loads the device profile at path. The default profile name
// is optional: when that file does not exist, built-in defaults apply.
// An explicitly named profile must exist.
func loadProfile(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if path == defaultProfile {
			slog.Debug("no profile file — using built-in defaults", "path", path)
			return config.Default(), nil
		}
		return nil, fmt.Errorf("profile %q does not exist", path)
	}
	return config.Load(path)
}

// analyze runs both calculators over the sample, evaluates acceptance
// rules and prints the report. Returns errRejected when a reject rule
// fired.
func analyze(cfg *config.Config, s sample.Sample, details bool) error {
	if len(s) == 0 {
		return tolerance.ErrEmptySample
	}

	norm, err := tolerance.ComputeNormative(tolerance.NormativeInput{
		SensorType:     cfg.Device.SensorTypeValue(),
		Range:          cfg.Device.Range(),
		Sample:         s,
		PrecisionClass: cfg.Device.PrecisionClassValue(),
		Details:        details,
	})
	if err != nil {
		return err
	}

	metro, err := tolerance.ComputeMetrological(tolerance.MetrologicalInput{
		Sample:              s,
		StandardUncertainty: cfg.Chain.StandardUncertainty,
		Range:               cfg.Device.Range(),
		SensorType:          cfg.Device.SensorTypeValue(),
		TransmitterTol:      cfg.Chain.TransmitterTolerance,
		ControllerTol:       cfg.Chain.ControllerTolerance,
		DisplayTol:          cfg.Chain.DisplayTolerance,
		SensorTolOverride:   cfg.Device.SensorTolerance,
	})
	if err != nil {
		return err
	}

	verdicts := acceptance.Evaluate(cfg.Acceptance, norm, metro)
	fmt.Println(report.Render(norm, metro, verdicts, len(cfg.Acceptance)))

	if acceptance.Rejected(verdicts) {
		return errRejected
	}
	return nil
}

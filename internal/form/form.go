package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/calstack/calstack/internal/config"
	"github.com/calstack/calstack/internal/sample"
	"github.com/calstack/calstack/internal/tolerance"
)

// Inputs is the validated outcome of one interactive session, ready to
// feed both calculators.
type Inputs struct {
	SensorType     tolerance.SensorType
	Range          tolerance.Range
	PrecisionClass tolerance.PrecisionClass
	Sample         sample.Sample

	StandardUncertainty float64
	TransmitterTol      float64
	ControllerTol       float64
	DisplayTol          float64
	SensorTolOverride   *float64

	Details bool
}

// Run collects all analysis inputs interactively. The profile supplies
// initial values so a saved device only needs its calibration data typed
// in. Validation happens inline: a malformed data line or a degenerate
// range is rejected at the field, with the offending context shown.
func Run(cfg *config.Config) (*Inputs, error) {
	var (
		sensorType = cfg.Device.SensorType
		class      = cfg.Device.PrecisionClass
		rangeMin   = formatFloat(cfg.Device.RangeMin)
		rangeMax   = formatFloat(cfg.Device.RangeMax)
		dataText   string
		stdUncert  = formatFloat(cfg.Chain.StandardUncertainty)
		transTol   = formatFloat(cfg.Chain.TransmitterTolerance)
		ctrlTol    = formatFloat(cfg.Chain.ControllerTolerance)
		dispTol    = formatFloat(cfg.Chain.DisplayTolerance)
		overrideS  string
		details    = cfg.Data.Details
	)
	if cfg.Device.SensorTolerance != nil {
		overrideS = formatFloat(*cfg.Device.SensorTolerance)
	}

	device := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Sensor type").
			Options(sensorTypeOptions()...).
			Value(&sensorType),
		huh.NewSelect[string]().
			Title("Precision class").
			Options(precisionClassOptions()...).
			Value(&class),
		huh.NewInput().
			Title("Range lower bound").
			Validate(validFloat).
			Value(&rangeMin),
		huh.NewInput().
			Title("Range upper bound").
			Validate(func(s string) error {
				if err := validFloat(s); err != nil {
					return err
				}
				if lo, err := strconv.ParseFloat(strings.TrimSpace(rangeMin), 64); err == nil {
					hi, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if lo == hi {
						return fmt.Errorf("must differ from the lower bound")
					}
				}
				return nil
			}).
			Value(&rangeMax),
	)

	data := huh.NewGroup(
		huh.NewText().
			Title("Calibration data").
			Description("One <measured>,<error> pair per line.").
			Placeholder("25.0,0.2\n30.0,-0.1").
			Validate(validData).
			Value(&dataText),
	)

	chain := huh.NewGroup(
		huh.NewInput().
			Title("Standard uncertainty").
			Validate(validNonNegative).
			Value(&stdUncert),
		huh.NewInput().
			Title("Transmitter tolerance").
			Validate(validNonNegative).
			Value(&transTol),
		huh.NewInput().
			Title("Controller (PLC) tolerance").
			Validate(validNonNegative).
			Value(&ctrlTol),
		huh.NewInput().
			Title("Display tolerance").
			Validate(validNonNegative).
			Value(&dispTol),
	)

	// Temperature sensors have a built-in tolerance model; only ask for a
	// datasheet value otherwise.
	override := huh.NewGroup(
		huh.NewInput().
			Title("Sensor tolerance (datasheet)").
			Description("Leave empty to use the default of 0.5.").
			Validate(validOptionalNonNegative).
			Value(&overrideS),
	).WithHideFunc(func() bool {
		return sensorType == string(tolerance.SensorTemperature)
	})

	output := huh.NewGroup(
		huh.NewConfirm().
			Title("Show intermediate values?").
			Value(&details),
	)

	if err := huh.NewForm(device, data, chain, override, output).Run(); err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}

	s, err := sample.ParseLines(dataText)
	if err != nil {
		return nil, err
	}

	in := &Inputs{
		SensorType:          tolerance.SensorType(sensorType),
		PrecisionClass:      tolerance.PrecisionClass(class),
		Range:               tolerance.Range{Min: mustFloat(rangeMin), Max: mustFloat(rangeMax)},
		Sample:              s,
		StandardUncertainty: mustFloat(stdUncert),
		TransmitterTol:      mustFloat(transTol),
		ControllerTol:       mustFloat(ctrlTol),
		DisplayTol:          mustFloat(dispTol),
		Details:             details,
	}
	if strings.TrimSpace(overrideS) != "" {
		v := mustFloat(overrideS)
		in.SensorTolOverride = &v
	}
	return in, nil
}

func sensorTypeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(tolerance.SensorTypes))
	for i, st := range tolerance.SensorTypes {
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", st, tolerance.UnitsFor(st)), string(st))
	}
	return opts
}

func precisionClassOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(tolerance.PrecisionClasses))
	for i, pc := range tolerance.PrecisionClasses {
		opts[i] = huh.NewOption(string(pc), string(pc))
	}
	return opts
}

// validFloat accepts any finite number.
func validFloat(s string) error {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

// validNonNegative accepts any finite number >= 0.
func validNonNegative(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must be non-negative")
	}
	return nil
}

// validOptionalNonNegative accepts an empty string or a number >= 0.
func validOptionalNonNegative(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validNonNegative(s)
}

// validData parses the calibration text and requires the two records the
// metrological calculator needs.
func validData(text string) error {
	s, err := sample.ParseLines(text)
	if err != nil {
		return err
	}
	if len(s) < 2 {
		return fmt.Errorf("enter at least two calibration points")
	}
	return nil
}

func mustFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

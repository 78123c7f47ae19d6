package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/calstack/calstack/internal/tolerance"
)

// Default values applied when fields are absent from the profile file.
// The chain defaults match typical temperature-loop component datasheets.
const (
	DefaultRangeMin            = 0.0
	DefaultRangeMax            = 100.0
	DefaultStandardUncertainty = 0.1
	DefaultTransmitterTol      = 0.2
	DefaultControllerTol       = 0.1
	DefaultDisplayTol          = 0.05
)

// Config is the device profile: everything needed to analyze one
// instrument except the calibration data itself.
type Config struct {
	Device     DeviceConfig `yaml:"device"`
	Chain      ChainConfig  `yaml:"chain"`
	Data       DataConfig   `yaml:"data"`
	Acceptance []Rule       `yaml:"acceptance"`
}

// DeviceConfig identifies the instrument under analysis.
type DeviceConfig struct {
	// SensorType is one of: temperature | pressure | flow | speed.
	SensorType string `yaml:"sensor_type"`

	// RangeMin and RangeMax bound the calibrated range in sensor units.
	// They must differ: the span divides every percentage figure.
	RangeMin float64 `yaml:"range_min"`
	RangeMax float64 `yaml:"range_max"`

	// PrecisionClass is one of: high | standard | low.
	PrecisionClass string `yaml:"precision_class"`

	// SensorTolerance is the datasheet sensor tolerance, used only for
	// non-temperature types. Temperature sensors have a built-in model.
	SensorTolerance *float64 `yaml:"sensor_tolerance"`
}

// ChainConfig holds the measurement-chain uncertainty inputs, all in
// sensor units and all non-negative.
type ChainConfig struct {
	// StandardUncertainty is the reference standard's uncertainty.
	StandardUncertainty float64 `yaml:"standard_uncertainty"`

	TransmitterTolerance float64 `yaml:"transmitter_tolerance"`
	ControllerTolerance  float64 `yaml:"controller_tolerance"`
	DisplayTolerance     float64 `yaml:"display_tolerance"`
}

// DataConfig locates the calibration data and controls output detail.
type DataConfig struct {
	// File is the calibration data file. Extension selects the parser:
	// .prom/.metrics for Prometheus expositions, lines otherwise.
	File string `yaml:"file"`

	// Details requests the intermediate-value breakdown in the
	// normative report.
	Details bool `yaml:"details"`
}

// Rule is one acceptance check evaluated against the result records,
// e.g. "max_error > allowed_units".
type Rule struct {
	// Name is the human-readable rule identifier.
	Name string `yaml:"name"`

	// Condition is an expression of the form "<field> <op> <value>" or
	// "<field> <op> <field>". Fields are result-record field names.
	Condition string `yaml:"condition"`

	// Severity is one of: reject | warn.
	Severity string `yaml:"severity"`
}

// SensorTypeValue returns the typed sensor type.
func (d DeviceConfig) SensorTypeValue() tolerance.SensorType {
	return tolerance.SensorType(d.SensorType)
}

// PrecisionClassValue returns the typed precision class.
func (d DeviceConfig) PrecisionClassValue() tolerance.PrecisionClass {
	return tolerance.PrecisionClass(d.PrecisionClass)
}

// Range returns the typed calibrated range.
func (d DeviceConfig) Range() tolerance.Range {
	return tolerance.Range{Min: d.RangeMin, Max: d.RangeMax}
}

// Load reads and parses the YAML profile at path. Missing optional
// fields are filled with defaults; the result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns a profile holding only built-in defaults, for runs
// without a profile file.
func Default() *Config { return defaults() }

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Device: DeviceConfig{
			SensorType:     string(tolerance.SensorTemperature),
			RangeMin:       DefaultRangeMin,
			RangeMax:       DefaultRangeMax,
			PrecisionClass: string(tolerance.ClassStandard),
		},
		Chain: ChainConfig{
			StandardUncertainty:  DefaultStandardUncertainty,
			TransmitterTolerance: DefaultTransmitterTol,
			ControllerTolerance:  DefaultControllerTol,
			DisplayTolerance:     DefaultDisplayTol,
		},
	}
}

// validate checks required fields and structural constraints. The engine
// has defensive fallbacks for unknown types and classes; the profile
// boundary rejects them outright so typos never silently analyze as
// temperature.
func validate(cfg *Config) error {
	if !cfg.Device.SensorTypeValue().Known() {
		return fmt.Errorf("device.sensor_type: unknown type %q", cfg.Device.SensorType)
	}
	if !cfg.Device.PrecisionClassValue().Known() {
		return fmt.Errorf("device.precision_class: unknown class %q", cfg.Device.PrecisionClass)
	}
	if cfg.Device.RangeMin == cfg.Device.RangeMax {
		return fmt.Errorf("device.range_min and range_max must differ")
	}
	if v := cfg.Device.SensorTolerance; v != nil && *v < 0 {
		return fmt.Errorf("device.sensor_tolerance must be non-negative")
	}

	chain := map[string]float64{
		"chain.standard_uncertainty":  cfg.Chain.StandardUncertainty,
		"chain.transmitter_tolerance": cfg.Chain.TransmitterTolerance,
		"chain.controller_tolerance":  cfg.Chain.ControllerTolerance,
		"chain.display_tolerance":     cfg.Chain.DisplayTolerance,
	}
	for name, v := range chain {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative", name)
		}
	}

	for i, rule := range cfg.Acceptance {
		if rule.Name == "" {
			return fmt.Errorf("acceptance[%d]: name is required", i)
		}
		if rule.Condition == "" {
			return fmt.Errorf("acceptance[%d] %q: condition is required", i, rule.Name)
		}
		switch rule.Severity {
		case "reject", "warn", "":
		default:
			return fmt.Errorf("acceptance[%d] %q: unknown severity %q", i, rule.Name, rule.Severity)
		}
	}

	return nil
}

package tolerance

import "fmt"

// SensorType identifies the physical quantity a calibrated instrument
// measures. It selects the normative parameter table and, for
// temperature, the built-in sensor-tolerance model.
type SensorType string

const (
	SensorTemperature SensorType = "temperature"
	SensorPressure    SensorType = "pressure"
	SensorFlow        SensorType = "flow"
	SensorSpeed       SensorType = "speed"
)

// SensorTypes is the ordered set of supported sensor types, for menus
// and validation.
var SensorTypes = []SensorType{SensorTemperature, SensorPressure, SensorFlow, SensorSpeed}

// Known reports whether st is one of the supported sensor types.
func (st SensorType) Known() bool {
	switch st {
	case SensorTemperature, SensorPressure, SensorFlow, SensorSpeed:
		return true
	}
	return false
}

// PrecisionClass is the instrument's accuracy class per the normative
// tables. Each class maps to a maximum permissible error percentage.
type PrecisionClass string

const (
	ClassHigh     PrecisionClass = "high"
	ClassStandard PrecisionClass = "standard"
	ClassLow      PrecisionClass = "low"
)

// PrecisionClasses is the ordered set of supported classes.
var PrecisionClasses = []PrecisionClass{ClassHigh, ClassStandard, ClassLow}

// Known reports whether pc is one of the supported precision classes.
func (pc PrecisionClass) Known() bool {
	switch pc {
	case ClassHigh, ClassStandard, ClassLow:
		return true
	}
	return false
}

// Range is the calibrated range of the instrument in sensor units.
type Range struct {
	Min float64
	Max float64
}

// Span is the signed measurement span, Max - Min. The normative
// calculator uses this signed value on purpose: a reversed range
// produces negative percentage figures rather than being normalized.
func (r Range) Span() float64 { return r.Max - r.Min }

// AbsSpan is the magnitude of the span, used by the metrological
// calculator.
func (r Range) AbsSpan() float64 {
	s := r.Span()
	if s < 0 {
		return -s
	}
	return s
}

// MaxAbsBound is the largest magnitude endpoint of the range.
func (r Range) MaxAbsBound() float64 {
	lo, hi := r.Min, r.Max
	if lo < 0 {
		lo = -lo
	}
	if hi < 0 {
		hi = -hi
	}
	if lo > hi {
		return lo
	}
	return hi
}

// Degenerate reports whether the range has zero span. A degenerate range
// cannot be analyzed: the span is a divisor in every percentage figure.
func (r Range) Degenerate() bool { return r.Min == r.Max }

// Label renders the range the way result records display it,
// e.g. "0 - 100 °C".
func (r Range) Label(units string) string {
	return fmt.Sprintf("%g - %g %s", r.Min, r.Max, units)
}

// UnitsFor returns the display unit label for a sensor type.
func UnitsFor(st SensorType) string {
	switch st {
	case SensorPressure:
		return "in/W"
	case SensorFlow:
		return "m³/h"
	case SensorSpeed:
		return "rpm"
	default:
		return "°C"
	}
}

package tolerance

// Params is the per-sensor-type normative parameter set.
type Params struct {
	// ClassPct maps a precision class to its maximum permissible error,
	// as a percentage of the measurement span.
	ClassPct map[PrecisionClass]float64

	// BaseFactor is the fixed part of the transmission tolerance, in
	// sensor units.
	BaseFactor float64

	// CompFactor scales with the largest magnitude range endpoint to
	// form the range-dependent part of the transmission tolerance.
	CompFactor float64
}

// defaultPrecisionPct is the permissible-error percentage applied when a
// precision class is not present in the table.
const defaultPrecisionPct = 0.5

// normativeParams holds the standards-derived constants per sensor type.
// Initialized once at process start and never mutated.
var normativeParams = map[SensorType]Params{
	SensorTemperature: {
		ClassPct:   map[PrecisionClass]float64{ClassHigh: 0.1, ClassStandard: 0.5, ClassLow: 1.0},
		BaseFactor: 0.15,
		CompFactor: 0.0020,
	},
	SensorPressure: {
		ClassPct:   map[PrecisionClass]float64{ClassHigh: 0.1, ClassStandard: 0.5, ClassLow: 1.0},
		BaseFactor: 0.20,
		CompFactor: 0.0025,
	},
	SensorFlow: {
		ClassPct:   map[PrecisionClass]float64{ClassHigh: 0.2, ClassStandard: 0.5, ClassLow: 1.0},
		BaseFactor: 0.25,
		CompFactor: 0.0030,
	},
	SensorSpeed: {
		ClassPct:   map[PrecisionClass]float64{ClassHigh: 0.1, ClassStandard: 0.5, ClassLow: 1.0},
		BaseFactor: 0.18,
		CompFactor: 0.0015,
	},
}

// paramsFor looks up the normative table for a sensor type. An
// unrecognized type deliberately falls back to the temperature table —
// callers validating input at the boundary never hit this branch, but a
// direct API caller with a bad type still gets a defined answer.
func paramsFor(st SensorType) Params {
	if p, ok := normativeParams[st]; ok {
		return p
	}
	return normativeParams[SensorTemperature]
}

// precisionPct resolves the permissible-error percentage for a class.
// An unrecognized class deliberately falls back to the standard-class
// value of 0.5.
func (p Params) precisionPct(pc PrecisionClass) float64 {
	if v, ok := p.ClassPct[pc]; ok {
		return v
	}
	return defaultPrecisionPct
}

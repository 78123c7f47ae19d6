package tolerance

import (
	"math"

	"github.com/calstack/calstack/internal/sample"
)

// NormativeInput carries everything the standards-based calculator needs.
type NormativeInput struct {
	SensorType     SensorType
	Range          Range
	Sample         sample.Sample
	PrecisionClass PrecisionClass

	// Details requests the intermediate-value sub-record in the result.
	Details bool
}

// NormativeResult is the standards-based tolerance record. Numeric fields
// are rounded to 4 decimals, percentages to 2; field set and rounding are
// a display contract and must not change.
type NormativeResult struct {
	SensorType     SensorType
	Units          string
	RangeLabel     string
	PrecisionClass PrecisionClass

	MeanError        float64
	MaxErrorMeasured float64

	// AllowedErrorPct is the maximum permissible error for the precision
	// class, as a percentage of span; AllowedErrorUnits is the same limit
	// in sensor units.
	AllowedErrorPct   float64
	AllowedErrorUnits float64

	ErrorStdDev float64

	// TransmissionTolerance is the normative tolerance in sensor units;
	// TolerancePct expresses it as a percentage of the signed span.
	TransmissionTolerance float64
	TolerancePct          float64

	CombinedUncertainty float64
	ExpandedUncertainty float64

	// Details is populated only when requested.
	Details *NormativeDetails
}

// NormativeDetails duplicates the raw sample and the unrounded
// intermediate scalars for callers that want to show the working.
type NormativeDetails struct {
	Points []float64
	Errors []float64

	MeanError    float64
	MaxError     float64
	StdDev       float64
	PrecisionPct float64
	BaseFactor   float64
	Compensation float64

	MeasurementSpan   float64
	AllowedErrorUnits float64
	TolerancePct      float64
}

// ComputeNormative derives the transmission tolerance from the normative
// parameter tables and the observed error statistics.
//
// The measurement span is the signed difference max-min: a reversed range
// yields negative percentage figures rather than being normalized, so the
// caller sees exactly what the standards arithmetic produced.
func ComputeNormative(in NormativeInput) (*NormativeResult, error) {
	if len(in.Sample) == 0 {
		return nil, ErrEmptySample
	}
	if in.Range.Degenerate() {
		return nil, ErrDegenerateRange
	}

	errs := in.Sample.Errors()
	meanErr := Mean(errs)
	maxErr := MaxAbs(errs)
	stdDev := PopulationStdDev(errs)

	params := paramsFor(in.SensorType)
	precisionPct := params.precisionPct(in.PrecisionClass)
	compensation := params.CompFactor * in.Range.MaxAbsBound()
	transmission := params.BaseFactor + compensation

	span := in.Range.Span()
	allowedUnits := (precisionPct / 100) * span
	tolerancePct := (transmission / span) * 100

	// Single-term quadrature: sqrt(x²) is just |x|, but the shape matches
	// the multi-term GUM combination used by the metrological calculator.
	combined := math.Sqrt(stdDev * stdDev)
	expanded := 2 * combined // coverage factor k=2

	units := UnitsFor(in.SensorType)
	res := &NormativeResult{
		SensorType:            in.SensorType,
		Units:                 units,
		RangeLabel:            in.Range.Label(units),
		PrecisionClass:        in.PrecisionClass,
		MeanError:             roundTo(meanErr, 4),
		MaxErrorMeasured:      roundTo(maxErr, 4),
		AllowedErrorPct:       roundTo(precisionPct, 2),
		AllowedErrorUnits:     roundTo(allowedUnits, 4),
		ErrorStdDev:           roundTo(stdDev, 4),
		TransmissionTolerance: roundTo(transmission, 4),
		TolerancePct:          roundTo(tolerancePct, 2),
		CombinedUncertainty:   roundTo(combined, 4),
		ExpandedUncertainty:   roundTo(expanded, 4),
	}

	if in.Details {
		res.Details = &NormativeDetails{
			Points:            in.Sample.Measured(),
			Errors:            errs,
			MeanError:         roundTo(meanErr, 4),
			MaxError:          roundTo(maxErr, 4),
			StdDev:            roundTo(stdDev, 4),
			PrecisionPct:      precisionPct,
			BaseFactor:        params.BaseFactor,
			Compensation:      compensation,
			MeasurementSpan:   span,
			AllowedErrorUnits: roundTo(allowedUnits, 4),
			TolerancePct:      roundTo(tolerancePct, 2),
		}
	}

	return res, nil
}

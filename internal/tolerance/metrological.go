package tolerance

import (
	"math"

	"github.com/calstack/calstack/internal/sample"
)

// practicalMargin is the fixed field-practice allowance added on top of
// the expanded uncertainty, in sensor units.
const practicalMargin = 0.05

// MetrologicalInput carries everything the GUM-style calculator needs.
type MetrologicalInput struct {
	Sample sample.Sample

	// StandardUncertainty is the reference standard's uncertainty in
	// sensor units.
	StandardUncertainty float64

	Range      Range
	SensorType SensorType

	// Tolerances of the downstream measurement chain, in sensor units.
	TransmitterTol float64
	ControllerTol  float64
	DisplayTol     float64

	// SensorTolOverride supplies the datasheet sensor tolerance for
	// non-temperature types; ignored for temperature.
	SensorTolOverride *float64
}

// MetrologicalResult is the uncertainty-based tolerance record.
// StrictTolerance is rounded to 4 decimals, the rest to 2.
type MetrologicalResult struct {
	// StrictTolerance is the k=2 expanded uncertainty.
	StrictTolerance float64

	// PracticalTolerance adds the field-practice margin; it is rounded
	// to 2 decimals when computed, not at display time.
	PracticalTolerance float64

	// TolerancePct is the expanded uncertainty as a percentage of the
	// absolute span.
	TolerancePct float64

	// TotalTolerance combines sensor, transmitter, controller and
	// display tolerances in quadrature.
	TotalTolerance float64
}

// ComputeMetrological derives tolerance figures from the calibration
// repeatability and the reference standard's uncertainty, combined per
// GUM, then combines the full measurement chain in quadrature.
//
// The sample must hold at least two records; ErrInsufficientSample is
// returned otherwise.
func ComputeMetrological(in MetrologicalInput) (*MetrologicalResult, error) {
	if in.Range.Degenerate() {
		return nil, ErrDegenerateRange
	}

	stdDev, err := SampleStdDev(in.Sample.Errors())
	if err != nil {
		return nil, err
	}

	// Random (repeatability) and systematic (reference standard)
	// components combine as root sum of squares.
	combined := math.Sqrt(stdDev*stdDev + in.StandardUncertainty*in.StandardUncertainty)
	expanded := 2 * combined // coverage factor k=2, ~95% confidence

	practical := roundTo(expanded+practicalMargin, 2)
	tolerancePct := (expanded / in.Range.AbsSpan()) * 100

	sensorTol := SensorTolerance(in.Range, in.SensorType, in.SensorTolOverride)
	total := math.Sqrt(sensorTol*sensorTol +
		in.TransmitterTol*in.TransmitterTol +
		in.ControllerTol*in.ControllerTol +
		in.DisplayTol*in.DisplayTol)

	return &MetrologicalResult{
		StrictTolerance:    roundTo(expanded, 4),
		PracticalTolerance: practical,
		TolerancePct:       roundTo(tolerancePct, 2),
		TotalTolerance:     roundTo(total, 2),
	}, nil
}

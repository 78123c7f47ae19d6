package tolerance

import (
	"errors"
	"testing"

	"github.com/calstack/calstack/internal/sample"
)

var refSample = sample.Sample{
	{Measured: 25.0, Error: 0.2},
	{Measured: 30.0, Error: -0.1},
}

func TestComputeNormative_Reference(t *testing.T) {
	res, err := ComputeNormative(NormativeInput{
		SensorType:     SensorTemperature,
		Range:          Range{0, 100},
		Sample:         refSample,
		PrecisionClass: ClassStandard,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"MeanError", res.MeanError, 0.05},
		{"MaxErrorMeasured", res.MaxErrorMeasured, 0.2},
		{"AllowedErrorPct", res.AllowedErrorPct, 0.5},
		{"AllowedErrorUnits", res.AllowedErrorUnits, 0.5},
		{"ErrorStdDev", res.ErrorStdDev, 0.15},
		{"TransmissionTolerance", res.TransmissionTolerance, 0.35},
		{"TolerancePct", res.TolerancePct, 0.35},
		{"CombinedUncertainty", res.CombinedUncertainty, 0.15},
		{"ExpandedUncertainty", res.ExpandedUncertainty, 0.3},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want, 1e-9) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if res.Units != "°C" {
		t.Errorf("Units = %q, want °C", res.Units)
	}
	if res.RangeLabel != "0 - 100 °C" {
		t.Errorf("RangeLabel = %q, want %q", res.RangeLabel, "0 - 100 °C")
	}
	if res.Details != nil {
		t.Error("Details should be nil when not requested")
	}
}

func TestComputeNormative_PerSensorTables(t *testing.T) {
	tests := []struct {
		st               SensorType
		class            PrecisionClass
		wantTransmission float64 // base + comp*100 for range (0,100)
		wantAllowedPct   float64
		wantUnits        string
	}{
		{SensorTemperature, ClassHigh, 0.35, 0.1, "°C"},
		{SensorPressure, ClassStandard, 0.45, 0.5, "in/W"},
		{SensorFlow, ClassHigh, 0.55, 0.2, "m³/h"},
		{SensorSpeed, ClassLow, 0.33, 1.0, "rpm"},
	}
	for _, tc := range tests {
		t.Run(string(tc.st), func(t *testing.T) {
			res, err := ComputeNormative(NormativeInput{
				SensorType:     tc.st,
				Range:          Range{0, 100},
				Sample:         refSample,
				PrecisionClass: tc.class,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(res.TransmissionTolerance, tc.wantTransmission, 1e-9) {
				t.Errorf("TransmissionTolerance = %v, want %v", res.TransmissionTolerance, tc.wantTransmission)
			}
			if !almostEqual(res.AllowedErrorPct, tc.wantAllowedPct, 1e-9) {
				t.Errorf("AllowedErrorPct = %v, want %v", res.AllowedErrorPct, tc.wantAllowedPct)
			}
			if res.Units != tc.wantUnits {
				t.Errorf("Units = %q, want %q", res.Units, tc.wantUnits)
			}
		})
	}
}

func TestComputeNormative_DefensiveFallbacks(t *testing.T) {
	t.Run("unknown sensor type uses temperature table", func(t *testing.T) {
		res, err := ComputeNormative(NormativeInput{
			SensorType:     SensorType("vibration"),
			Range:          Range{0, 100},
			Sample:         refSample,
			PrecisionClass: ClassStandard,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(res.TransmissionTolerance, 0.35, 1e-9) {
			t.Errorf("TransmissionTolerance = %v, want temperature-table 0.35", res.TransmissionTolerance)
		}
	})

	t.Run("unknown precision class uses 0.5", func(t *testing.T) {
		res, err := ComputeNormative(NormativeInput{
			SensorType:     SensorTemperature,
			Range:          Range{0, 100},
			Sample:         refSample,
			PrecisionClass: PrecisionClass("laboratory"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(res.AllowedErrorPct, 0.5, 1e-9) {
			t.Errorf("AllowedErrorPct = %v, want fallback 0.5", res.AllowedErrorPct)
		}
	})
}

func TestComputeNormative_Errors(t *testing.T) {
	t.Run("empty sample", func(t *testing.T) {
		_, err := ComputeNormative(NormativeInput{
			SensorType:     SensorTemperature,
			Range:          Range{0, 100},
			PrecisionClass: ClassStandard,
		})
		if !errors.Is(err, ErrEmptySample) {
			t.Errorf("err = %v, want ErrEmptySample", err)
		}
	})

	t.Run("degenerate range", func(t *testing.T) {
		_, err := ComputeNormative(NormativeInput{
			SensorType:     SensorTemperature,
			Range:          Range{50, 50},
			Sample:         refSample,
			PrecisionClass: ClassStandard,
		})
		if !errors.Is(err, ErrDegenerateRange) {
			t.Errorf("err = %v, want ErrDegenerateRange", err)
		}
	})

	t.Run("single record is fine", func(t *testing.T) {
		// The normative path has no minimum sample size beyond non-empty.
		_, err := ComputeNormative(NormativeInput{
			SensorType:     SensorTemperature,
			Range:          Range{0, 100},
			Sample:         sample.Sample{{Measured: 25, Error: 0.2}},
			PrecisionClass: ClassStandard,
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

// The normative span is signed: a reversed range yields negative
// percentage figures. This mirrors the reference behavior and is flagged
// here rather than normalized.
func TestComputeNormative_ReversedRange(t *testing.T) {
	res, err := ComputeNormative(NormativeInput{
		SensorType:     SensorTemperature,
		Range:          Range{100, 0},
		Sample:         refSample,
		PrecisionClass: ClassStandard,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.TolerancePct, -0.35, 1e-9) {
		t.Errorf("TolerancePct = %v, want -0.35 for reversed range", res.TolerancePct)
	}
	if !almostEqual(res.AllowedErrorUnits, -0.5, 1e-9) {
		t.Errorf("AllowedErrorUnits = %v, want -0.5 for reversed range", res.AllowedErrorUnits)
	}
}

func TestComputeNormative_Details(t *testing.T) {
	res, err := ComputeNormative(NormativeInput{
		SensorType:     SensorTemperature,
		Range:          Range{0, 100},
		Sample:         refSample,
		PrecisionClass: ClassStandard,
		Details:        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := res.Details
	if d == nil {
		t.Fatal("Details missing")
	}

	if len(d.Points) != 2 || d.Points[0] != 25.0 || d.Points[1] != 30.0 {
		t.Errorf("Points = %v, want [25 30]", d.Points)
	}
	if len(d.Errors) != 2 || d.Errors[0] != 0.2 || d.Errors[1] != -0.1 {
		t.Errorf("Errors = %v, want [0.2 -0.1]", d.Errors)
	}
	if !almostEqual(d.PrecisionPct, 0.5, 1e-12) {
		t.Errorf("PrecisionPct = %v, want 0.5", d.PrecisionPct)
	}
	if !almostEqual(d.BaseFactor, 0.15, 1e-12) {
		t.Errorf("BaseFactor = %v, want 0.15", d.BaseFactor)
	}
	if !almostEqual(d.Compensation, 0.2, 1e-12) {
		t.Errorf("Compensation = %v, want 0.2", d.Compensation)
	}
	if !almostEqual(d.MeasurementSpan, 100, 1e-12) {
		t.Errorf("MeasurementSpan = %v, want 100", d.MeasurementSpan)
	}
}

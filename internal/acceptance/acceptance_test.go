package acceptance

import (
	"testing"

	"github.com/calstack/calstack/internal/config"
	"github.com/calstack/calstack/internal/tolerance"
)

// Fixed records with easy-to-reason values.
var (
	norm = &tolerance.NormativeResult{
		MeanError:             0.05,
		MaxErrorMeasured:      0.6,
		AllowedErrorPct:       0.5,
		AllowedErrorUnits:     0.5,
		ErrorStdDev:           0.15,
		TransmissionTolerance: 0.35,
		TolerancePct:          0.35,
	}
	metro = &tolerance.MetrologicalResult{
		StrictTolerance:    0.469,
		PracticalTolerance: 0.52,
		TolerancePct:       0.47,
		TotalTolerance:     0.42,
	}
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		rule      config.Rule
		wantFired bool
		wantValue float64
	}{
		{
			name:      "literal threshold fires",
			rule:      config.Rule{Name: "r", Condition: "max_error > 0.5", Severity: "reject"},
			wantFired: true,
			wantValue: 0.6,
		},
		{
			name:      "literal threshold holds",
			rule:      config.Rule{Name: "r", Condition: "mean_error > 0.5", Severity: "reject"},
			wantFired: false,
		},
		{
			name:      "field against field",
			rule:      config.Rule{Name: "r", Condition: "max_error > allowed_units", Severity: "reject"},
			wantFired: true,
			wantValue: 0.6,
		},
		{
			name:      "metrological field",
			rule:      config.Rule{Name: "r", Condition: "practical_tolerance >= 0.52", Severity: "warn"},
			wantFired: true,
			wantValue: 0.52,
		},
		{
			name:      "less-than operator",
			rule:      config.Rule{Name: "r", Condition: "total_tolerance < 0.5", Severity: "warn"},
			wantFired: true,
			wantValue: 0.42,
		},
		{
			name:      "equality operator",
			rule:      config.Rule{Name: "r", Condition: "tolerance_pct == 0.35", Severity: "warn"},
			wantFired: true,
			wantValue: 0.35,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate([]config.Rule{tc.rule}, norm, metro)
			if tc.wantFired {
				if len(got) != 1 {
					t.Fatalf("got %d verdicts, want 1", len(got))
				}
				if got[0].Value != tc.wantValue {
					t.Errorf("Value = %v, want %v", got[0].Value, tc.wantValue)
				}
				if got[0].Severity != tc.rule.Severity {
					t.Errorf("Severity = %q, want %q", got[0].Severity, tc.rule.Severity)
				}
			} else if len(got) != 0 {
				t.Errorf("got %d verdicts, want 0", len(got))
			}
		})
	}
}

func TestEvaluate_SkipsBadRules(t *testing.T) {
	rules := []config.Rule{
		{Name: "unknown field", Condition: "wobble > 1"},
		{Name: "unknown rhs field", Condition: "max_error > wobble"},
		{Name: "bad operator", Condition: "max_error ~ 1"},
		{Name: "too few tokens", Condition: "max_error"},
		{Name: "valid", Condition: "max_error > 0.5"},
	}
	got := Evaluate(rules, norm, metro)
	if len(got) != 1 || got[0].Rule != "valid" {
		t.Errorf("got %+v, want only the valid rule to fire", got)
	}
}

func TestEvaluate_DefaultSeverity(t *testing.T) {
	got := Evaluate([]config.Rule{{Name: "r", Condition: "max_error > 0.5"}}, norm, metro)
	if len(got) != 1 {
		t.Fatalf("got %d verdicts, want 1", len(got))
	}
	if got[0].Severity != SeverityReject {
		t.Errorf("Severity = %q, want default %q", got[0].Severity, SeverityReject)
	}
}

func TestRejected(t *testing.T) {
	tests := []struct {
		name     string
		verdicts []Verdict
		want     bool
	}{
		{"none", nil, false},
		{"warn only", []Verdict{{Severity: SeverityWarn}}, false},
		{"reject present", []Verdict{{Severity: SeverityWarn}, {Severity: SeverityReject}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Rejected(tc.verdicts); got != tc.want {
				t.Errorf("Rejected = %v, want %v", got, tc.want)
			}
		})
	}
}

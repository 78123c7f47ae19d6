package acceptance

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/calstack/calstack/internal/config"
	"github.com/calstack/calstack/internal/tolerance"
)

// Severity levels a fired rule can carry. A rule with no severity is
// treated as reject.
const (
	SeverityReject = "reject"
	SeverityWarn   = "warn"
)

// Verdict is one fired acceptance rule.
type Verdict struct {
	Rule      string
	Severity  string
	Condition string

	// Value is the left-hand field's value at evaluation time.
	Value float64
}

// Evaluate checks each rule against the two result records and returns
// the verdicts for rules that fired. A rule whose condition cannot be
// parsed or that names an unknown field is skipped with a warning — a
// bad rule must never block an otherwise valid analysis.
func Evaluate(rules []config.Rule, norm *tolerance.NormativeResult, metro *tolerance.MetrologicalResult) []Verdict {
	var verdicts []Verdict
	for _, rule := range rules {
		fired, value, ok := evalCondition(rule.Condition, norm, metro)
		if !ok {
			slog.Warn("acceptance: skipping unparsable rule",
				"rule", rule.Name, "condition", rule.Condition)
			continue
		}
		if !fired {
			continue
		}

		severity := rule.Severity
		if severity == "" {
			severity = SeverityReject
		}
		verdicts = append(verdicts, Verdict{
			Rule:      rule.Name,
			Severity:  severity,
			Condition: rule.Condition,
			Value:     value,
		})
	}
	return verdicts
}

// Rejected reports whether any verdict carries reject severity.
func Rejected(verdicts []Verdict) bool {
	for _, v := range verdicts {
		if v.Severity == SeverityReject {
			return true
		}
	}
	return false
}

// evalCondition evaluates a "<field> <op> <rhs>" expression, where rhs is
// a numeric literal or another field name.
//
// Supported fields:
//
//	mean_error, max_error, allowed_pct, allowed_units, error_stddev,
//	transmission_tolerance, tolerance_pct            (normative record)
//	strict_tolerance, practical_tolerance,
//	metro_tolerance_pct, total_tolerance             (metrological record)
//
// Returns (fired, left-hand value, ok). ok is false when the expression
// cannot be parsed or a field is unknown.
func evalCondition(cond string, norm *tolerance.NormativeResult, metro *tolerance.MetrologicalResult) (bool, float64, bool) {
	parts := strings.Fields(cond)
	if len(parts) != 3 {
		return false, 0, false
	}
	field, op, rhs := parts[0], parts[1], parts[2]

	v, ok := numericField(field, norm, metro)
	if !ok {
		return false, 0, false
	}

	threshold, err := strconv.ParseFloat(rhs, 64)
	if err != nil {
		// Not a literal — try a field-to-field comparison.
		threshold, ok = numericField(rhs, norm, metro)
		if !ok {
			return false, 0, false
		}
	}

	fired, ok := compareFloat(v, op, threshold)
	return fired, v, ok
}

// numericField maps a field name to its value in the result records.
func numericField(field string, norm *tolerance.NormativeResult, metro *tolerance.MetrologicalResult) (float64, bool) {
	switch field {
	case "mean_error":
		return norm.MeanError, true
	case "max_error":
		return norm.MaxErrorMeasured, true
	case "allowed_pct":
		return norm.AllowedErrorPct, true
	case "allowed_units":
		return norm.AllowedErrorUnits, true
	case "error_stddev":
		return norm.ErrorStdDev, true
	case "transmission_tolerance":
		return norm.TransmissionTolerance, true
	case "tolerance_pct":
		return norm.TolerancePct, true
	case "strict_tolerance":
		return metro.StrictTolerance, true
	case "practical_tolerance":
		return metro.PracticalTolerance, true
	case "metro_tolerance_pct":
		return metro.TolerancePct, true
	case "total_tolerance":
		return metro.TotalTolerance, true
	default:
		return 0, false
	}
}

// compareFloat applies a comparison operator to two float64 values.
func compareFloat(v float64, op string, threshold float64) (bool, bool) {
	switch op {
	case ">":
		return v > threshold, true
	case ">=":
		return v >= threshold, true
	case "<":
		return v < threshold, true
	case "<=":
		return v <= threshold, true
	case "==":
		return v == threshold, true
	default:
		return false, false
	}
}

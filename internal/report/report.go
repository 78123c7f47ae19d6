package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/calstack/calstack/internal/acceptance"
	"github.com/calstack/calstack/internal/tolerance"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	rejectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

const labelWidth = 34

// RenderNormative renders the standards-based result record, one labelled
// field per line, with the details breakdown when present.
func RenderNormative(res *tolerance.NormativeResult) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Normative results") + "\n")

	writeField(&b, "Sensor type", string(res.SensorType))
	writeField(&b, "Units", res.Units)
	writeField(&b, "Calibrated range", res.RangeLabel)
	writeField(&b, "Precision class", string(res.PrecisionClass))
	writeNum(&b, "Mean error", res.MeanError, res.Units)
	writeNum(&b, "Max measured error", res.MaxErrorMeasured, res.Units)
	writeNum(&b, "Max permissible error", res.AllowedErrorPct, "%")
	writeNum(&b, "Max permissible error", res.AllowedErrorUnits, res.Units)
	writeNum(&b, "Error standard deviation", res.ErrorStdDev, res.Units)
	writeNum(&b, "Transmission tolerance", res.TransmissionTolerance, res.Units)
	writeNum(&b, "Transmission tolerance", res.TolerancePct, "%")
	writeNum(&b, "Combined uncertainty", res.CombinedUncertainty, res.Units)
	writeNum(&b, "Expanded uncertainty (k=2)", res.ExpandedUncertainty, res.Units)

	if res.Details != nil {
		b.WriteString("\n" + sectionStyle.Render("Intermediate values") + "\n")
		writeField(&b, "Calibration points", joinFloats(res.Details.Points))
		writeField(&b, "Errors", joinFloats(res.Details.Errors))
		writeNum(&b, "Precision base", res.Details.PrecisionPct, "%")
		writeNum(&b, "Base factor", res.Details.BaseFactor, "")
		writeNum(&b, "Compensation", res.Details.Compensation, "")
		writeNum(&b, "Measurement span", res.Details.MeasurementSpan, res.Units)
		writeNum(&b, "Max permissible error", res.Details.AllowedErrorUnits, res.Units)
		writeNum(&b, "Transmission tolerance", res.Details.TolerancePct, "%")
	}

	return b.String()
}

// RenderMetrological renders the uncertainty-based result record.
func RenderMetrological(res *tolerance.MetrologicalResult, units string) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Metrological results") + "\n")

	writeNum(&b, "Strict tolerance (k=2)", res.StrictTolerance, units)
	writeNum(&b, "Practical tolerance", res.PracticalTolerance, units)
	writeNum(&b, "Tolerance of calibrated range", res.TolerancePct, "%")
	writeNum(&b, "Total chain tolerance", res.TotalTolerance, units)

	return b.String()
}

// RenderVerdicts renders the acceptance outcome. No verdicts means every
// rule passed.
func RenderVerdicts(verdicts []acceptance.Verdict, ruleCount int) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Acceptance") + "\n")

	if len(verdicts) == 0 {
		if ruleCount == 0 {
			b.WriteString(labelStyle.Render("  no acceptance rules configured") + "\n")
		} else {
			b.WriteString(passStyle.Render(fmt.Sprintf("  PASS — all %d rules satisfied", ruleCount)) + "\n")
		}
		return b.String()
	}

	for _, v := range verdicts {
		style := warnStyle
		tag := "WARN"
		if v.Severity == acceptance.SeverityReject {
			style = rejectStyle
			tag = "REJECT"
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s %s (%s, value %s)",
			tag, v.Rule, v.Condition, formatNum(v.Value))) + "\n")
	}
	return b.String()
}

// Render assembles the full report: both result records side by side in
// spirit — normative first, metrological second — plus verdicts.
func Render(norm *tolerance.NormativeResult, metro *tolerance.MetrologicalResult, verdicts []acceptance.Verdict, ruleCount int) string {
	parts := []string{
		titleStyle.Render("Sensor transmission tolerance analysis"),
		RenderNormative(norm),
		RenderMetrological(metro, norm.Units),
		RenderVerdicts(verdicts, ruleCount),
	}
	return strings.Join(parts, "\n")
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render(pad(label)), value))
}

func writeNum(b *strings.Builder, label string, v float64, units string) {
	value := formatNum(v)
	if units != "" {
		value += " " + units
	}
	writeField(b, label, value)
}

// pad right-pads a label to the shared column width.
func pad(label string) string {
	if len(label) < labelWidth {
		label += strings.Repeat(" ", labelWidth-len(label))
	}
	return label
}

// formatNum prints a float without trailing zeros; values arrive already
// rounded per the result-record contract.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = formatNum(x)
	}
	return strings.Join(parts, ", ")
}

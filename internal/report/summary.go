package report

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
	"github.com/KaramelBytes/hmpi-cli/internal/utils"
)

// SummaryText renders a batch summary as plain text with recommendations.
func SummaryText(s scoring.Summary) string {
	var b strings.Builder
	b.WriteString("Water Quality Analysis Summary:\n\n")
	fmt.Fprintf(&b, "Total Samples Analyzed: %d\n\n", s.TotalSamples)
	b.WriteString("Quality Distribution:\n")
	fmt.Fprintf(&b, "• Safe Water: %d samples (%s%%)\n", s.SafeCount, utils.Percent(s.SafeCount, s.TotalSamples))
	fmt.Fprintf(&b, "• Moderate Risk: %d samples (%s%%)\n", s.ModerateCount, utils.Percent(s.ModerateCount, s.TotalSamples))
	fmt.Fprintf(&b, "• Unsafe Water: %d samples (%s%%)\n\n", s.UnsafeCount, utils.Percent(s.UnsafeCount, s.TotalSamples))
	b.WriteString("Average Pollution Indices:\n")
	fmt.Fprintf(&b, "• Heavy Metal Pollution Index (HMPI): %s\n", utils.FormatFloat(s.AverageHMPI))
	fmt.Fprintf(&b, "• Heavy Metal Pollution Index (HPI): %s\n\n", utils.FormatFloat(s.AverageHPI))
	b.WriteString("Recommendations:\n")
	for _, line := range Recommendations(s) {
		b.WriteString("• " + line + "\n")
	}
	return b.String()
}

// Recommendations lists follow-up actions for a batch.
func Recommendations(s scoring.Summary) []string {
	var out []string
	if s.UnsafeCount > 0 {
		out = append(out, fmt.Sprintf("Immediate attention required for %d unsafe samples", s.UnsafeCount))
	}
	if s.ModerateCount > 0 {
		out = append(out, fmt.Sprintf("Monitoring recommended for %d moderate risk samples", s.ModerateCount))
	}
	if s.TotalSamples > 0 && s.SafeCount == s.TotalSamples {
		out = append(out, "All samples meet safety standards")
	}
	return out
}

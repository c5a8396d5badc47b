// Package textutil holds small text and formatting helpers shared across the
// extraction, analysis, and report layers.
package textutil

import (
	"fmt"
	"strings"
	"time"
)

// CleanText collapses runs of whitespace into single spaces and trims the
// ends. Used on extracted text where the source formatting carries no meaning.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Truncate hard-cuts text to at most max characters, ending in "..." when a
// cut was made. Truncating an already-truncated string at the same or a
// larger length is a no-op. A max smaller than the suffix leaves only the
// suffix.
func Truncate(text string, max int) string {
	const suffix = "..."
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	cut := max - len(suffix)
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + suffix
}

// FormatDuration renders a duration in seconds as "1h 2m 3s", "2m 3s", or "3s".
func FormatDuration(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// Timestamp formats a time for use in file and directory names.
func Timestamp(t time.Time) string {
	return t.Format("2006-01-02T15-04-05")
}

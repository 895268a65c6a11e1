package utils

import "strconv"

// Truncate shortens text to at most limit runes, marking the cut with "…".
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

// FormatFloat renders v with the shortest representation that parses back
// to the same value.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Percent renders part/total as a percentage with one decimal place.
func Percent(part, total int) string {
	if total == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(float64(part)*100/float64(total), 'f', 1, 64)
}

package scoring

// Classify derives the safety classification. When per-metal scores are
// available they take precedence: any metal above 100 makes the sample
// Unsafe, otherwise it is Safe, whatever the blended HMPI says. Moderate is
// only reachable through the HMPI fallback used when scores is nil.
func Classify(hmpi float64, scores *MetalIndexScores) Classification {
	if scores != nil {
		if scores.AnyExceeds() {
			return ClassUnsafe
		}
		return ClassSafe
	}
	return ClassifyByHMPI(hmpi)
}

// ClassifyByHMPI is the threshold-only classification for callers without
// per-metal data.
func ClassifyByHMPI(hmpi float64) Classification {
	switch {
	case hmpi <= 100:
		return ClassSafe
	case hmpi <= 200:
		return ClassModerate
	default:
		return ClassUnsafe
	}
}

// RiskLevelFor maps HPI onto the four risk tiers.
func RiskLevelFor(hpi float64) RiskLevel {
	switch {
	case hpi <= 25:
		return RiskLow
	case hpi <= 50:
		return RiskMedium
	case hpi <= 100:
		return RiskHigh
	default:
		return RiskCritical
	}
}

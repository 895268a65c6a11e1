package scoring

import "github.com/KaramelBytes/hmpi-cli/internal/standards"

// ratio is concentration over regulatory limit. Limits are non-zero constants.
func ratio(s WaterSample, sym standards.Symbol) float64 {
	return s.Concentration(sym) / standards.Limit(sym)
}

// HMPI is the weighted compliance average Σ(w·c/limit)/Σw, 2 decimals.
// It is not capped per metal.
func HMPI(s WaterSample) float64 {
	var sum float64
	for _, e := range standards.All() {
		sum += float64(e.Weight) * ratio(s, e.Symbol)
	}
	return Round(sum/float64(standards.TotalWeight()), 2)
}

// subIndex is Qi = 100·(c-I)/(limit-I) with the ideal value I = 0, pinned to
// exactly 100 when the concentration sits on the limit.
func subIndex(c, limit float64) float64 {
	if c == limit {
		return 100
	}
	return 100 * c / limit
}

// HPI is the weighted average of the percentage sub-indices, 2 decimals.
func HPI(s WaterSample) float64 {
	var sum float64
	for _, e := range standards.All() {
		sum += float64(e.Weight) * subIndex(s.Concentration(e.Symbol), e.Limit)
	}
	return Round(sum/float64(standards.TotalWeight()), 2)
}

// MetalContributions reports each metal's percent of its limit, 2 decimals.
func MetalContributions(s WaterSample) Contributions {
	pct := func(sym standards.Symbol) float64 { return Round(ratio(s, sym)*100, 2) }
	return Contributions{
		Pb: pct(standards.Lead),
		As: pct(standards.Arsenic),
		Cd: pct(standards.Cadmium),
		Cr: pct(standards.Chromium),
		Ni: pct(standards.Nickel),
	}
}

func metalIndex(s WaterSample, sym standards.Symbol) MetalIndexScore {
	v := Round(ratio(s, sym)*100, 1)
	status := MetalSafe
	if v > 100 {
		status = MetalUnsafe
	}
	return MetalIndexScore{
		Value:         v,
		Status:        status,
		Concentration: Round(s.Concentration(sym), 4),
	}
}

// CalculateMetalIndexScores computes the per-metal compliance scores.
func CalculateMetalIndexScores(s WaterSample) MetalIndexScores {
	return MetalIndexScores{
		Pb: metalIndex(s, standards.Lead),
		As: metalIndex(s, standards.Arsenic),
		Cd: metalIndex(s, standards.Cadmium),
		Cr: metalIndex(s, standards.Chromium),
		Ni: metalIndex(s, standards.Nickel),
	}
}

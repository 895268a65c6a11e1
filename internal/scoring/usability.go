package scoring

// Fixed justifications, one per branch.
const (
	ReasonDrinkingCritical = "Critical metals (Pb/As/Cd) exceed WHO drinking water standards"
	ReasonDrinkingExceeds  = "Metal contamination exceeds WHO drinking water standards"
	ReasonDrinkingCaution  = "Approaching WHO limits - regular monitoring recommended"
	ReasonDrinkingSafe     = "Meets WHO drinking water standards"

	ReasonAgricultureToxic   = "High toxic metal levels harmful to crops and soil"
	ReasonAgricultureDamage  = "Contamination levels may damage crops and accumulate in soil"
	ReasonAgricultureCaution = "Monitor crop uptake - may affect sensitive plants"
	ReasonAgricultureSafe    = "Suitable for irrigation and crop production"

	ReasonIndustrialUnsafe  = "May cause corrosion and equipment damage"
	ReasonIndustrialCaution = "May require treatment for sensitive processes"
	ReasonIndustrialSafe    = "Suitable for most industrial applications"
)

// AssessUsability evaluates drinking, agriculture and industrial suitability.
// Each chain is ordered and the first matching branch wins; the thresholds
// overlap across branches on purpose.
func AssessUsability(hmpi, hpi float64, m MetalIndexScores) Usability {
	criticalUnsafe := m.Pb.Value > 100 || m.As.Value > 100 || m.Cd.Value > 100
	anyUnsafe := m.AnyExceeds()

	var u Usability

	switch {
	case criticalUnsafe:
		u.Drinking = Verdict{UseUnsafe, ReasonDrinkingCritical}
	case anyUnsafe || hmpi > 100:
		u.Drinking = Verdict{UseUnsafe, ReasonDrinkingExceeds}
	case hmpi > 75 || hpi > 75:
		u.Drinking = Verdict{UseCaution, ReasonDrinkingCaution}
	default:
		u.Drinking = Verdict{UseSafe, ReasonDrinkingSafe}
	}

	switch {
	case criticalUnsafe && (m.Pb.Value > 200 || m.As.Value > 150 || m.Cd.Value > 200):
		u.Agriculture = Verdict{UseUnsafe, ReasonAgricultureToxic}
	case hmpi > 300 || hpi > 200:
		u.Agriculture = Verdict{UseUnsafe, ReasonAgricultureDamage}
	case anyUnsafe || hmpi > 150 || hpi > 100:
		u.Agriculture = Verdict{UseCaution, ReasonAgricultureCaution}
	default:
		u.Agriculture = Verdict{UseSafe, ReasonAgricultureSafe}
	}

	switch {
	case hmpi > 500 || hpi > 400:
		u.Industrial = Verdict{UseUnsafe, ReasonIndustrialUnsafe}
	case hmpi > 300 || hpi > 200 || anyUnsafe:
		u.Industrial = Verdict{UseCaution, ReasonIndustrialCaution}
	default:
		u.Industrial = Verdict{UseSafe, ReasonIndustrialSafe}
	}

	return u
}

package scoring

import "testing"

func scores(pb, as, cd, cr, ni float64) MetalIndexScores {
	mk := func(v float64) MetalIndexScore {
		st := MetalSafe
		if v > 100 {
			st = MetalUnsafe
		}
		return MetalIndexScore{Value: v, Status: st}
	}
	return MetalIndexScores{Pb: mk(pb), As: mk(as), Cd: mk(cd), Cr: mk(cr), Ni: mk(ni)}
}

func TestAssessUsabilityDrinking(t *testing.T) {
	tests := []struct {
		name      string
		hmpi, hpi float64
		m         MetalIndexScores
		want      Verdict
	}{
		{"critical metal wins over low indices", 50, 40, scores(150, 10, 10, 10, 10), Verdict{UseUnsafe, ReasonDrinkingCritical}},
		{"non-critical metal exceeds", 10, 10, scores(10, 10, 10, 120, 10), Verdict{UseUnsafe, ReasonDrinkingExceeds}},
		{"hmpi above 100", 100.5, 10, scores(10, 10, 10, 10, 10), Verdict{UseUnsafe, ReasonDrinkingExceeds}},
		{"hpi approaching", 10, 75.01, scores(10, 10, 10, 10, 10), Verdict{UseCaution, ReasonDrinkingCaution}},
		{"hmpi approaching", 76, 10, scores(10, 10, 10, 10, 10), Verdict{UseCaution, ReasonDrinkingCaution}},
		{"at 75 is safe", 75, 75, scores(100, 100, 100, 100, 100), Verdict{UseSafe, ReasonDrinkingSafe}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessUsability(tt.hmpi, tt.hpi, tt.m).Drinking
			if got != tt.want {
				t.Errorf("drinking = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAssessUsabilityAgriculture(t *testing.T) {
	tests := []struct {
		name      string
		hmpi, hpi float64
		m         MetalIndexScores
		want      Verdict
	}{
		{"lead above 200", 1, 1, scores(201, 10, 10, 10, 10), Verdict{UseUnsafe, ReasonAgricultureToxic}},
		{"arsenic above 150", 1, 1, scores(10, 151, 10, 10, 10), Verdict{UseUnsafe, ReasonAgricultureToxic}},
		{"cadmium above 200", 1, 1, scores(10, 10, 201, 10, 10), Verdict{UseUnsafe, ReasonAgricultureToxic}},
		{"critical but mild falls through to hmpi rule", 350, 10, scores(150, 10, 10, 10, 10), Verdict{UseUnsafe, ReasonAgricultureDamage}},
		{"high chromium alone is not toxic rule", 1, 1, scores(10, 10, 10, 900, 10), Verdict{UseCaution, ReasonAgricultureCaution}},
		{"hpi above 200", 1, 200.5, scores(10, 10, 10, 10, 10), Verdict{UseUnsafe, ReasonAgricultureDamage}},
		{"hmpi above 150", 151, 1, scores(10, 10, 10, 10, 10), Verdict{UseCaution, ReasonAgricultureCaution}},
		{"hpi above 100", 1, 101, scores(10, 10, 10, 10, 10), Verdict{UseCaution, ReasonAgricultureCaution}},
		{"safe", 150, 100, scores(100, 100, 100, 100, 100), Verdict{UseSafe, ReasonAgricultureSafe}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessUsability(tt.hmpi, tt.hpi, tt.m).Agriculture
			if got != tt.want {
				t.Errorf("agriculture = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAssessUsabilityIndustrial(t *testing.T) {
	tests := []struct {
		name      string
		hmpi, hpi float64
		m         MetalIndexScores
		want      Verdict
	}{
		{"hmpi above 500", 501, 1, scores(10, 10, 10, 10, 10), Verdict{UseUnsafe, ReasonIndustrialUnsafe}},
		{"hpi above 400", 1, 401, scores(10, 10, 10, 10, 10), Verdict{UseUnsafe, ReasonIndustrialUnsafe}},
		{"hmpi above 300", 301, 1, scores(10, 10, 10, 10, 10), Verdict{UseCaution, ReasonIndustrialCaution}},
		{"hpi above 200", 1, 201, scores(10, 10, 10, 10, 10), Verdict{UseCaution, ReasonIndustrialCaution}},
		{"any metal unsafe", 1, 1, scores(10, 10, 10, 10, 101), Verdict{UseCaution, ReasonIndustrialCaution}},
		{"safe", 300, 200, scores(100, 100, 100, 100, 100), Verdict{UseSafe, ReasonIndustrialSafe}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessUsability(tt.hmpi, tt.hpi, tt.m).Industrial
			if got != tt.want {
				t.Errorf("industrial = %+v, want %+v", got, tt.want)
			}
		})
	}
}

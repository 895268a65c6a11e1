package scoring

import "testing"

func TestClassifyMetalPathNeverModerate(t *testing.T) {
	safe := CalculateMetalIndexScores(halfLimitSample())
	// a huge HMPI does not matter when per-metal scores are available
	if got := Classify(999, &safe); got != ClassSafe {
		t.Errorf("Classify(999, safe scores) = %s, want Safe", got)
	}
	unsafe := CalculateMetalIndexScores(mixedSample())
	if got := Classify(0.5, &unsafe); got != ClassUnsafe {
		t.Errorf("Classify(0.5, unsafe scores) = %s, want Unsafe", got)
	}
}

func TestClassifyFallback(t *testing.T) {
	tests := []struct {
		hmpi float64
		want Classification
	}{
		{0, ClassSafe},
		{100, ClassSafe},
		{100.01, ClassModerate},
		{200, ClassModerate},
		{200.01, ClassUnsafe},
	}
	for _, tt := range tests {
		if got := Classify(tt.hmpi, nil); got != tt.want {
			t.Errorf("Classify(%v, nil) = %s, want %s", tt.hmpi, got, tt.want)
		}
		if got := ClassifyByHMPI(tt.hmpi); got != tt.want {
			t.Errorf("ClassifyByHMPI(%v) = %s, want %s", tt.hmpi, got, tt.want)
		}
	}
}

func TestRiskLevelBreakpoints(t *testing.T) {
	tests := []struct {
		hpi  float64
		want RiskLevel
	}{
		{0, RiskLow},
		{25, RiskLow},
		{25.01, RiskMedium},
		{50, RiskMedium},
		{50.01, RiskHigh},
		{100, RiskHigh},
		{100.01, RiskCritical},
		{1e6, RiskCritical},
	}
	for _, tt := range tests {
		if got := RiskLevelFor(tt.hpi); got != tt.want {
			t.Errorf("RiskLevelFor(%v) = %s, want %s", tt.hpi, got, tt.want)
		}
	}
}

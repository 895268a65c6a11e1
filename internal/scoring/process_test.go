package scoring

import (
	"errors"
	"reflect"
	"testing"
)

func TestProcessSampleMixed(t *testing.T) {
	r := ProcessSample(mixedSample())
	if r.SampleID != "mixed" {
		t.Errorf("SampleID = %q", r.SampleID)
	}
	if r.MetalIndexScores.Pb.Status != MetalUnsafe {
		t.Errorf("pb status = %s, want Unsafe", r.MetalIndexScores.Pb.Status)
	}
	if r.Classification != ClassUnsafe {
		t.Errorf("classification = %s, want Unsafe", r.Classification)
	}
	if r.HMPI != 0.99 || r.HPI != 99.05 {
		t.Errorf("indices = %v/%v, want 0.99/99.05", r.HMPI, r.HPI)
	}
	if r.RiskLevel != RiskHigh {
		t.Errorf("risk = %s, want High", r.RiskLevel)
	}
	if r.Usability.Drinking.Status != UseUnsafe || r.Usability.Drinking.Reason != ReasonDrinkingCritical {
		t.Errorf("drinking = %+v", r.Usability.Drinking)
	}
	if r.Usability.Agriculture.Status != UseCaution {
		t.Errorf("agriculture = %+v", r.Usability.Agriculture)
	}
	if r.Usability.Industrial.Status != UseCaution {
		t.Errorf("industrial = %+v", r.Usability.Industrial)
	}
}

func TestProcessSampleHalfLimits(t *testing.T) {
	r := ProcessSample(halfLimitSample())
	for _, v := range []float64{r.MetalIndexScores.Pb.Value, r.MetalIndexScores.As.Value, r.MetalIndexScores.Cd.Value, r.MetalIndexScores.Cr.Value, r.MetalIndexScores.Ni.Value} {
		if v != 50 {
			t.Errorf("metal index = %v, want 50", v)
		}
	}
	if r.Classification != ClassSafe {
		t.Errorf("classification = %s, want Safe", r.Classification)
	}
	if r.HPI != 50 {
		t.Errorf("HPI = %v, want 50", r.HPI)
	}
	if r.RiskLevel != RiskMedium {
		t.Errorf("risk = %s, want Medium", r.RiskLevel)
	}
	if r.Usability.Drinking.Status != UseSafe || r.Usability.Agriculture.Status != UseSafe || r.Usability.Industrial.Status != UseSafe {
		t.Errorf("usability = %+v, want all Safe", r.Usability)
	}
}

func TestProcessSampleIdempotent(t *testing.T) {
	s := mixedSample()
	a := ProcessSample(s)
	b := ProcessSample(s)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("ProcessSample not deterministic:\n%+v\n%+v", a, b)
	}
	if s != mixedSample() {
		t.Error("input sample was mutated")
	}
}

func TestProcessBatch(t *testing.T) {
	samples := []WaterSample{mixedSample(), halfLimitSample()}
	pd, err := ProcessBatch(samples)
	if err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	if len(pd.Results) != 2 || pd.Results[0].SampleID != "mixed" || pd.Results[1].SampleID != "half" {
		t.Fatalf("results out of order: %+v", pd.Results)
	}
	want := Summary{
		TotalSamples: 2,
		SafeCount:    1,
		UnsafeCount:  1,
		AverageHMPI:  Round((0.99+0.5)/2, 2),
		AverageHPI:   Round((99.05+50)/2, 2),
	}
	if pd.Summary != want {
		t.Errorf("summary = %+v, want %+v", pd.Summary, want)
	}
	if s, ok := pd.SampleByID("half"); !ok || s.Cd != 0.0015 {
		t.Errorf("SampleByID(half) = %+v, %v", s, ok)
	}
	samples[0].ID = "changed"
	if pd.Samples[0].ID != "mixed" {
		t.Error("ProcessedData must not alias the caller's slice")
	}
}

func TestProcessBatchEmpty(t *testing.T) {
	if _, err := ProcessBatch(nil); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("err = %v, want ErrEmptyBatch", err)
	}
}

func TestSummarizeCountsModerate(t *testing.T) {
	got := Summarize([]HMPIResult{
		{Classification: ClassModerate, HMPI: 150, HPI: 10},
		{Classification: ClassSafe, HMPI: 50, HPI: 20},
		{Classification: ClassUnsafe, HMPI: 250, HPI: 33.335},
	})
	want := Summary{TotalSamples: 3, SafeCount: 1, ModerateCount: 1, UnsafeCount: 1, AverageHMPI: 150, AverageHPI: 21.11}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}

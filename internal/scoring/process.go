package scoring

import "errors"

// ErrEmptyBatch is returned by ProcessBatch for zero-length input, where the
// batch averages are undefined.
var ErrEmptyBatch = errors.New("cannot process an empty batch")

// ProcessSample scores, classifies (metal-index path) and assesses one sample.
func ProcessSample(s WaterSample) HMPIResult {
	hmpi := HMPI(s)
	hpi := HPI(s)
	scores := CalculateMetalIndexScores(s)
	return HMPIResult{
		SampleID:           s.ID,
		HMPI:               hmpi,
		HPI:                hpi,
		Classification:     Classify(hmpi, &scores),
		RiskLevel:          RiskLevelFor(hpi),
		MetalContributions: MetalContributions(s),
		MetalIndexScores:   scores,
		Usability:          AssessUsability(hmpi, hpi, scores),
	}
}

// ProcessBatch scores every sample in order and aggregates the batch summary.
func ProcessBatch(samples []WaterSample) (*ProcessedData, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyBatch
	}
	in := make([]WaterSample, len(samples))
	copy(in, samples)

	results := make([]HMPIResult, len(in))
	for i, s := range in {
		results[i] = ProcessSample(s)
	}
	return &ProcessedData{
		Samples: in,
		Results: results,
		Summary: Summarize(results),
	}, nil
}

// Summarize counts classifications and averages the indices of results.
// The averages are 0 for an empty slice.
func Summarize(results []HMPIResult) Summary {
	sum := Summary{TotalSamples: len(results)}
	if len(results) == 0 {
		return sum
	}
	var hmpiTotal, hpiTotal float64
	for _, r := range results {
		switch r.Classification {
		case ClassSafe:
			sum.SafeCount++
		case ClassModerate:
			sum.ModerateCount++
		case ClassUnsafe:
			sum.UnsafeCount++
		}
		hmpiTotal += r.HMPI
		hpiTotal += r.HPI
	}
	n := float64(len(results))
	sum.AverageHMPI = Round(hmpiTotal/n, 2)
	sum.AverageHPI = Round(hpiTotal/n, 2)
	return sum
}

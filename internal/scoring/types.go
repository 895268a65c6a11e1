// Package scoring turns water sample measurements into heavy-metal pollution
// indices, per-metal compliance scores, a safety classification, a risk tier
// and per-use usability verdicts.
//
// Every function in this package is pure: the same sample always yields a
// bit-identical result and nothing is mutated.
package scoring

import (
	"time"

	"github.com/KaramelBytes/hmpi-cli/internal/standards"
)

// WaterSample is one measured record. Concentrations are mg/L, conductivity
// is µS/cm. Treat values as immutable once constructed.
type WaterSample struct {
	ID           string    `json:"id" yaml:"id"`
	Latitude     float64   `json:"latitude" yaml:"latitude"`
	Longitude    float64   `json:"longitude" yaml:"longitude"`
	Pb           float64   `json:"pb" yaml:"pb"`
	As           float64   `json:"as" yaml:"as"`
	Cd           float64   `json:"cd" yaml:"cd"`
	Cr           float64   `json:"cr" yaml:"cr"`
	Ni           float64   `json:"ni" yaml:"ni"`
	PH           float64   `json:"pH" yaml:"pH"`
	Conductivity float64   `json:"conductivity" yaml:"conductivity"`
	SampleDate   time.Time `json:"sampleDate" yaml:"sampleDate"`
	Location     string    `json:"location,omitempty" yaml:"location,omitempty"`
	CollectedBy  string    `json:"collectedBy,omitempty" yaml:"collectedBy,omitempty"`
	Notes        string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Concentration returns the measured concentration for a pollutant symbol.
func (s WaterSample) Concentration(sym standards.Symbol) float64 {
	switch sym {
	case standards.Lead:
		return s.Pb
	case standards.Arsenic:
		return s.As
	case standards.Cadmium:
		return s.Cd
	case standards.Chromium:
		return s.Cr
	case standards.Nickel:
		return s.Ni
	}
	return 0
}

// Classification is the coarse safety verdict for a sample.
type Classification string

const (
	ClassSafe     Classification = "Safe"
	ClassModerate Classification = "Moderate"
	ClassUnsafe   Classification = "Unsafe"
)

// RiskLevel is the HPI-derived severity tier.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// MetalStatus is the binary compliance status of one metal.
type MetalStatus string

const (
	MetalSafe   MetalStatus = "Safe"
	MetalUnsafe MetalStatus = "Unsafe"
)

// UseStatus is the suitability of water for one use.
type UseStatus string

const (
	UseSafe    UseStatus = "Safe"
	UseCaution UseStatus = "Caution"
	UseUnsafe  UseStatus = "Unsafe"
)

// MetalIndexScore is the compliance ratio of a single metal against its limit.
type MetalIndexScore struct {
	Value         float64     `json:"value" yaml:"value"` // percent of limit, 1 decimal
	Status        MetalStatus `json:"status" yaml:"status"`
	Concentration float64     `json:"concentration" yaml:"concentration"`
}

// MetalIndexScores holds exactly one score per tracked metal.
type MetalIndexScores struct {
	Pb MetalIndexScore `json:"pb" yaml:"pb"`
	As MetalIndexScore `json:"as" yaml:"as"`
	Cd MetalIndexScore `json:"cd" yaml:"cd"`
	Cr MetalIndexScore `json:"cr" yaml:"cr"`
	Ni MetalIndexScore `json:"ni" yaml:"ni"`
}

// Get returns the score for a symbol.
func (m MetalIndexScores) Get(sym standards.Symbol) MetalIndexScore {
	switch sym {
	case standards.Lead:
		return m.Pb
	case standards.Arsenic:
		return m.As
	case standards.Cadmium:
		return m.Cd
	case standards.Chromium:
		return m.Cr
	case standards.Nickel:
		return m.Ni
	}
	return MetalIndexScore{}
}

// AnyExceeds reports whether any metal index is above 100.
func (m MetalIndexScores) AnyExceeds() bool {
	for _, sym := range standards.Symbols() {
		if m.Get(sym).Value > 100 {
			return true
		}
	}
	return false
}

// Contributions is the percent-of-limit burden of each metal, 2 decimals.
type Contributions struct {
	Pb float64 `json:"pb" yaml:"pb"`
	As float64 `json:"as" yaml:"as"`
	Cd float64 `json:"cd" yaml:"cd"`
	Cr float64 `json:"cr" yaml:"cr"`
	Ni float64 `json:"ni" yaml:"ni"`
}

// Get returns the contribution for a symbol.
func (c Contributions) Get(sym standards.Symbol) float64 {
	switch sym {
	case standards.Lead:
		return c.Pb
	case standards.Arsenic:
		return c.As
	case standards.Cadmium:
		return c.Cd
	case standards.Chromium:
		return c.Cr
	case standards.Nickel:
		return c.Ni
	}
	return 0
}

// Verdict is a usability status with its fixed justification.
type Verdict struct {
	Status UseStatus `json:"status" yaml:"status"`
	Reason string    `json:"reason" yaml:"reason"`
}

// Usability holds the three independent use-case verdicts.
type Usability struct {
	Drinking    Verdict `json:"drinking" yaml:"drinking"`
	Agriculture Verdict `json:"agriculture" yaml:"agriculture"`
	Industrial  Verdict `json:"industrial" yaml:"industrial"`
}

// HMPIResult is the full assessment of one sample. It carries no reference
// back to the sample; join on SampleID when both are needed.
type HMPIResult struct {
	SampleID           string           `json:"sampleId" yaml:"sampleId"`
	HMPI               float64          `json:"hmpi" yaml:"hmpi"`
	HPI                float64          `json:"hpi" yaml:"hpi"`
	Classification     Classification   `json:"classification" yaml:"classification"`
	RiskLevel          RiskLevel        `json:"riskLevel" yaml:"riskLevel"`
	MetalContributions Contributions    `json:"metalContributions" yaml:"metalContributions"`
	MetalIndexScores   MetalIndexScores `json:"metalIndexScores" yaml:"metalIndexScores"`
	Usability          Usability        `json:"usability" yaml:"usability"`
}

// Summary aggregates a processed batch.
type Summary struct {
	TotalSamples  int     `json:"totalSamples" yaml:"totalSamples"`
	SafeCount     int     `json:"safeCount" yaml:"safeCount"`
	ModerateCount int     `json:"moderateCount" yaml:"moderateCount"`
	UnsafeCount   int     `json:"unsafeCount" yaml:"unsafeCount"`
	AverageHMPI   float64 `json:"averageHMPI" yaml:"averageHMPI"`
	AverageHPI    float64 `json:"averageHPI" yaml:"averageHPI"`
}

// ProcessedData is a scored batch: samples and results are parallel slices.
type ProcessedData struct {
	Samples []WaterSample `json:"samples" yaml:"samples"`
	Results []HMPIResult  `json:"results" yaml:"results"`
	Summary Summary       `json:"summary" yaml:"summary"`
}

// SampleByID returns the sample a result was computed from.
func (p *ProcessedData) SampleByID(id string) (WaterSample, bool) {
	for _, s := range p.Samples {
		if s.ID == id {
			return s, true
		}
	}
	return WaterSample{}, false
}

package report

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
)

// Region is a sampling area used by Generate.
type Region struct {
	Name     string
	Lat, Lng float64
}

// Regions are the metro areas synthetic samples are scattered around.
var Regions = []Region{
	{"Delhi", 28.6139, 77.2090},
	{"Mumbai", 19.0760, 72.8777},
	{"Kolkata", 22.5726, 88.3639},
	{"Chennai", 13.0827, 80.2707},
	{"Bangalore", 12.9716, 77.5946},
}

// Generate returns n plausible samples. The same seed and reference time
// always produce the same batch. Dates fall within the year before now.
func Generate(n int, seed uint64, now time.Time) []scoring.WaterSample {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r := func(places int, lo, span float64) float64 {
		return scoring.Round(lo+rng.Float64()*span, places)
	}
	out := make([]scoring.WaterSample, 0, max(n, 0))
	for i := 0; i < n; i++ {
		reg := Regions[rng.IntN(len(Regions))]
		s := scoring.WaterSample{
			ID:           fmt.Sprintf("sample_%d", i+1),
			Latitude:     r(4, reg.Lat-0.25, 0.5),
			Longitude:    r(4, reg.Lng-0.25, 0.5),
			Pb:           r(4, 0, 0.05),
			As:           r(4, 0, 0.02),
			Cd:           r(4, 0, 0.01),
			Cr:           r(4, 0, 0.1),
			Ni:           r(4, 0, 0.15),
			PH:           r(2, 6.5, 2),
			Conductivity: r(1, 200, 800),
			SampleDate:   now.Add(-time.Duration(rng.Int64N(int64(365 * 24 * time.Hour)))).Truncate(time.Second).UTC(),
			Location:     fmt.Sprintf("%s Area %d", reg.Name, rng.IntN(10)+1),
			CollectedBy:  fmt.Sprintf("Researcher %d", rng.IntN(5)+1),
		}
		if rng.Float64() > 0.5 {
			s.Notes = "Regular monitoring sample"
		}
		out = append(out, s)
	}
	return out
}

// Package standards holds the WHO drinking-water reference limits and the
// toxicity weights used by the pollution indices.
package standards

// Symbol identifies one of the tracked heavy metals.
type Symbol string

const (
	Lead     Symbol = "pb"
	Arsenic  Symbol = "as"
	Cadmium  Symbol = "cd"
	Chromium Symbol = "cr"
	Nickel   Symbol = "ni"
)

// Entry is the reference data for one pollutant.
type Entry struct {
	Symbol Symbol  `json:"symbol" yaml:"symbol"`
	Name   string  `json:"name" yaml:"name"`
	Limit  float64 `json:"limit" yaml:"limit"` // mg/L
	Weight int     `json:"weight" yaml:"weight"`
}

// table order is the canonical pollutant order used everywhere else.
var table = [...]Entry{
	{Symbol: Lead, Name: "Lead", Limit: 0.01, Weight: 4},
	{Symbol: Arsenic, Name: "Arsenic", Limit: 0.01, Weight: 4},
	{Symbol: Cadmium, Name: "Cadmium", Limit: 0.003, Weight: 3},
	{Symbol: Chromium, Name: "Chromium", Limit: 0.05, Weight: 2},
	{Symbol: Nickel, Name: "Nickel", Limit: 0.07, Weight: 2},
}

// All returns a copy of the table in canonical order.
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table[:])
	return out
}

// Symbols returns the pollutant symbols in canonical order.
func Symbols() []Symbol {
	out := make([]Symbol, len(table))
	for i, e := range table {
		out[i] = e.Symbol
	}
	return out
}

// Lookup returns the entry for a symbol.
func Lookup(s Symbol) (Entry, bool) {
	for _, e := range table {
		if e.Symbol == s {
			return e, true
		}
	}
	return Entry{}, false
}

// Limit returns the regulatory limit for s, or 0 when s is unknown.
func Limit(s Symbol) float64 {
	e, _ := Lookup(s)
	return e.Limit
}

// Weight returns the toxicity weight for s, or 0 when s is unknown.
func Weight(s Symbol) int {
	e, _ := Lookup(s)
	return e.Weight
}

// TotalWeight is the sum of all toxicity weights.
func TotalWeight() int {
	total := 0
	for _, e := range table {
		total += e.Weight
	}
	return total
}

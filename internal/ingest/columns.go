package ingest

import (
	"regexp"
	"strings"
)

// Field is a canonical WaterSample attribute.
type Field int

const (
	FieldID Field = iota
	FieldLatitude
	FieldLongitude
	FieldPb
	FieldAs
	FieldCd
	FieldCr
	FieldNi
	FieldPH
	FieldConductivity
	FieldSampleDate
	FieldLocation
	FieldCollectedBy
	FieldNotes
	numFields
)

type fieldSpec struct {
	field     Field
	canonical string
	aliases   []string // normalized form, see normalizeKey
	required  bool
	numeric   bool
	pollutant bool
}

// columns is consulted in order; the first entry whose alias matches wins.
var columns = []fieldSpec{
	{FieldID, "id", []string{"id", "sampleid", "sample"}, true, false, false},
	{FieldLatitude, "latitude", []string{"latitude", "lat"}, true, true, false},
	{FieldLongitude, "longitude", []string{"longitude", "lng", "lon", "long"}, true, true, false},
	{FieldPb, "pb", []string{"pb", "lead"}, true, true, true},
	{FieldAs, "as", []string{"as", "arsenic"}, true, true, true},
	{FieldCd, "cd", []string{"cd", "cadmium"}, true, true, true},
	{FieldCr, "cr", []string{"cr", "chromium"}, true, true, true},
	{FieldNi, "ni", []string{"ni", "nickel"}, true, true, true},
	{FieldPH, "pH", []string{"ph"}, true, true, false},
	{FieldConductivity, "conductivity", []string{"conductivity", "cond", "ec", "electricalconductivity"}, true, true, false},
	{FieldSampleDate, "sampleDate", []string{"sampledate", "date"}, false, false, false},
	{FieldLocation, "location", []string{"location", "locationname", "site"}, false, false, false},
	{FieldCollectedBy, "collectedBy", []string{"collectedby", "collector"}, false, false, false},
	{FieldNotes, "notes", []string{"notes", "note", "comments"}, false, false, false},
}

func specFor(f Field) fieldSpec {
	for _, c := range columns {
		if c.field == f {
			return c
		}
	}
	return fieldSpec{}
}

// RequiredColumns lists the canonical headers tabular input must carry.
func RequiredColumns() []string {
	var out []string
	for _, c := range columns {
		if c.required {
			out = append(out, c.canonical)
		}
	}
	return out
}

// OptionalColumns lists the canonical optional headers.
func OptionalColumns() []string {
	var out []string
	for _, c := range columns {
		if !c.required {
			out = append(out, c.canonical)
		}
	}
	return out
}

var unitPatterns = []struct {
	re   *regexp.Regexp
	pick int
}{
	{regexp.MustCompile(`^(.*)\s*\(([^)]+)\)\s*$`), 2},  // e.g., Lead (mg/L)
	{regexp.MustCompile(`^(.*)\s*\[([^\]]+)\]\s*$`), 2}, // e.g., pb [ug/L]
	{regexp.MustCompile(`^(.*?)[_\s-]+(mg/L|g/L|ug/L|µg/L|μg/L|ppm|ppb|µS/cm|μS/cm|uS/cm)$`), 2},
}

func splitUnits(name string) (clean string, unit string) {
	s := strings.TrimSpace(name)
	for _, p := range unitPatterns {
		if m := p.re.FindStringSubmatch(s); len(m) >= 3 {
			base := strings.TrimSpace(m[1])
			u := strings.TrimSpace(m[p.pick])
			if base != "" && u != "" {
				return base, u
			}
		}
	}
	return s, ""
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '.':
			return -1
		}
		return r
	}, s)
}

// resolveKey maps a header or object key onto a canonical field.
func resolveKey(name string) (Field, string, bool) {
	clean, unit := splitUnits(name)
	key := normalizeKey(clean)
	for _, c := range columns {
		for _, a := range c.aliases {
			if key == a {
				return c.field, unit, true
			}
		}
	}
	return 0, "", false
}

// unitScale converts a pollutant unit to mg/L.
func unitScale(unit string) float64 {
	switch strings.ToLower(strings.NewReplacer("µ", "u", "μ", "u").Replace(unit)) {
	case "ug/l", "ppb":
		return 0.001
	case "g/l":
		return 1000
	}
	return 1
}

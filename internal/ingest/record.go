package ingest

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
)

// record accumulates one candidate sample before validation.
type record struct {
	s       scoring.WaterSample
	missing []string
}

func (r *record) setNumber(f Field, v float64) {
	switch f {
	case FieldLatitude:
		r.s.Latitude = v
	case FieldLongitude:
		r.s.Longitude = v
	case FieldPb:
		r.s.Pb = v
	case FieldAs:
		r.s.As = v
	case FieldCd:
		r.s.Cd = v
	case FieldCr:
		r.s.Cr = v
	case FieldNi:
		r.s.Ni = v
	case FieldPH:
		r.s.PH = v
	case FieldConductivity:
		r.s.Conductivity = v
	}
}

func (r *record) setText(f Field, v string) {
	switch f {
	case FieldID:
		r.s.ID = v
	case FieldLocation:
		r.s.Location = v
	case FieldCollectedBy:
		r.s.CollectedBy = v
	case FieldNotes:
		r.s.Notes = v
	}
}

// setRaw stores a textual cell value for any field.
func (r *record) setRaw(f Field, raw string, scale float64, opt Options, serialDates bool) {
	spec := specFor(f)
	switch {
	case spec.numeric:
		v, present, ok := parseNumeric(raw, opt)
		switch {
		case !present:
			r.markMissing(f)
		case !ok:
			r.setNumber(f, math.NaN())
		default:
			r.setNumber(f, v*scale)
		}
	case f == FieldSampleDate:
		if t, ok := parseDate(raw, serialDates); ok {
			r.s.SampleDate = t
		}
	default:
		r.setText(f, strings.TrimSpace(raw))
	}
}

func (r *record) setTime(t time.Time) { r.s.SampleDate = t }

func (r *record) markMissing(f Field) {
	r.missing = append(r.missing, specFor(f).canonical)
}

// finish applies defaults and returns the sample with its validation messages.
func (r *record) finish(ordinal int, opt Options) (scoring.WaterSample, []string) {
	if r.s.ID == "" {
		r.s.ID = fmt.Sprintf("sample_%d", ordinal)
	}
	msgs := Validate(r.s)
	if opt.StrictMissing {
		for _, m := range r.missing {
			msgs = append(msgs, "Missing "+m)
		}
	}
	return r.s, msgs
}

package ingest

import (
	"math"

	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
)

// Validation messages, in the order they are checked.
const (
	MsgLatitude     = "Valid latitude is required"
	MsgLongitude    = "Valid longitude is required"
	MsgLead         = "Valid lead (Pb) concentration is required"
	MsgArsenic      = "Valid arsenic (As) concentration is required"
	MsgCadmium      = "Valid cadmium (Cd) concentration is required"
	MsgChromium     = "Valid chromium (Cr) concentration is required"
	MsgNickel       = "Valid nickel (Ni) concentration is required"
	MsgPH           = "Valid pH value (0-14) is required"
	MsgConductivity = "Valid conductivity is required"
	MsgColumnCount  = "Column count mismatch"
	MsgInvalidItem  = "Invalid data format"
)

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func concentrationOK(v float64) bool { return finite(v) && v >= 0 }

// Validate returns every rule the sample breaks. An empty slice means the
// sample can be scored.
func Validate(s scoring.WaterSample) []string {
	var msgs []string
	if !finite(s.Latitude) {
		msgs = append(msgs, MsgLatitude)
	}
	if !finite(s.Longitude) {
		msgs = append(msgs, MsgLongitude)
	}
	if !concentrationOK(s.Pb) {
		msgs = append(msgs, MsgLead)
	}
	if !concentrationOK(s.As) {
		msgs = append(msgs, MsgArsenic)
	}
	if !concentrationOK(s.Cd) {
		msgs = append(msgs, MsgCadmium)
	}
	if !concentrationOK(s.Cr) {
		msgs = append(msgs, MsgChromium)
	}
	if !concentrationOK(s.Ni) {
		msgs = append(msgs, MsgNickel)
	}
	if !finite(s.PH) || s.PH < 0 || s.PH > 14 {
		msgs = append(msgs, MsgPH)
	}
	if !concentrationOK(s.Conductivity) {
		msgs = append(msgs, MsgConductivity)
	}
	return msgs
}

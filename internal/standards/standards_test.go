package standards

import "testing"

func TestTableValues(t *testing.T) {
	tests := []struct {
		sym    Symbol
		limit  float64
		weight int
	}{
		{Lead, 0.01, 4},
		{Arsenic, 0.01, 4},
		{Cadmium, 0.003, 3},
		{Chromium, 0.05, 2},
		{Nickel, 0.07, 2},
	}
	for _, tt := range tests {
		e, ok := Lookup(tt.sym)
		if !ok {
			t.Fatalf("Lookup(%q) missing", tt.sym)
		}
		if e.Limit != tt.limit || e.Weight != tt.weight {
			t.Errorf("%s = (%v, %d), want (%v, %d)", tt.sym, e.Limit, e.Weight, tt.limit, tt.weight)
		}
		if Limit(tt.sym) != tt.limit || Weight(tt.sym) != tt.weight {
			t.Errorf("%s accessor mismatch", tt.sym)
		}
	}
	if got := TotalWeight(); got != 15 {
		t.Errorf("TotalWeight() = %d, want 15", got)
	}
}

func TestOrderAndUnknown(t *testing.T) {
	want := []Symbol{Lead, Arsenic, Cadmium, Chromium, Nickel}
	got := Symbols()
	if len(got) != len(want) {
		t.Fatalf("Symbols() len = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Symbols()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if _, ok := Lookup("hg"); ok {
		t.Error("Lookup(hg) should fail")
	}
	if Limit("hg") != 0 {
		t.Error("Limit(hg) should be 0")
	}
	all := All()
	all[0].Limit = 99
	if Limit(Lead) != 0.01 {
		t.Error("All() must return a copy")
	}
}

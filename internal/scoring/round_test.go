package scoring

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		x      float64
		places int
		want   float64
	}{
		{0.125, 2, 0.13},
		{1.005, 2, 1.00},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{66.66666666, 1, 66.7},
		{92.857142857, 1, 92.9},
		{99.047619, 2, 99.05},
		{0.0150000001, 4, 0.015},
		{0, 2, 0},
	}
	for _, tt := range tests {
		if got := Round(tt.x, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.x, tt.places, got, tt.want)
		}
	}
}

package data

import "testing"

func TestBreedSLPCost(t *testing.T) {
	tests := []struct {
		breedCount int
		wantCost   int64
		wantOK     bool
	}{
		{0, 900, true},
		{1, 1350, true},
		{2, 2250, true},
		{3, 3600, true},
		{4, 5850, true},
		{5, 9450, true},
		{6, 15300, true},
		{7, 0, false},   // cap reached
		{8, 0, false},   // past cap
		{-1, 900, true}, // clamped to 0
	}
	for _, tt := range tests {
		cost, ok := BreedSLPCost(tt.breedCount)
		if cost != tt.wantCost || ok != tt.wantOK {
			t.Errorf("BreedSLPCost(%d) = (%d, %v), want (%d, %v)",
				tt.breedCount, cost, ok, tt.wantCost, tt.wantOK)
		}
	}
}

func TestBreedSLPCostStrictlyIncreasing(t *testing.T) {
	for i := 1; i < MaxBreedCount; i++ {
		if breedSLPCost[i] <= breedSLPCost[i-1] {
			t.Errorf("breedSLPCost[%d]=%d <= breedSLPCost[%d]=%d — must be strictly increasing",
				i, breedSLPCost[i], i-1, breedSLPCost[i-1])
		}
	}
}

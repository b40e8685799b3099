// Package breeding implements the pairing rules: eligibility checks,
// SLP/AXS costs and the allele inheritance model.
//
// Ineligible pairings are normal domain outcomes, not errors — the check
// returns every blocking reason at once instead of failing on the first.
//
// Phase 3: Breeding Rules.
package breeding

import (
	"fmt"

	"github.com/udisondev/axiego/internal/data"
	"github.com/udisondev/axiego/internal/model"
)

// PairCheck is the structured result of a breeding eligibility check.
type PairCheck struct {
	Eligible bool
	Reasons  []string // empty when eligible

	// Costs, zero when the pairing is ineligible.
	SLPCostA int64
	SLPCostB int64
	TotalSLP int64
	AXSCost  float64
}

// CheckPair validates a breeding pair and computes its costs.
// All failing conditions are collected: a caller sees every blocking
// issue in one pass.
func CheckPair(a, b *model.Axie) PairCheck {
	var reasons []string

	if a.ID == b.ID {
		reasons = append(reasons, "an axie cannot breed with itself")
	}
	for _, p := range [2]*model.Axie{a, b} {
		if p.BreedCount >= data.MaxBreedCount {
			reasons = append(reasons,
				fmt.Sprintf("axie %d reached max breed count (%d)", p.ID, data.MaxBreedCount))
		}
		if !p.IsAdult() {
			reasons = append(reasons,
				fmt.Sprintf("axie %d is not yet adult (stage %d of %d)", p.ID, p.Stage, data.AdultStage))
		}
	}
	if a.IsParentOf(b) || b.IsParentOf(a) {
		reasons = append(reasons,
			fmt.Sprintf("axies %d and %d are parent and child", a.ID, b.ID))
	}
	if a.ID != b.ID && a.IsSiblingOf(b) {
		reasons = append(reasons,
			fmt.Sprintf("axies %d and %d are siblings (same matron and sire)", a.ID, b.ID))
	}

	if len(reasons) > 0 {
		return PairCheck{Reasons: reasons}
	}

	costA, _ := data.BreedSLPCost(a.BreedCount)
	costB, _ := data.BreedSLPCost(b.BreedCount)
	return PairCheck{
		Eligible: true,
		SLPCostA: costA,
		SLPCostB: costB,
		TotalSLP: costA + costB,
		AXSCost:  data.AXSBreedCost,
	}
}

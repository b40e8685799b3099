package data

// Breeding limits.
const (
	// MaxBreedCount — после седьмого breeding Axie больше не размножается.
	MaxBreedCount = 7

	// AdultStage — только полностью взрослые Axie (стадия 4) могут breeding.
	AdultStage = 4

	// AXSBreedCost is the flat AXS fee per breeding event, paid once per
	// pairing regardless of either parent's breed count.
	AXSBreedCost = 0.5
)

// breedSLPCost — стоимость breeding в SLP для одного родителя, по числу
// уже совершённых breeding. Индекса 7 нет: лимит достигнут.
var breedSLPCost = [MaxBreedCount]int64{
	900,   // 0
	1350,  // 1
	2250,  // 2
	3600,  // 3
	5850,  // 4
	9450,  // 5
	15300, // 6
}

// BreedSLPCost returns the per-parent SLP cost for the given breed count.
// ok is false when the breed count is at or past the cap (no further
// breeding, hence no cost). Negative counts are treated as 0.
func BreedSLPCost(breedCount int) (cost int64, ok bool) {
	if breedCount < 0 {
		breedCount = 0
	}
	if breedCount >= MaxBreedCount {
		return 0, false
	}
	return breedSLPCost[breedCount], true
}

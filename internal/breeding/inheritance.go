package breeding

import (
	"sort"

	"github.com/udisondev/axiego/internal/data"
	"github.com/udisondev/axiego/internal/gene"
)

// Allele inheritance weights per parent. The three weights sum to 0.5,
// so two parents form a full probability distribution.
const (
	DominantWeight   = 0.375
	Recessive1Weight = 0.09375
	Recessive2Weight = 0.03125
)

// Outcome is one possible inherited trait with its probability.
type Outcome struct {
	Class       string
	PartID      string
	Probability float64
}

// PartInheritance computes the offspring trait distribution for a single
// body part from the two parents' allele triples. Weights are applied
// independently per parent and summed per unique (class, part id) key,
// giving at most six distinct outcomes, fewer when alleles repeat.
//
// The result is sorted by descending probability, ties broken by class
// then part id, so output order is deterministic.
func PartInheritance(a, b gene.PartGene) []Outcome {
	type key struct{ class, partID string }
	probs := make(map[key]float64, 6)

	for _, parent := range [2]gene.PartGene{a, b} {
		probs[key{parent.Dominant.Class, parent.Dominant.PartID}] += DominantWeight
		probs[key{parent.Recessive1.Class, parent.Recessive1.PartID}] += Recessive1Weight
		probs[key{parent.Recessive2.Class, parent.Recessive2.PartID}] += Recessive2Weight
	}

	outcomes := make([]Outcome, 0, len(probs))
	for k, p := range probs {
		outcomes = append(outcomes, Outcome{Class: k.class, PartID: k.partID, Probability: p})
	}
	sort.Slice(outcomes, func(i, j int) bool {
		if outcomes[i].Probability != outcomes[j].Probability {
			return outcomes[i].Probability > outcomes[j].Probability
		}
		if outcomes[i].Class != outcomes[j].Class {
			return outcomes[i].Class < outcomes[j].Class
		}
		return outcomes[i].PartID < outcomes[j].PartID
	})
	return outcomes
}

// ExpectedStats — математическое ожидание статов потомка.
type ExpectedStats struct {
	HP     float64
	Speed  float64
	Skill  float64
	Morale float64
}

// EstimateOffspringStats estimates the unborn offspring's stats: the mean
// of both parents' class base rows plus, for each body part, the
// probability-weighted part bonus over the inheritance distribution.
// The offspring's own class is unknown before birth, hence the mean.
func EstimateOffspringStats(a, b *gene.DecodedGenes) ExpectedStats {
	baseA := data.BaseStats(a.Class)
	baseB := data.BaseStats(b.Class)

	est := ExpectedStats{
		HP:     float64(baseA.HP+baseB.HP) / 2,
		Speed:  float64(baseA.Speed+baseB.Speed) / 2,
		Skill:  float64(baseA.Skill+baseB.Skill) / 2,
		Morale: float64(baseA.Morale+baseB.Morale) / 2,
	}

	for _, name := range gene.PartNames {
		for _, o := range PartInheritance(a.Parts[name], b.Parts[name]) {
			bonus := data.PartBonus(o.Class)
			est.HP += o.Probability * float64(bonus.HP)
			est.Speed += o.Probability * float64(bonus.Speed)
			est.Skill += o.Probability * float64(bonus.Skill)
			est.Morale += o.Probability * float64(bonus.Morale)
		}
	}
	return est
}

// Package traits derives battle stats, purity and class advantage from
// decoded genes. All functions are pure: same genes, same tables, same
// result.
//
// Phase 2: Trait Calculator.
package traits

import (
	"github.com/udisondev/axiego/internal/data"
	"github.com/udisondev/axiego/internal/gene"
)

// Class advantage multipliers.
const (
	AdvantageStrong = 1.15
	AdvantageWeak   = 0.85
	AdvantageNone   = 1.0
)

// CalculateStats возвращает итоговые статы: базовая строка класса плюс
// бонусы шести частей тела. Бонус части определяется классом её
// ДОМИНАНТНОГО аллеля, а не классом самого Axie.
func CalculateStats(g *gene.DecodedGenes) data.Stats {
	stats := data.BaseStats(g.Class)
	for _, name := range gene.PartNames {
		part := g.Parts[name]
		stats = stats.Add(data.PartBonus(part.Dominant.Class))
	}
	return stats
}

// CalculatePurity returns the percentage of body parts whose dominant
// allele class matches the Axie's own class. Always within [0,100], in
// steps of 100/6.
func CalculatePurity(g *gene.DecodedGenes) float64 {
	matching := 0
	for _, name := range gene.PartNames {
		if g.Parts[name].Dominant.Class == g.Class {
			matching++
		}
	}
	return float64(matching) / float64(len(gene.PartNames)) * 100
}

// ClassAdvantage returns the damage multiplier for attacker vs defender:
// 1.15 when attacker is strong against defender, 0.85 when defender is
// strong against attacker, 1.0 otherwise (including the mirror match).
func ClassAdvantage(attacker, defender string) float64 {
	switch {
	case data.Beats(attacker, defender):
		return AdvantageStrong
	case data.Beats(defender, attacker):
		return AdvantageWeak
	default:
		return AdvantageNone
	}
}

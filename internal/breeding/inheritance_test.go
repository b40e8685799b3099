package breeding

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/axiego/internal/gene"
)

func allele(class, id string) gene.PartAllele {
	return gene.PartAllele{Class: class, PartID: id}
}

func TestPartInheritanceDistinctAlleles(t *testing.T) {
	a := gene.PartGene{
		Dominant:   allele("beast", "1"),
		Recessive1: allele("bug", "2"),
		Recessive2: allele("bird", "3"),
	}
	b := gene.PartGene{
		Dominant:   allele("plant", "4"),
		Recessive1: allele("aquatic", "5"),
		Recessive2: allele("reptile", "6"),
	}

	out := PartInheritance(a, b)
	require.Len(t, out, 6)

	probs := map[string]float64{}
	sum := 0.0
	for _, o := range out {
		probs[o.Class+"-"+o.PartID] = o.Probability
		sum += o.Probability
	}
	assert.InDelta(t, 1.0, sum, 1e-12, "distribution must sum to 1")
	assert.Equal(t, 0.375, probs["beast-1"])
	assert.Equal(t, 0.375, probs["plant-4"])
	assert.Equal(t, 0.09375, probs["bug-2"])
	assert.Equal(t, 0.03125, probs["bird-3"])
}

func TestPartInheritanceRepeatedAllelesAggregate(t *testing.T) {
	a := gene.PartGene{
		Dominant:   allele("beast", "1"),
		Recessive1: allele("beast", "1"),
		Recessive2: allele("bug", "2"),
	}
	b := gene.PartGene{
		Dominant:   allele("plant", "3"),
		Recessive1: allele("beast", "1"),
		Recessive2: allele("bird", "4"),
	}

	out := PartInheritance(a, b)
	require.Len(t, out, 4)

	// beast-1: 0.375 + 0.09375 from parent A, 0.09375 from parent B.
	require.Equal(t, "beast", out[0].Class)
	require.Equal(t, "1", out[0].PartID)
	assert.InDelta(t, 0.5625, out[0].Probability, 1e-12)

	assert.Equal(t, "plant", out[1].Class)
	assert.InDelta(t, 0.375, out[1].Probability, 1e-12)

	sum := 0.0
	for _, o := range out {
		sum += o.Probability
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestPartInheritanceDeterministicOrder(t *testing.T) {
	a := gene.PartGene{
		Dominant:   allele("beast", "1"),
		Recessive1: allele("bug", "2"),
		Recessive2: allele("bird", "3"),
	}
	b := gene.PartGene{
		Dominant:   allele("bug", "2"),
		Recessive1: allele("beast", "1"),
		Recessive2: allele("bird", "3"),
	}

	first := PartInheritance(a, b)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, PartInheritance(a, b))
	}
}

func TestEstimateOffspringStatsPureParents(t *testing.T) {
	// Two pure-beast parents: the offspring distribution collapses to
	// beast parts with probability 1, so the estimate equals the exact
	// pure-beast stat line.
	g, err := gene.Decode(strings.Repeat("0", 64))
	require.NoError(t, err)

	est := EstimateOffspringStats(g, g)
	assert.InDelta(t, 31, est.HP, 1e-9)
	assert.InDelta(t, 41, est.Speed, 1e-9)
	assert.InDelta(t, 31, est.Skill, 1e-9)
	assert.InDelta(t, 61, est.Morale, 1e-9)
}

func TestEstimateOffspringStatsMixedParents(t *testing.T) {
	beast, err := gene.Decode(strings.Repeat("0", 64))
	require.NoError(t, err)
	bug, err := gene.Decode(strings.Repeat("1", 64))
	require.NoError(t, err)

	est := EstimateOffspringStats(beast, bug)

	// Base: mean of beast and bug rows. The first five parts split
	// beast/bug at 0.5 each; the tail leans beast (0.625 vs 0.375)
	// because its recessive windows sit in the zero extension and decode
	// as beast for both parents.
	assert.InDelta(t, (31.0+35.0)/2+5*0.5*1+0.375*1, est.HP, 1e-9)
	assert.InDelta(t, (35.0+31.0)/2+5*0.5*1+0.625*1, est.Speed, 1e-9)
	assert.InDelta(t, (31.0+35.0)/2, est.Skill, 1e-9)
	// Both classes grant +3 morale, so the tail skew cancels out there.
	assert.InDelta(t, (43.0+39.0)/2+6*3, est.Morale, 1e-9)

	// Symmetric in parent order.
	rev := EstimateOffspringStats(bug, beast)
	assert.InDelta(t, est.HP, rev.HP, 1e-12)
	assert.InDelta(t, est.Morale, rev.Morale, 1e-12)

	if math.IsNaN(est.HP) || math.IsNaN(est.Morale) {
		t.Fatal("estimate produced NaN")
	}
}

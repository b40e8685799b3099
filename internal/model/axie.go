package model

import (
	"time"

	"github.com/udisondev/axiego/internal/data"
)

// NoParent — sentinel-значение "родителя нет" (token id 0).
const NoParent int64 = 0

// Axie represents one creature record as fetched from the marketplace.
// Genetic material lives in GeneHex; Class and the stat columns are
// computed from it and written back by the scanner.
type Axie struct {
	ID         int64
	GeneHex    string
	Class      string
	BreedCount int
	Stage      int
	MatronID   int64
	SireID     int64

	// Computed columns.
	HP     int
	Speed  int
	Skill  int
	Morale int
	Purity float64

	UpdatedAt time.Time
}

// IsAdult reports whether the Axie reached the adult stage.
// Only adults may breed.
func (a *Axie) IsAdult() bool {
	return a.Stage >= data.AdultStage
}

// CanBreed reports whether the Axie itself is breedable: adult and below
// the breed count cap. Pair-level rules live in package breeding.
func (a *Axie) CanBreed() bool {
	return a.IsAdult() && a.BreedCount < data.MaxBreedCount
}

// IsParentOf reports whether a is a direct parent (matron or sire) of o.
func (a *Axie) IsParentOf(o *Axie) bool {
	return o.MatronID == a.ID || o.SireID == a.ID
}

// IsSiblingOf reports whether both Axies share the same matron and the
// same sire. The rule applies only when both shared parent ids are real:
// a NoParent sentinel on either side never makes siblings.
func (a *Axie) IsSiblingOf(o *Axie) bool {
	if a.MatronID == NoParent || a.SireID == NoParent {
		return false
	}
	return a.MatronID == o.MatronID && a.SireID == o.SireID
}

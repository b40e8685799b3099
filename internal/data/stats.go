// Package data holds the static Axie rule tables: base stats, part
// bonuses, breeding costs and class combat advantages.
//
// All tables are populated at package init and never written afterwards,
// so concurrent readers need no locking.
package data

// Stats — боевые характеристики Axie. Используется и как строка таблицы,
// и как результат расчёта.
type Stats struct {
	HP     int
	Speed  int
	Skill  int
	Morale int
}

// Add returns s with o added field-by-field.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		HP:     s.HP + o.HP,
		Speed:  s.Speed + o.Speed,
		Skill:  s.Skill + o.Skill,
		Morale: s.Morale + o.Morale,
	}
}

// Total returns the stat sum. Every base row totals 140.
func (s Stats) Total() int {
	return s.HP + s.Speed + s.Skill + s.Morale
}

// baseStats — базовые статы по классам. Каждая строка в сумме даёт 140.
var baseStats = map[string]Stats{
	"beast":   {HP: 31, Speed: 35, Skill: 31, Morale: 43},
	"aquatic": {HP: 39, Speed: 39, Skill: 35, Morale: 27},
	"plant":   {HP: 43, Speed: 31, Skill: 31, Morale: 35},
	"bird":    {HP: 27, Speed: 43, Skill: 35, Morale: 35},
	"bug":     {HP: 35, Speed: 31, Skill: 35, Morale: 39},
	"reptile": {HP: 39, Speed: 35, Skill: 31, Morale: 35},
	"mech":    {HP: 31, Speed: 39, Skill: 43, Morale: 27},
	"dawn":    {HP: 35, Speed: 35, Skill: 39, Morale: 31},
	"dusk":    {HP: 43, Speed: 39, Skill: 27, Morale: 31},
}

// partBonuses — прибавка к статам за часть тела данного класса.
// Части секретных классов (mech, dawn, dusk) не существуют, поэтому
// таблица содержит только шесть обычных классов.
var partBonuses = map[string]Stats{
	"beast":   {Speed: 1, Morale: 3},
	"aquatic": {HP: 1, Speed: 3},
	"plant":   {HP: 3, Morale: 1},
	"bird":    {Speed: 3, Morale: 1},
	"bug":     {HP: 1, Morale: 3},
	"reptile": {HP: 3, Speed: 1},
}

// BaseStats returns the base stat row for a class.
// Unknown class → beast's row. Should not happen: the decoder itself
// falls back to beast for unmapped class codes.
func BaseStats(class string) Stats {
	if s, ok := baseStats[class]; ok {
		return s
	}
	return baseStats["beast"]
}

// PartBonus returns the stat bonus granted by a body part of the given
// class. Classes without parts (secret classes, "unknown") grant nothing.
func PartBonus(partClass string) Stats {
	return partBonuses[partClass] // zero value when absent
}

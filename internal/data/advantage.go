package data

import "slices"

// classBeats — каждый класс силён ровно против трёх других.
// Три группы по схеме камень-ножницы-бумага:
//
//	beast/bug/mech → plant/reptile/dusk → aquatic/bird/dawn → beast/bug/mech
//
// Таблица согласована: ни одна пара классов не бьёт друг друга взаимно
// (проверяется тестом).
var classBeats = map[string][3]string{
	"beast":   {"plant", "reptile", "dusk"},
	"bug":     {"plant", "reptile", "dusk"},
	"mech":    {"plant", "reptile", "dusk"},
	"plant":   {"aquatic", "bird", "dawn"},
	"reptile": {"aquatic", "bird", "dawn"},
	"dusk":    {"aquatic", "bird", "dawn"},
	"aquatic": {"beast", "bug", "mech"},
	"bird":    {"beast", "bug", "mech"},
	"dawn":    {"beast", "bug", "mech"},
}

// Classes lists all nine Axie classes in table order.
var Classes = []string{
	"beast", "aquatic", "plant", "bird", "bug", "reptile",
	"mech", "dawn", "dusk",
}

// Beats reports whether attacker is strong against defender.
// Unknown class names beat nothing.
func Beats(attacker, defender string) bool {
	beats, ok := classBeats[attacker]
	if !ok {
		return false
	}
	return slices.Contains(beats[:], defender)
}

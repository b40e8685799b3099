package gene

// Class names decoded from 4-bit class codes.
const (
	ClassBeast   = "beast"
	ClassBug     = "bug"
	ClassBird    = "bird"
	ClassPlant   = "plant"
	ClassAquatic = "aquatic"
	ClassReptile = "reptile"
	ClassMech    = "mech"
	ClassDawn    = "dawn"
	ClassDusk    = "dusk"

	// ClassUnknown is the fallback for allele class codes outside the
	// table. The top-level class field falls back to ClassBeast instead.
	ClassUnknown = "unknown"
)

// classCodes — таблица 4-битных кодов классов. Занято 9 из 16 комбинаций.
var classCodes = map[string]string{
	"0000": ClassBeast,
	"0001": ClassBug,
	"0010": ClassBird,
	"0011": ClassPlant,
	"0100": ClassAquatic,
	"0101": ClassReptile,
	"1000": ClassMech,
	"1001": ClassDawn,
	"1010": ClassDusk,
}

// className resolves a 4-bit code for the top-level class field.
// Codes outside the table resolve to beast. That default is load-bearing:
// changing it alters decoded output for otherwise valid genes.
func className(code string) string {
	if name, ok := classCodes[code]; ok {
		return name
	}
	return ClassBeast
}

// alleleClassName resolves a 4-bit code for an allele sub-class.
// Codes outside the table resolve to "unknown", not beast.
func alleleClassName(code string) string {
	if name, ok := classCodes[code]; ok {
		return name
	}
	return ClassUnknown
}

package gene

// fieldSpec describes one fixed-offset bit field of the gene layout.
// The decoder is a generic interpreter over these tables; no field is
// sliced out by an inline magic number.
type fieldSpec struct {
	name  string
	start int
	width int
}

// headerLayout — фиксированная раскладка заголовка гена (биты 0..52).
// Биты [53,64) зарезервированы и не несут информации.
var headerLayout = []fieldSpec{
	{"class", 0, 4},
	{"region", 4, 5},
	{"tag", 9, 4},
	{"bodySkin", 13, 4},
	{"pattern.d", 17, 6},
	{"pattern.r1", 23, 6},
	{"pattern.r2", 29, 6},
	{"color.d", 35, 6},
	{"color.r1", 41, 6},
	{"color.r2", 47, 6},
}

// Part section layout. Six parts follow the reserved header gap, 36 bits
// per part (three 12-bit allele windows), consumed in PartNames order.
//
// The declared section ends at bit 280, 24 bits past the 256-bit payload.
// Bits beyond the payload are defined as zero, so the tail part's last two
// allele windows always read as code 0000 / id 0.
const (
	totalBits = 256

	partsOffset = 64
	partWidth   = 36
	alleleWidth = 12

	numParts   = 6
	paddedBits = partsOffset + numParts*partWidth // 280

	// Inside a 12-bit allele window only 10 bits are meaningful:
	// 4 bits class code, 6 bits part id, 2 reserved trailing bits.
	alleleClassOffset = 0
	alleleClassWidth  = 4
	alleleIDOffset    = 4
	alleleIDWidth     = 6
)

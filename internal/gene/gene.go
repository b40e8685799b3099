// Package gene decodes the 256-bit genetic payload of an Axie.
//
// A gene is a 64-character hex string (optionally 0x-prefixed) describing
// the creature's class, region, cosmetic traits and six body parts, each
// part carrying three alleles (dominant, recessive1, recessive2). The bit
// layout is fixed on-chain and never varies by input value.
//
// Phase 1: Gene Decoder.
package gene

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Body part names in gene bit order.
var PartNames = [6]string{"eyes", "mouth", "ears", "horn", "back", "tail"}

// ErrInvalidFormat — вход не является 64-символьной hex-строкой.
// Единственная ошибка декодера: всё синтаксически валидное декодируется.
var ErrInvalidFormat = errors.New("invalid gene format")

var geneHexPattern = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{64}$`)

// DecodedGenes is the parsed gene structure.
// Numeric sub-fields are carried as decimal strings — they are opaque
// identifiers, not quantities.
type DecodedGenes struct {
	Class    string
	Region   string
	Tag      string
	BodySkin string
	Pattern  TraitGroup
	Color    TraitGroup

	// Parts keyed by PartNames. Always six entries after Decode.
	Parts map[string]PartGene
}

// TraitGroup holds a dominant/recessive triple of cosmetic trait values.
type TraitGroup struct {
	Dominant   string
	Recessive1 string
	Recessive2 string
}

// PartGene holds the three alleles of one body part.
type PartGene struct {
	Dominant   PartAllele
	Recessive1 PartAllele
	Recessive2 PartAllele
}

// PartAllele — класс и идентификатор одного аллеля.
// Класс аллеля независим от класса самого Axie.
type PartAllele struct {
	Class  string
	PartID string
}

// Part returns the part gene for the given part name.
func (g *DecodedGenes) Part(name string) (PartGene, bool) {
	p, ok := g.Parts[name]
	return p, ok
}

// IsValid reports whether geneHex would decode successfully.
// Never returns an error: malformed input is simply not valid.
func IsValid(geneHex string) bool {
	return geneHexPattern.MatchString(geneHex)
}

// Decode parses a gene hex string into its structured representation.
// Fails with ErrInvalidFormat on wrong length or non-hex characters;
// every syntactically valid input decodes without error.
func Decode(geneHex string) (*DecodedGenes, error) {
	bits, err := expandBits(geneHex)
	if err != nil {
		return nil, err
	}

	header := extractHeader(bits)

	g := &DecodedGenes{
		Class:    className(header["class"]),
		Region:   toDecimal(header["region"]),
		Tag:      toDecimal(header["tag"]),
		BodySkin: toDecimal(header["bodySkin"]),
		Pattern: TraitGroup{
			Dominant:   toDecimal(header["pattern.d"]),
			Recessive1: toDecimal(header["pattern.r1"]),
			Recessive2: toDecimal(header["pattern.r2"]),
		},
		Color: TraitGroup{
			Dominant:   toDecimal(header["color.d"]),
			Recessive1: toDecimal(header["color.r1"]),
			Recessive2: toDecimal(header["color.r2"]),
		},
		Parts: make(map[string]PartGene, len(PartNames)),
	}

	for i, name := range PartNames {
		g.Parts[name] = decodePart(bits, partsOffset+i*partWidth)
	}
	return g, nil
}

// extractHeader slices out every headerLayout field as a raw bit string.
func extractHeader(bits string) map[string]string {
	fields := make(map[string]string, len(headerLayout))
	for _, f := range headerLayout {
		fields[f.name] = bits[f.start : f.start+f.width]
	}
	return fields
}

// expandBits strips the optional 0x prefix, validates the hex string and
// expands it to a binary string, MSB-first (bit 0 = leftmost).
// Leading zeros are semantically meaningful and preserved.
//
// The result is zero-extended from 256 to paddedBits characters: the part
// section layout reaches past the payload, and reads beyond bit 255 must
// see zeros rather than fall off the string.
func expandBits(geneHex string) (string, error) {
	if !geneHexPattern.MatchString(geneHex) {
		return "", fmt.Errorf("%w: want 64 hex chars, got %q", ErrInvalidFormat, geneHex)
	}
	h := strings.TrimPrefix(geneHex, "0x")

	var sb strings.Builder
	sb.Grow(paddedBits)
	for i := 0; i < len(h); i++ {
		n, _ := strconv.ParseUint(h[i:i+1], 16, 8) // already validated
		bin := strconv.FormatUint(n, 2)
		sb.WriteString("0000"[:4-len(bin)])
		sb.WriteString(bin)
	}
	sb.WriteString(strings.Repeat("0", paddedBits-totalBits))
	return sb.String(), nil
}

// decodePart extracts a 36-bit part gene (three 12-bit allele windows)
// starting at off.
func decodePart(bits string, off int) PartGene {
	return PartGene{
		Dominant:   decodeAllele(bits, off),
		Recessive1: decodeAllele(bits, off+alleleWidth),
		Recessive2: decodeAllele(bits, off+2*alleleWidth),
	}
}

// decodeAllele extracts one 12-bit allele window: 4 bits class code,
// 6 bits part id. The trailing 2 bits of the window are reserved and
// carry no information — only 10 of 12 bits are meaningful.
func decodeAllele(bits string, off int) PartAllele {
	return PartAllele{
		Class:  alleleClassName(bits[off+alleleClassOffset : off+alleleClassOffset+alleleClassWidth]),
		PartID: toDecimal(bits[off+alleleIDOffset : off+alleleIDOffset+alleleIDWidth]),
	}
}

// toDecimal converts a raw bit string to its decimal representation.
func toDecimal(bits string) string {
	v, _ := strconv.ParseUint(bits, 2, 64)
	return strconv.FormatUint(v, 10)
}

// genedump — отладочная утилита: декодирует ген из аргумента командной
// строки и печатает структуру, статы и чистоту.
//
// Usage: genedump <64-char gene hex>
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/udisondev/axiego/internal/gene"
	"github.com/udisondev/axiego/internal/traits"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <gene hex>\n", os.Args[0])
		os.Exit(2)
	}

	g, err := gene.Decode(os.Args[1])
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	fmt.Printf("class:     %s\n", g.Class)
	fmt.Printf("region:    %s\n", g.Region)
	fmt.Printf("tag:       %s\n", g.Tag)
	fmt.Printf("body skin: %s\n", g.BodySkin)
	fmt.Printf("pattern:   d=%s r1=%s r2=%s\n", g.Pattern.Dominant, g.Pattern.Recessive1, g.Pattern.Recessive2)
	fmt.Printf("color:     d=%s r1=%s r2=%s\n", g.Color.Dominant, g.Color.Recessive1, g.Color.Recessive2)

	fmt.Println("parts:")
	for _, name := range gene.PartNames {
		p := g.Parts[name]
		fmt.Printf("  %-5s d=%s-%s r1=%s-%s r2=%s-%s\n", name,
			p.Dominant.Class, p.Dominant.PartID,
			p.Recessive1.Class, p.Recessive1.PartID,
			p.Recessive2.Class, p.Recessive2.PartID)
	}

	stats := traits.CalculateStats(g)
	fmt.Printf("stats:     hp=%d speed=%d skill=%d morale=%d\n",
		stats.HP, stats.Speed, stats.Skill, stats.Morale)
	fmt.Printf("purity:    %.1f%%\n", traits.CalculatePurity(g))
}

package gamut_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/gamut"
	"github.com/aretw0/gamut/pkg/adapters/memory"
)

// ExampleNew demonstrates parsing a CSS color, converting it, and mapping an
// out-of-gamut color into sRGB.
func ExampleNew() {
	eng, err := gamut.New()
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	// Parse a Display P3 green, too saturated for sRGB.
	c, err := eng.Parse(ctx, "color(--display-p3 0 1 0)")
	if err != nil {
		log.Fatal(err)
	}

	ok, _ := eng.InGamut(c, "srgb")
	fmt.Println("fits in sRGB:", ok)

	// Bring it inside, reducing chroma until it fits.
	mapped, err := eng.ToGamut(&c, gamut.GamutOptions{Space: "srgb"})
	if err != nil {
		log.Fatal(err)
	}
	ok, _ = eng.InGamut(mapped, "srgb")
	fmt.Println("after mapping:", ok)

	// Output:
	// fits in sRGB: false
	// after mapping: true
}

// ExampleEngine_Parse demonstrates keyword input through a name resolver.
func ExampleEngine_Parse() {
	eng, err := gamut.New(gamut.WithResolver(memory.NewWithKeywords()))
	if err != nil {
		log.Fatal(err)
	}

	c, err := eng.Parse(context.Background(), "rebeccapurple")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(eng.String(c))

	// Output:
	// color(srgb 0.4 0.2 0.6)
}

// ExampleEngine_Coord demonstrates reading a coordinate through another
// space without converting the color explicitly.
func ExampleEngine_Coord() {
	eng, err := gamut.New()
	if err != nil {
		log.Fatal(err)
	}

	c, err := eng.Parse(context.Background(), "lab(50 40 59.5)")
	if err != nil {
		log.Fatal(err)
	}

	chroma, err := eng.Coord(c, "lch.chroma")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.1f\n", chroma)

	// Output:
	// 71.7
}

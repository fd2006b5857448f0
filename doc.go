/*
Package gamut is a color-space conversion engine.

It represents colors across multiple color spaces (sRGB, Lab, LCH, XYZ,
Display P3, HSL, and arbitrary registered spaces), converts between them
through the XYZ connection space with chromatic adaptation between D50 and
D65 white points, maps out-of-range colors into a displayable gamut, and
parses and formats CSS color syntax.

# Usage

	eng, err := gamut.New()
	if err != nil {
		log.Fatal(err)
	}

	c, err := eng.Parse(context.Background(), "rgb(255 0 0)")
	if err != nil {
		log.Fatal(err)
	}

	lch, err := eng.To(c, "lch")      // re-express in LCH
	chroma, _ := eng.Coord(c, "lch.chroma")

	mapped, err := eng.ToGamut(&lch, gamut.GamutOptions{Space: "srgb"})
	fmt.Println(eng.String(mapped))

Custom spaces are registered through Define; spaces declared in YAML files
can be loaded with the spacefile package. The engine itself is synchronous
and pure: no operation blocks or performs I/O, except the optional name
resolver consulted by Parse for keyword input.
*/
package gamut

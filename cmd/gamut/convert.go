package main

import (
	"fmt"
	"os"

	"github.com/aretw0/gamut"
	"github.com/aretw0/gamut/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color into another color space",
	Long: `Parses a CSS color string and re-expresses it in the requested space.

Examples:
  gamut convert "rgb(255 0 0)" --to lch
  gamut convert "lab(50% 40 59.5)" --to srgb
  gamut convert rebeccapurple --to p3`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		to, _ := cmd.Flags().GetString("to")
		precision, _ := cmd.Flags().GetInt("precision")

		c, err := engine.Parse(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		out, err := engine.To(c, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		css, err := engine.Format(out, gamut.FormatOptions{Precision: precision})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		printWithSwatch(engine, out, css)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("to", "t", "srgb", "Destination space id")
	convertCmd.Flags().IntP("precision", "p", 0, "Significant digits (0 = default)")
}

// printWithSwatch prints the CSS string, prefixed by a terminal color block
// when stdout is a TTY.
func printWithSwatch(engine *gamut.Engine, c gamut.Color, css string) {
	swatch := ""
	if srgb, err := engine.To(c, "srgb"); err == nil {
		if block := tui.Swatch(tui.Hex(srgb.Coords), 4); block != "" {
			swatch = block + " "
		}
	}
	fmt.Println(swatch + css)
}

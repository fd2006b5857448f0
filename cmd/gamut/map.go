package main

import (
	"fmt"
	"os"

	"github.com/aretw0/gamut"
	"github.com/spf13/cobra"
)

// mapCmd represents the map command
var mapCmd = &cobra.Command{
	Use:   "map <color>",
	Short: "Map a color into a target gamut",
	Long: `Brings a color inside a display gamut. Out-of-gamut colors are reduced
along a coordinate (chroma by default) and then clipped; in-gamut colors pass
through unchanged.

Examples:
  gamut map "lch(55 132 95)" --space srgb
  gamut map "color(--display-p3 0 1 0)" --space srgb --method clip`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		space, _ := cmd.Flags().GetString("space")
		method, _ := cmd.Flags().GetString("method")

		c, err := engine.Parse(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		var target any
		if space != "" {
			target = space
		}
		was, err := engine.InGamut(c, target)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		out, err := engine.ToGamut(&c, gamut.GamutOptions{Method: method, Space: target})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		css, err := engine.Format(out, gamut.FormatOptions{})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		printWithSwatch(engine, out, css)
		if !was {
			fmt.Fprintln(os.Stderr, "(input was out of gamut)")
		}
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)

	mapCmd.Flags().StringP("space", "s", "", "Target gamut space id (default: the color's own space)")
	mapCmd.Flags().StringP("method", "m", "", "Mapping method: clip or <space>.<coordinate> (default lch.chroma)")
}

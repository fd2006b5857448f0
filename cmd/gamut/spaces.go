package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/aretw0/gamut/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// spacesCmd represents the spaces command
var spacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "List the registered color spaces",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		var b strings.Builder
		b.WriteString("# Color spaces\n\n")
		b.WriteString("| ID | Name | CSS | White | Coordinates |\n|---|---|---|---|---|\n")
		for _, space := range engine.Registry().List() {
			coords := make([]string, len(space.Coords))
			for i, c := range space.Coords {
				coords[i] = c.Name
				if c.Range != nil && !math.IsInf(c.Range.Max, 1) {
					coords[i] += fmt.Sprintf(" [%g..%g]", c.Range.Min, c.Range.Max)
				}
			}
			css := space.CSSID
			if css == "" {
				css = "-"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				space.ID, space.Name, css, space.White.Name, strings.Join(coords, ", "))
		}

		render := tui.NewRenderer()
		out, err := render(b.String())
		if err != nil {
			out = b.String()
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(spacesCmd)
}

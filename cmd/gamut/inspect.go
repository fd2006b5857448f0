package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/gamut"
	"github.com/aretw0/gamut/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <color>",
	Short: "Show a color's coordinates and gamut status",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		c, err := engine.Parse(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		md, err := inspectMarkdown(engine, c)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		render := tui.NewRenderer()
		out, err := render(md)
		if err != nil {
			// Plain markdown beats nothing when the renderer fails.
			out = md
		}
		fmt.Print(out)
	},
}

func inspectMarkdown(engine *gamut.Engine, c gamut.Color) (string, error) {
	space, err := engine.Space(c)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", engine.String(c))
	fmt.Fprintf(&b, "Space: **%s** (%s), white point %s\n\n", space.Name, space.ID, space.White.Name)

	b.WriteString("| Coordinate | Value |\n|---|---|\n")
	for i, coord := range space.Coords {
		v := 0.0
		if i < len(c.Coords) {
			v = c.Coords[i]
		}
		fmt.Fprintf(&b, "| %s | %.5g |\n", coord.Name, v)
	}
	fmt.Fprintf(&b, "| alpha | %.5g |\n\n", c.Alpha)

	b.WriteString("## Other spaces\n\n")
	for _, id := range []string{"srgb", "p3", "lab", "lch"} {
		if id == space.ID {
			continue
		}
		out, err := engine.To(c, id)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "- `%s`\n", engine.String(out))
	}
	b.WriteString("\n## Gamut\n\n")
	for _, id := range []string{"srgb", "p3"} {
		ok, err := engine.InGamut(c, id)
		if err != nil {
			continue
		}
		status := "outside"
		if ok {
			status = "inside"
		}
		fmt.Fprintf(&b, "- %s: %s\n", id, status)
	}
	return b.String(), nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

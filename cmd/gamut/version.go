package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/gamut"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gamut",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gamut version %s\n", strings.TrimSpace(gamut.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

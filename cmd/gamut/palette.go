package main

import (
	"fmt"
	"os"

	redisadapter "github.com/aretw0/gamut/pkg/adapters/redis"
	"github.com/aretw0/gamut/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// paletteCmd groups the named-color palette subcommands.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manage the shared named-color palette",
	Long:  `Stores name to color bindings in Redis so every process resolving keywords sees the same palette. Requires --redis.`,
}

func paletteStore(cmd *cobra.Command) (ports.PaletteStore, error) {
	addr, _ := cmd.Flags().GetString("redis")
	if addr == "" {
		return nil, fmt.Errorf("palette commands require --redis")
	}
	client := backend.NewClient(&backend.Options{Addr: addr})
	return redisadapter.NewFromClient(client), nil
}

var paletteSetCmd = &cobra.Command{
	Use:   "set <name> <color>",
	Short: "Bind a name to a CSS color string",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := paletteStore(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		// Reject strings the engine cannot parse, so the palette stays usable.
		engine, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}
		if _, err := engine.Parse(cmd.Context(), args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if err := store.Save(cmd.Context(), args[0], args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
	},
}

var paletteGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Resolve a palette name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := paletteStore(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		v, err := store.Lookup(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(v)
	},
}

var paletteRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a palette binding",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := paletteStore(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteSetCmd, paletteGetCmd, paletteRmCmd)
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/gamut"
	"github.com/aretw0/gamut/internal/logging"
	"github.com/aretw0/gamut/pkg/adapters/memory"
	redisadapter "github.com/aretw0/gamut/pkg/adapters/redis"
	"github.com/aretw0/gamut/pkg/spacefile"
	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gamut",
	Short: "Gamut is a color space conversion and gamut mapping engine",
	Long:  `Gamut parses CSS color strings, converts between color spaces and maps colors into display gamuts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("spaces", "", "YAML file with additional color space definitions")
	rootCmd.PersistentFlags().String("redis", "", "Redis address for the shared color palette (default: built-in CSS keywords)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newEngine builds an engine from the persistent flags: logging level, name
// resolver backend and extra space definitions.
func newEngine(cmd *cobra.Command) (*gamut.Engine, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	redisAddr, _ := cmd.Flags().GetString("redis")
	opts := []gamut.Option{gamut.WithLogger(logger)}
	if redisAddr != "" {
		client := backend.NewClient(&backend.Options{Addr: redisAddr})
		opts = append(opts, gamut.WithResolver(redisadapter.NewFromClient(client)))
	} else {
		opts = append(opts, gamut.WithResolver(memory.NewWithKeywords()))
	}

	engine, err := gamut.New(opts...)
	if err != nil {
		return nil, err
	}

	if path, _ := cmd.Flags().GetString("spaces"); path != "" {
		if err := spacefile.Register(engine.Registry(), path); err != nil {
			return nil, err
		}
	}
	return engine, nil
}

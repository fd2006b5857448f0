package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/gamut/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the gamut engine as an MCP Server.
This lets AI agents parse, convert and gamut-map colors as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		engine, err := newEngine(cmd)
		if err != nil {
			log.Fatalf("Error initializing engine: %v", err)
		}

		srv := mcp.NewServer(engine)

		switch transport {
		case "stdio":
			// Logs must not corrupt JSON-RPC on Stdout.
			log.SetOutput(os.Stderr)
			slog.Info("Starting gamut MCP server (stdio)...")
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			slog.Info("Starting gamut MCP server (SSE)", "port", port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				if err != http.ErrServerClosed {
					slog.Error("MCP server execution failed", "error", err)
					os.Exit(1)
				}
			}
			slog.Info("MCP server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}

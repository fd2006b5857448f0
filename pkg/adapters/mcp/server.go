// Package mcp exposes the gamut engine as an MCP server so that agent hosts
// can parse, convert and gamut-map colors as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/gamut"
	"github.com/aretw0/gamut/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ColorResult is the structured payload returned by every color tool.
type ColorResult struct {
	Space  string    `json:"space" jsonschema_description:"Space id the coordinates are expressed in"`
	Coords []float64 `json:"coords" jsonschema_description:"Coordinate vector in the result space"`
	Alpha  float64   `json:"alpha" jsonschema_description:"Alpha channel, 0 to 1"`
	CSS    string    `json:"css" jsonschema_description:"CSS serialization of the color"`
}

// GamutResult extends ColorResult with the pre-mapping gamut status.
type GamutResult struct {
	ColorResult
	WasInGamut bool `json:"wasInGamut" jsonschema_description:"Whether the input was already inside the target gamut"`
}

// Engine defines the interface required by the MCP server.
type Engine interface {
	Parse(ctx context.Context, input string) (gamut.Color, error)
	To(c gamut.Color, space any) (gamut.Color, error)
	ToGamut(c *gamut.Color, opts gamut.GamutOptions) (gamut.Color, error)
	InGamut(c gamut.Color, space any) (bool, error)
	Format(c gamut.Color, opts gamut.FormatOptions) (string, error)
	Registry() *registry.Registry
}

// Server wraps the gamut Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("gamut-mcp", strings.TrimSpace(gamut.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: parse_color
	parseTool := mcp.NewTool("parse_color",
		mcp.WithDescription("Parse a CSS color string (rgb(), hsl(), lab(), lch(), color()) into structured coordinates."),
		mcp.WithString("input", mcp.Required(), mcp.Description("The CSS color string to parse")),
		mcp.WithOutputSchema[ColorResult](),
	)
	s.mcpServer.AddTool(parseTool, mcp.NewStructuredToolHandler(s.handleParse))

	// TOOL: convert_color
	convertTool := mcp.NewTool("convert_color",
		mcp.WithDescription("Convert a CSS color string into another color space."),
		mcp.WithString("input", mcp.Required(), mcp.Description("The CSS color string to convert")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Destination space id, e.g. lch or p3")),
		mcp.WithOutputSchema[ColorResult](),
	)
	s.mcpServer.AddTool(convertTool, mcp.NewStructuredToolHandler(s.handleConvert))

	// TOOL: map_to_gamut
	gamutTool := mcp.NewTool("map_to_gamut",
		mcp.WithDescription("Map a color into a target gamut, reducing chroma or clipping as requested."),
		mcp.WithString("input", mcp.Required(), mcp.Description("The CSS color string to map")),
		mcp.WithString("space", mcp.Description("Target gamut space id (default: the color's own space)")),
		mcp.WithString("method", mcp.Description("Mapping method: clip or a <space>.<coordinate> reference (default lch.chroma)")),
		mcp.WithOutputSchema[GamutResult](),
	)
	s.mcpServer.AddTool(gamutTool, mcp.NewStructuredToolHandler(s.handleGamut))

	// TOOL: list_spaces
	s.mcpServer.AddTool(mcp.NewTool("list_spaces",
		mcp.WithDescription("List the registered color spaces with their coordinate ranges."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.spaceListing())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("listing failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleParse(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ColorResult, error) {
	input, _ := args["input"].(string)

	c, err := s.engine.Parse(ctx, input)
	if err != nil {
		return ColorResult{}, fmt.Errorf("parse failed: %w", err)
	}
	return s.result(c)
}

func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ColorResult, error) {
	input, _ := args["input"].(string)
	to, _ := args["to"].(string)

	c, err := s.engine.Parse(ctx, input)
	if err != nil {
		return ColorResult{}, fmt.Errorf("parse failed: %w", err)
	}
	out, err := s.engine.To(c, to)
	if err != nil {
		return ColorResult{}, fmt.Errorf("convert failed: %w", err)
	}
	return s.result(out)
}

func (s *Server) handleGamut(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GamutResult, error) {
	input, _ := args["input"].(string)
	method, _ := args["method"].(string)

	c, err := s.engine.Parse(ctx, input)
	if err != nil {
		return GamutResult{}, fmt.Errorf("parse failed: %w", err)
	}

	var target any
	if space, ok := args["space"].(string); ok && space != "" {
		target = space
	}
	was, err := s.engine.InGamut(c, target)
	if err != nil {
		return GamutResult{}, fmt.Errorf("gamut check failed: %w", err)
	}
	out, err := s.engine.ToGamut(&c, gamut.GamutOptions{Method: method, Space: target})
	if err != nil {
		return GamutResult{}, fmt.Errorf("gamut mapping failed: %w", err)
	}
	res, err := s.result(out)
	if err != nil {
		return GamutResult{}, err
	}
	return GamutResult{ColorResult: res, WasInGamut: was}, nil
}

func (s *Server) result(c gamut.Color) (ColorResult, error) {
	css, err := s.engine.Format(c, gamut.FormatOptions{})
	if err != nil {
		return ColorResult{}, fmt.Errorf("format failed: %w", err)
	}
	return ColorResult{
		Space:  c.Space,
		Coords: c.Coords,
		Alpha:  c.Alpha,
		CSS:    css,
	}, nil
}

type spaceEntry struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	CSSID  string   `json:"cssId,omitempty"`
	White  string   `json:"white"`
	Coords []string `json:"coords"`
}

func (s *Server) spaceListing() []spaceEntry {
	var out []spaceEntry
	for _, space := range s.engine.Registry().List() {
		entry := spaceEntry{
			ID:    space.ID,
			Name:  space.Name,
			CSSID: space.CSSID,
			White: space.White.Name,
		}
		for _, c := range space.Coords {
			entry.Coords = append(entry.Coords, c.Name)
		}
		out = append(out, entry)
	}
	return out
}

func (s *Server) registerResources() {
	// EXPOSE: gamut://spaces
	s.mcpServer.AddResource(mcp.NewResource("gamut://spaces", "Registered Color Spaces",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.spaceListing())
		if err != nil {
			return nil, fmt.Errorf("failed to list spaces: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "gamut://spaces",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

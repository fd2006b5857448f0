// Package http exposes the gamut engine as a small JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aretw0/gamut"
	"github.com/aretw0/gamut/pkg/domain"
	"github.com/aretw0/gamut/pkg/registry"
	"github.com/go-chi/chi/v5"
)

// Engine defines the interface the HTTP adapter needs from the gamut core.
type Engine interface {
	Parse(ctx context.Context, input string) (gamut.Color, error)
	To(c gamut.Color, space any) (gamut.Color, error)
	ToGamut(c *gamut.Color, opts gamut.GamutOptions) (gamut.Color, error)
	InGamut(c gamut.Color, space any) (bool, error)
	Format(c gamut.Color, opts gamut.FormatOptions) (string, error)
	Registry() *registry.Registry
}

// Server holds the engine and the request metrics.
type Server struct {
	engine  Engine
	metrics *metrics
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine) http.Handler {
	s := &Server{engine: engine, metrics: newMetrics()}

	r := chi.NewRouter()
	r.Get("/healthz", s.Healthz)
	r.Get("/spaces", s.Spaces)
	r.Post("/parse", s.Parse)
	r.Post("/convert", s.Convert)
	r.Post("/gamut", s.Gamut)
	r.Handle("/metrics", s.metrics.handler())

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ColorResponse is the common response body: the structured color plus its
// CSS serialization.
type ColorResponse struct {
	Color gamut.Color `json:"color"`
	CSS   string      `json:"css"`
}

func (s *Server) respondColor(w http.ResponseWriter, c gamut.Color) {
	css, err := s.engine.Format(c, gamut.FormatOptions{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ColorResponse{Color: c, CSS: css})
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": gamut.Version,
	})
}

// SpaceInfo describes one registered space in the /spaces listing.
type SpaceInfo struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	CSSID  string      `json:"cssId,omitempty"`
	White  string      `json:"white"`
	Coords []CoordInfo `json:"coords"`
}

// CoordInfo describes one coordinate axis.
type CoordInfo struct {
	Name string   `json:"name"`
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
}

// Spaces handles GET /spaces.
func (s *Server) Spaces(w http.ResponseWriter, r *http.Request) {
	var out []SpaceInfo
	for _, space := range s.engine.Registry().List() {
		info := SpaceInfo{
			ID:    space.ID,
			Name:  space.Name,
			CSSID: space.CSSID,
			White: space.White.Name,
		}
		for _, c := range space.Coords {
			ci := CoordInfo{Name: c.Name}
			if c.Range != nil {
				min, max := c.Range.Min, c.Range.Max
				ci.Min, ci.Max = &min, &max
			}
			info.Coords = append(info.Coords, ci)
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}

// ParseRequest is the body of POST /parse.
type ParseRequest struct {
	Input string `json:"input"`
}

// Parse handles POST /parse.
func (s *Server) Parse(w http.ResponseWriter, r *http.Request) {
	var body ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	c, err := s.engine.Parse(r.Context(), body.Input)
	if err != nil {
		s.metrics.parseFailures.Inc()
		slog.Warn("parse failed", "input", body.Input, "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.respondColor(w, c)
}

// ConvertRequest is the body of POST /convert. Either Input (a CSS string)
// or Color must be set.
type ConvertRequest struct {
	Input string       `json:"input,omitempty"`
	Color *gamut.Color `json:"color,omitempty"`
	To    string       `json:"to"`
}

// Convert handles POST /convert.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	var body ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	c, ok := s.resolveColor(w, r, body.Input, body.Color)
	if !ok {
		return
	}
	out, err := s.engine.To(c, body.To)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errorIsUnknownSpace(err) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	s.metrics.conversions.WithLabelValues(c.Space, out.Space).Inc()
	s.respondColor(w, out)
}

// GamutRequest is the body of POST /gamut.
type GamutRequest struct {
	Input  string       `json:"input,omitempty"`
	Color  *gamut.Color `json:"color,omitempty"`
	Space  string       `json:"space,omitempty"`
	Method string       `json:"method,omitempty"`
}

// GamutResponse extends ColorResponse with the pre-mapping gamut status.
type GamutResponse struct {
	ColorResponse
	WasInGamut bool `json:"wasInGamut"`
}

// Gamut handles POST /gamut.
func (s *Server) Gamut(w http.ResponseWriter, r *http.Request) {
	var body GamutRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	c, ok := s.resolveColor(w, r, body.Input, body.Color)
	if !ok {
		return
	}

	var target any
	if body.Space != "" {
		target = body.Space
	}
	was, err := s.engine.InGamut(c, target)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	out, err := s.engine.ToGamut(&c, gamut.GamutOptions{
		Method: body.Method,
		Space:  target,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	css, err := s.engine.Format(out, gamut.FormatOptions{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, GamutResponse{
		ColorResponse: ColorResponse{Color: out, CSS: css},
		WasInGamut:    was,
	})
}

func (s *Server) resolveColor(w http.ResponseWriter, r *http.Request, input string, c *gamut.Color) (gamut.Color, bool) {
	switch {
	case c != nil:
		return gamut.NewColor(c.Space, c.Coords, c.Alpha), true
	case input != "":
		parsed, err := s.engine.Parse(r.Context(), input)
		if err != nil {
			s.metrics.parseFailures.Inc()
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return gamut.Color{}, false
		}
		return parsed, true
	default:
		http.Error(w, "either input or color is required", http.StatusBadRequest)
		return gamut.Color{}, false
	}
}

func errorIsUnknownSpace(err error) bool {
	return errors.Is(err, domain.ErrUnknownSpace)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

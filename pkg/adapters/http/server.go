package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/pushdown"
	"github.com/aretw0/pushdown/internal/dto"
	"github.com/aretw0/pushdown/internal/presentation/graph"
	"github.com/aretw0/pushdown/pkg/domain"
	"github.com/aretw0/pushdown/pkg/ports"
	"github.com/aretw0/pushdown/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// Engine is the part of pushdown.Engine the server drives.
type Engine interface {
	Check(ctx context.Context, input string) domain.Result
	Record(ctx context.Context, input string) (*domain.RunRecord, domain.Result, error)
	Definition() *domain.Definition
	Runs() ports.RunStore
}

var _ Engine = (*pushdown.Engine)(nil)

// Server serves one engine. It holds no per-request state.
type Server struct {
	Engine  Engine
	Logger  *slog.Logger
	Metrics http.Handler
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetricsHandler mounts h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{Engine: engine}
	for _, opt := range opts {
		opt(server)
	}
	if server.Logger == nil {
		server.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	r.Get("/check", server.CheckQuery)
	r.Post("/check", server.Check)
	r.Get("/definition", server.GetDefinition)
	r.Get("/graph", server.GetGraph)
	r.Get("/runs", server.ListRuns)
	r.Get("/runs/{id}", server.GetRun)
	r.Delete("/runs/{id}", server.DeleteRun)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	if server.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Pushdown API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// Check handles the POST /check request.
func (s *Server) Check(w http.ResponseWriter, r *http.Request) {
	var body dto.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Check: Invalid request body", "err", err)
		return
	}
	s.respondCheck(w, r, body)
}

// CheckQuery handles the GET /check?input= request.
func (s *Server) CheckQuery(w http.ResponseWriter, r *http.Request) {
	var body dto.CheckRequest
	query := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, true, "input", query, &body.Input); err != nil {
		http.Error(w, fmt.Sprintf("Invalid input parameter: %v", err), http.StatusBadRequest)
		return
	}
	var record *bool
	if err := runtime.BindQueryParameter("form", true, false, "record", query, &record); err != nil {
		http.Error(w, fmt.Sprintf("Invalid record parameter: %v", err), http.StatusBadRequest)
		return
	}
	body.Record = record != nil && *record
	s.respondCheck(w, r, body)
}

func (s *Server) respondCheck(w http.ResponseWriter, r *http.Request, body dto.CheckRequest) {
	input, err := runner.SanitizeInput(body.Input)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid input: %v", err), http.StatusBadRequest)
		s.Logger.Warn("Check: Input rejected", "err", err, "size", len(body.Input))
		return
	}

	var resp dto.CheckResponse
	if body.Record {
		record, res, err := s.Engine.Record(r.Context(), input)
		if err != nil {
			http.Error(w, fmt.Sprintf("Record error: %v", err), http.StatusInternalServerError)
			s.Logger.Error("Record failed", "err", err)
			return
		}
		resp = dto.FromResult(input, res)
		resp.ID = record.ID
	} else {
		resp = dto.FromResult(input, s.Engine.Check(r.Context(), input))
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// GetDefinition handles the GET /definition request.
func (s *Server) GetDefinition(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Engine.Definition())
}

// GetGraph handles the GET /graph request. With ?input= the visited states are highlighted.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	def := s.Engine.Definition()

	var overlay *graph.GraphOverlay
	if r.URL.Query().Has("input") {
		input, err := runner.SanitizeInput(r.URL.Query().Get("input"))
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid input: %v", err), http.StatusBadRequest)
			return
		}
		overlay = graph.OverlayFromResult(def, s.Engine.Check(r.Context(), input))
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(def, overlay))
}

// ListRuns handles the GET /runs request.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Engine.Runs().List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("List runs failed", "err", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"runs": ids})
}

// GetRun handles the GET /runs/{id} request.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, err := s.Engine.Runs().Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			http.Error(w, fmt.Sprintf("Run %q not found", id), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("Load run failed", "id", id, "err", err)
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

// DeleteRun handles the DELETE /runs/{id} request.
func (s *Server) DeleteRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.Engine.Runs().Delete(r.Context(), id); err != nil {
		http.Error(w, fmt.Sprintf("Delete error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("Delete run failed", "id", id, "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "pushdown-http",
		"version":     pushdown.Version,
		"api_version": apiVersion,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "err", err)
	}
}

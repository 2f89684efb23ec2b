// Package mcp exposes an engine to AI agents through the Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/pushdown"
	"github.com/aretw0/pushdown/internal/dto"
	"github.com/aretw0/pushdown/internal/presentation/graph"
	"github.com/aretw0/pushdown/internal/presentation/tui"
	"github.com/aretw0/pushdown/pkg/domain"
	"github.com/aretw0/pushdown/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	definitionURI = "pushdown://definition"
	graphURI      = "pushdown://graph"
)

// Engine is the part of pushdown.Engine the MCP server drives.
type Engine interface {
	Check(ctx context.Context, input string) domain.Result
	Record(ctx context.Context, input string) (*domain.RunRecord, domain.Result, error)
	Definition() *domain.Definition
}

var _ Engine = (*pushdown.Engine)(nil)

// CheckArgs are the arguments of the check_input tool.
type CheckArgs struct {
	Input  string `json:"input"`
	Record bool   `json:"record,omitempty"`
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("pushdown-mcp", pushdown.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
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
		slog.Info("MCP Server listening (SSE)", "address", addr)
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
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	checkTool := mcp.NewTool("check_input",
		mcp.WithDescription("Run the automaton on whitespace-separated input symbols and return the verdict with its transition trace."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Input symbols separated by spaces, e.g. \"a a b b\"")),
		mcp.WithBoolean("record", mcp.Description("Persist the run and return its id")),
	)
	s.mcpServer.AddTool(checkTool, mcp.NewStructuredToolHandler(s.handleCheck))

	s.mcpServer.AddTool(mcp.NewTool("describe_definition",
		mcp.WithDescription("Describe the loaded automaton: states, alphabet, accepting states and transitions."),
	), s.handleDescribe)

	s.mcpServer.AddTool(mcp.NewTool("render_graph",
		mcp.WithDescription("Render the automaton as a Mermaid flowchart, optionally highlighting the states visited for an input."),
		mcp.WithString("input", mcp.Description("Input to trace on the graph (optional)")),
	), s.handleGraph)
}

func (s *Server) handleCheck(ctx context.Context, request mcp.CallToolRequest, args CheckArgs) (dto.CheckResponse, error) {
	clean, err := runner.SanitizeInput(args.Input)
	if err != nil {
		slog.Warn("MCP Check: Input rejected", "err", err, "size", len(args.Input))
		return dto.CheckResponse{}, fmt.Errorf("input rejected: %w", err)
	}

	if !args.Record {
		return dto.FromResult(clean, s.engine.Check(ctx, clean)), nil
	}

	record, res, err := s.engine.Record(ctx, clean)
	if err != nil {
		return dto.CheckResponse{}, fmt.Errorf("record failed: %w", err)
	}
	resp := dto.FromResult(clean, res)
	resp.ID = record.ID
	return resp, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(tui.DescribeMarkdown(s.engine.Definition())), nil
}

func (s *Server) handleGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	def := s.engine.Definition()
	input := request.GetString("input", "")
	if input == "" {
		return mcp.NewToolResultText(graph.GenerateMermaid(def, nil)), nil
	}

	clean, err := runner.SanitizeInput(input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("input rejected: %v", err)), nil
	}
	overlay := graph.OverlayFromResult(def, s.engine.Check(ctx, clean))
	return mcp.NewToolResultText(graph.GenerateMermaid(def, overlay)), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(definitionURI, "Automaton Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Definition())
		if err != nil {
			return nil, fmt.Errorf("failed to encode definition: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      definitionURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})

	s.mcpServer.AddResource(mcp.NewResource(graphURI, "Automaton Graph",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      graphURI,
				MIMEType: "text/plain",
				Text:     graph.GenerateMermaid(s.engine.Definition(), nil),
			},
		}, nil
	})
}

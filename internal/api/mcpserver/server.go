// Package mcpserver hosts the customer_support tool and the support form
// resource over the Model Context Protocol. It is a thin adapter: all
// validation, composition and dispatch live in the service layer.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/spec-kit/support-desk/internal/observability"
	"github.com/spec-kit/support-desk/internal/schema"
	"github.com/spec-kit/support-desk/internal/service"
)

// ToolName is the single externally invocable operation.
const ToolName = "customer_support"

// FormResourceURI identifies the read-only support form document.
const FormResourceURI = "ui://support/form"

// Options bundles dependencies for the MCP server.
type Options struct {
	Name        string
	Version     string
	Service     *service.SupportService
	Schema      schema.Schema
	UIAssetPath string
	Metrics     *observability.Metrics
	Logger      *zap.Logger
}

// Server wraps the underlying MCP server with the support-desk wiring.
type Server struct {
	mcp  *server.MCPServer
	opts Options
}

// New registers the tool and resource and returns the server.
func New(opts Options) *Server {
	s := server.NewMCPServer(opts.Name, opts.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
	)
	srv := &Server{mcp: s, opts: opts}

	s.AddTool(buildTool(opts.Schema), srv.handleSubmit)

	s.AddResource(
		mcp.NewResource(
			FormResourceURI,
			"Support Form",
			mcp.WithResourceDescription("Self-contained support ticket form document"),
			mcp.WithMIMEType("text/html"),
		),
		srv.handleFormResource,
	)

	return srv
}

// buildTool derives the tool input schema from the validation contract, so
// the tool caller and the validator always agree on the expected shape.
func buildTool(sch schema.Schema) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Submit a customer support ticket. The ticket is delivered to the support inbox by email."),
	}
	for _, field := range sch.Fields {
		propOpts := []mcp.PropertyOption{mcp.Description(field.Description)}
		if field.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		opts = append(opts, mcp.WithString(field.Key, propOpts...))
	}
	return mcp.NewTool(ToolName, opts...)
}

func (s *Server) handleSubmit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := s.opts.Service.Submit(ctx, req.GetArguments())
	s.opts.Metrics.RecordToolCall(ToolName, result.Status == service.StatusOK)

	payload, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := mcp.NewToolResultText(string(payload))
	out.IsError = result.Status != service.StatusOK
	return out, nil
}

// handleFormResource serves the UI build artifact, read fresh on every fetch.
func (s *Server) handleFormResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := os.ReadFile(s.opts.UIAssetPath)
	if err != nil {
		return nil, fmt.Errorf("read support form document: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/html",
			Text:     string(data),
		},
	}, nil
}

// ServeStdio runs the protocol over stdin/stdout until the stream closes.
// Logs must stay on stderr while this is active.
func (s *Server) ServeStdio() error {
	s.opts.Logger.Info("serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}

// StreamableHTTP returns an HTTP host for the protocol. The caller owns its
// lifecycle: Start to serve, Shutdown to stop accepting sessions.
func (s *Server) StreamableHTTP() *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(s.mcp)
}

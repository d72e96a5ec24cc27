// Package gateway binds the tool catalog and dispatcher onto an MCP server.
// The SDK owns framing, correlation, and lifecycle; the gateway only
// registers tools and bridges invocations.
package gateway

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"timemcp/internal/domain"
	"timemcp/internal/infra/dispatcher"
	"timemcp/internal/infra/mcpcodec"
	"timemcp/internal/infra/telemetry"
)

type Server struct {
	dispatcher *dispatcher.Dispatcher
	logger     *zap.Logger
}

func NewServer(d *dispatcher.Dispatcher, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		dispatcher: d,
		logger:     logger.Named("gateway"),
	}
}

// Run serves the stdio transport until the context is canceled. Cancellation
// closes the transport before returning, so an interrupt always leaves the
// connection shut down cleanly.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("server starting (stdio transport)")
	return s.run(ctx, &mcp.StdioTransport{})
}

func (s *Server) run(ctx context.Context, transport mcp.Transport) error {
	return s.build().Run(ctx, transport)
}

func (s *Server) build() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    domain.ServerName,
		Version: domain.ServerVersion,
	}, &mcp.ServerOptions{
		HasTools: true,
	})

	for _, desc := range s.dispatcher.Tools() {
		server.AddTool(mcpcodec.ToolToMCP(desc), s.toolHandler(desc.Name))
	}
	return server
}

func (s *Server) toolHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = telemetry.WithRequestMeta(ctx, telemetry.NewRequestMeta(ctx))

		args, err := mcpcodec.DecodeArguments(req.Params.Arguments)
		if err != nil {
			s.logger.Warn("bad argument payload", zap.String(telemetry.FieldTool, name), zap.Error(err))
			return nil, err
		}

		env := s.dispatcher.Invoke(ctx, name, args)
		return mcpcodec.EnvelopeToResult(env), nil
	}
}

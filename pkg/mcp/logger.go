package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/macropower/cvgen/pkg/log"
)

// WithLogging wraps a tool handler with structured logging of each call.
// The handler receives a context whose logger carries the tool name.
func WithLogging[In, Out any](handler mcp.ToolHandlerFor[In, Out]) mcp.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, Out, error) {
		start := time.Now()

		logger := log.FromContext(ctx).With(slog.String("tool", req.Params.Name))
		ctx = log.NewContext(ctx, logger)

		logger.DebugContext(ctx, "handling tool call", slog.Any("args", in))

		result, out, err := handler(ctx, req, in)
		if err != nil {
			logger.ErrorContext(ctx, "tool call failed", slog.Any("err", err))
		} else {
			logger.DebugContext(ctx, "tool call completed", slog.Duration("duration", time.Since(start)))
		}

		return result, out, err
	}
}

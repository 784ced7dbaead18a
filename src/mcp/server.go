// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
)

// Run starts the MCP server over stdio and blocks until ctx is cancelled
// or the transport returns.
func Run(ctx context.Context, version string) error {
	s := server.NewMCPServer(
		"x509verify",
		version,
		server.WithToolCapabilities(false),
	)

	s.AddTool(validateChainTool(), handleValidateChain)

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("mcp: server shutdown: %w", ctx.Err())
	}
}

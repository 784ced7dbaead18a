// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// validateChainTool is the single tool this server exposes: run the same
// validation the CLI performs, over inputs supplied inline rather than as
// file paths.
func validateChainTool() mcp.Tool {
	return mcp.NewTool("validate_chain",
		mcp.WithDescription("Validate an X.509 certificate chain against a trust store, per RFC 5280/6818"),
		mcp.WithString("chain",
			mcp.Required(),
			mcp.Description("PEM-encoded leaf certificate followed by zero or more intermediates, in the order presented on the wire"),
		),
		mcp.WithString("trust_store",
			mcp.Required(),
			mcp.Description("PEM-encoded trust anchors to validate the chain against"),
		),
		mcp.WithString("hostname",
			mcp.Description("Hostname the leaf must match; omit to skip the Name Matcher"),
		),
		mcp.WithString("at",
			mcp.Description("RFC3339 timestamp to validate against instead of the current time"),
		),
		mcp.WithBoolean("exhaustive",
			mcp.Description("Accumulate every validation failure instead of stopping at the first"),
			mcp.DefaultBool(false),
		),
		mcp.WithBoolean("strict_ordering",
			mcp.Description("Require the chain to already be in issuer order"),
			mcp.DefaultBool(false),
		),
		mcp.WithString("format",
			mcp.Description("Result rendering: 'text', 'json', or 'table'"),
			mcp.DefaultString("text"),
		),
	)
}

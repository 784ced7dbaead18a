// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	x509certs "github.com/ashgrove/x509verify/src/internal/x509/certs"
	x509chain "github.com/ashgrove/x509verify/src/internal/x509/chain"
	x509store "github.com/ashgrove/x509verify/src/internal/x509/store"
)

// handleValidateChain decodes the chain and trust store from the request,
// runs the validator, and renders the report in the requested format. It
// mirrors src/cli's runValidate, minus the file-path and --connect
// plumbing a stdio MCP client has no use for.
func handleValidateChain(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := validateArguments(validateChainSchemaLoader, request.GetArguments()); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	chainPEM, err := request.RequireString("chain")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	trustStorePEM, err := request.RequireString("trust_store")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	hostname := request.GetString("hostname", "")
	atRaw := request.GetString("at", "")
	exhaustive := request.GetBool("exhaustive", false)
	strictOrdering := request.GetBool("strict_ordering", false)
	format := request.GetString("format", "text")

	certManager := x509certs.New()

	chainCerts, err := certManager.DecodeMultiple([]byte(chainPEM))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode chain: %v", err)), nil
	}
	anchors, err := certManager.DecodeMultiple([]byte(trustStorePEM))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode trust store: %v", err)), nil
	}

	at := time.Now()
	if atRaw != "" {
		at, err = time.Parse(time.RFC3339, atRaw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid 'at' timestamp: %v", err)), nil
		}
	}

	checks := x509chain.DefaultChecks()
	checks.CheckExhaustive = checks.CheckExhaustive || exhaustive
	checks.CheckStrictOrdering = checks.CheckStrictOrdering || strictOrdering
	checks.CheckFQHN = checks.CheckFQHN && hostname != ""

	store := x509store.New(anchors)
	reasons := x509chain.ValidateWith(
		x509chain.Params{Time: at, Hostname: hostname},
		x509chain.DefaultHooks(),
		checks,
		store,
		chainCerts,
	)

	report := x509chain.Report{
		Hostname: hostname,
		Time:     at,
		Chain:    chainCerts,
		Reasons:  reasons,
	}

	switch format {
	case "json":
		data, err := report.JSON()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render report: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	case "table":
		return mcp.NewToolResultText(report.Table()), nil
	default:
		return mcp.NewToolResultText(report.String()), nil
	}
}

// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the chain validator over the Model Context
// Protocol, so an LLM-driven client can call validate_chain the same way a
// human would invoke the x509verify CLI. It wraps x509chain, x509certs, and
// x509store behind a single tool and speaks stdio transport only; network
// transports are a non-goal here, matching the CLI's own footprint.
package mcpserver

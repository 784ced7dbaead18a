// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the certificate chain validator.
// It implements a Cobra-based CLI that validates a presented chain against a trust
// store, a target hostname, and a policy of checks, rendering the outcome as plain
// text, JSON, or a markdown table. The package handles file I/O, context cancellation,
// and integrates with the logger package for structured output and error reporting.
package cli

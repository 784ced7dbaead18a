// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// validateChainArgumentsSchema is checked against the raw arguments of the
// validate_chain tool before any of them reach the validator. The mcp-go
// tool definition already declares required/typed parameters, but a client
// that bypasses that layer (a hand-rolled JSON-RPC call, for instance)
// should not be able to smuggle malformed input past it.
const validateChainArgumentsSchema = `{
	"type": "object",
	"required": ["chain", "trust_store"],
	"properties": {
		"chain": {"type": "string", "minLength": 1},
		"trust_store": {"type": "string", "minLength": 1},
		"hostname": {"type": "string"},
		"at": {"type": "string"},
		"exhaustive": {"type": "boolean"},
		"strict_ordering": {"type": "boolean"},
		"format": {"type": "string", "enum": ["text", "json", "table"]}
	},
	"additionalProperties": true
}`

var validateChainSchemaLoader = gojsonschema.NewStringLoader(validateChainArgumentsSchema)

// validateArguments checks args against schema and folds every violation
// into a single error.
func validateArguments(schema gojsonschema.JSONLoader, args map[string]any) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewGoLoader(args))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}
	errs := result.Errors()
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("invalid arguments: %s", strings.Join(msgs, "; "))
}

// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import "time"

// Params bundles the two values a validation call needs beyond the chain
// and trust store itself. It is immutable for the duration of one call.
type Params struct {
	// Time is the instant validity intervals are checked against.
	Time time.Time
	// Hostname is the target FQHN the leaf must match.
	Hostname string
}

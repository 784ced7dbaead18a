// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509chain implements the core of an [X.509] certificate chain
// validator conforming to [RFC 5280] and [RFC 6818]. Given a presented
// chain, a trust store of anchors, a target hostname, and a validation
// instant, it decides whether the chain is acceptable and enumerates every
// reason it is not, rather than stopping at the first.
//
// The entry points are Validate and ValidateWith. Everything underneath —
// name matching, leaf policy, CA constraints, signature verification,
// critical-extension handling, and the chain walk itself — is composed
// through Checks and Hooks, so behavior can be narrowed or replaced without
// touching the walker.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
// [RFC 5280]: https://www.rfc-editor.org/rfc/rfc5280
// [RFC 6818]: https://www.rfc-editor.org/rfc/rfc6818
package x509chain

// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides specialized encoding and decoding operations for [X.509] certificates.
// It supports multiple formats including [PEM], DER, and [PKCS7], and provides
// utilities for handling certificate blocks and bundles. This package is used
// by the chain validator to parse inputs and format outputs.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
// [PKCS7]: https://en.wikipedia.org/wiki/PKCS_7
// [PEM]: https://en.wikipedia.org/wiki/Privacy-Enhanced_Mail
package x509certs

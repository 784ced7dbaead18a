// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import "crypto/x509"

// Checks is the policy configuration threaded through a validation call.
// Every field has a stable default; zero-value Checks disables everything,
// which is almost never what a caller wants — use DefaultChecks.
type Checks struct {
	// CheckTimeValidity enforces the validity interval on every
	// certificate visited by the walker.
	CheckTimeValidity bool
	// CheckStrictOrdering requires the presented chain to already be in
	// issuer order; when false the walker scans for the matching issuer.
	CheckStrictOrdering bool
	// CheckCAConstraints runs the CA gate on every selected issuer.
	CheckCAConstraints bool
	// CheckExhaustive accumulates every reason instead of returning on
	// the first one.
	CheckExhaustive bool
	// CheckLeafV3 requires the leaf to be encoded as X.509v3.
	CheckLeafV3 bool
	// CheckLeafKeyUsage is intersected against the leaf's key usage
	// extension, when present. Zero value means no requirement.
	CheckLeafKeyUsage x509.KeyUsage
	// CheckLeafKeyPurpose is intersected against the leaf's extended key
	// usage extension, when present. Empty means no requirement.
	CheckLeafKeyPurpose []x509.ExtKeyUsage
	// CheckFQHN runs the Name Matcher against the target hostname.
	CheckFQHN bool
	// CheckCriticalExtensions flags certificates carrying a critical
	// extension outside the recognized set.
	CheckCriticalExtensions bool
}

// DefaultChecks returns the reference policy: every gate active, fail-fast,
// no leaf key usage/purpose requirement beyond what RFC 5280 already
// implies through absence-means-unconstrained.
func DefaultChecks() Checks {
	return Checks{
		CheckTimeValidity:       true,
		CheckStrictOrdering:     false,
		CheckCAConstraints:      true,
		CheckExhaustive:         false,
		CheckLeafV3:             true,
		CheckLeafKeyUsage:       0,
		CheckLeafKeyPurpose:     nil,
		CheckFQHN:               true,
		CheckCriticalExtensions: true,
	}
}

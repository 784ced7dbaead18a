// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import "crypto/x509"

// leafVersion returns the wire-encoded version value (0, 1, 2), where 2
// denotes X.509v3. crypto/x509 stores the already-incremented form
// (1, 2, 3), so this undoes that offset to match §3's data model.
func leafVersion(leaf *x509.Certificate) int {
	return leaf.Version - 1
}

// checkLeafVersion implements §4.3's version gate.
func checkLeafVersion(leaf *x509.Certificate) []Reason {
	if leafVersion(leaf) != 2 {
		return []Reason{reason(LeafNotV3)}
	}
	return nil
}

// checkLeafKeyUsage implements §4.3's key-usage gate: an absent extension
// always passes (RFC 5280 — an unconstrained key is usable for any
// purpose); a present extension must grant every requested flag.
func checkLeafKeyUsage(leaf *x509.Certificate, want x509.KeyUsage) []Reason {
	if want == 0 || !hasExtension(leaf, oidKeyUsage) {
		return nil
	}
	if leaf.KeyUsage&want != want {
		return []Reason{reason(LeafKeyUsageNotAllowed)}
	}
	return nil
}

// checkLeafKeyPurpose implements §4.3's extended-key-usage gate, the same
// absent-means-unconstrained contract as checkLeafKeyUsage.
func checkLeafKeyPurpose(leaf *x509.Certificate, want []x509.ExtKeyUsage) []Reason {
	if len(want) == 0 || !hasExtension(leaf, oidExtKeyUsage) {
		return nil
	}
	for _, purpose := range want {
		if !containsExtKeyUsage(leaf.ExtKeyUsage, purpose) {
			return []Reason{reason(LeafKeyPurposeNotAllowed)}
		}
	}
	return nil
}

func containsExtKeyUsage(have []x509.ExtKeyUsage, want x509.ExtKeyUsage) bool {
	for _, eku := range have {
		if eku == want {
			return true
		}
	}
	return false
}

// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import "crypto/x509"

// checkCAConstraints implements §4.4's CA Constraint Gate. level is the
// number of intermediates already crossed between the leaf and issuer (0
// for the leaf's direct issuer); the anchor itself does not contribute a
// depth level. All three sub-gates are evaluated and any failures are
// returned together, regardless of exhaustion mode — they form one
// composite check.
func checkCAConstraints(level int, issuer *x509.Certificate) []Reason {
	var reasons []Reason

	if hasExtension(issuer, oidKeyUsage) && issuer.KeyUsage&x509.KeyUsageCertSign == 0 {
		reasons = append(reasons, reason(NotAllowedToSign))
	}

	if !issuer.BasicConstraintsValid || !issuer.IsCA {
		reasons = append(reasons, reason(NotAnAuthority))
	}

	if pl, ok := pathLenConstraint(issuer); ok && pl < level {
		reasons = append(reasons, reason(AuthorityTooDeep))
	}

	return reasons
}

// pathLenConstraint reports the basic-constraints pathLenConstraint value
// and whether it was actually present in the extension. crypto/x509's
// parser marks an absent constraint as MaxPathLen -1, while a hand-built
// Certificate leaves it at 0; MaxPathLenZero is what tells an explicit
// zero apart from that.
func pathLenConstraint(cert *x509.Certificate) (int, bool) {
	if !cert.BasicConstraintsValid {
		return 0, false
	}
	if cert.MaxPathLen < 0 || (cert.MaxPathLen == 0 && !cert.MaxPathLenZero) {
		return 0, false
	}
	return cert.MaxPathLen, true
}

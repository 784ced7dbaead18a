// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"bytes"
	"crypto/x509"
	"time"
)

// Hooks are the three swappable predicates the walker consults. They exist
// for auditors who need to observe or loosen a single rule without forking
// the walker itself; DefaultHooks implements the reference semantics this
// package is otherwise built to.
type Hooks struct {
	// MatchSubjectIssuer reports whether candidate's subject equals the
	// raw issuer distinguished name being searched for.
	MatchSubjectIssuer func(issuerDN []byte, candidate *x509.Certificate) bool
	// ValidateTime checks cert's validity interval against now.
	ValidateTime func(now time.Time, cert *x509.Certificate) []Reason
	// ValidateName checks leaf's candidate names against hostname.
	ValidateName func(hostname string, leaf *x509.Certificate) []Reason
}

// DefaultHooks returns the reference implementations: exact raw-DN
// equality for issuer matching, RFC 5280 validity-interval comparison, and
// the wildcard-aware Name Matcher of §4.2.
func DefaultHooks() Hooks {
	return Hooks{
		MatchSubjectIssuer: defaultMatchSubjectIssuer,
		ValidateTime:       defaultValidateTime,
		ValidateName:       ValidateName,
	}
}

// defaultMatchSubjectIssuer compares the DER-encoded subject of candidate
// against the DER-encoded issuer DN under search, byte for byte — the same
// comparison the teacher's revocation lookup already relies on
// (bytes.Equal(c.RawSubject, cert.RawIssuer)).
func defaultMatchSubjectIssuer(issuerDN []byte, candidate *x509.Certificate) bool {
	return bytes.Equal(candidate.RawSubject, issuerDN)
}

// defaultValidateTime implements the validity-interval check of §4.1:
// InFuture if now precedes notBefore, Expired if now follows notAfter,
// otherwise empty.
func defaultValidateTime(now time.Time, cert *x509.Certificate) []Reason {
	if now.Before(cert.NotBefore) {
		return []Reason{reason(InFuture)}
	}
	if now.After(cert.NotAfter) {
		return []Reason{reason(Expired)}
	}
	return nil
}

// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509store implements the trust-store lookup collaborator the
// validator core treats as external per spec §6: a map from distinguished
// name to a certificate, with the invariant that anything found there is
// trusted.
package x509store

import "crypto/x509"

// Store is a lookup from a raw (DER-encoded) distinguished name to the
// anchor certificate that owns it. It implements the CertificateStore
// collaborator interface the walker consumes.
type Store struct {
	byDN map[string]*x509.Certificate
}

// New builds a Store from a set of trusted anchor certificates, indexed by
// their raw subject DN. A later anchor with a DN already present replaces
// the earlier one — callers are expected to pass a de-duplicated set.
func New(anchors []*x509.Certificate) *Store {
	s := &Store{byDN: make(map[string]*x509.Certificate, len(anchors))}
	for _, cert := range anchors {
		s.byDN[string(cert.RawSubject)] = cert
	}
	return s
}

// FindCertificate looks up the anchor whose subject DN matches dn. The
// bool return mirrors the option<SignedCertificate> of spec §6.
func (s *Store) FindCertificate(dn []byte) (*x509.Certificate, bool) {
	cert, ok := s.byDN[string(dn)]
	return cert, ok
}

// Len reports how many anchors are indexed.
func (s *Store) Len() int { return len(s.byDN) }

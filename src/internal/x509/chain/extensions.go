// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/x509"
	"encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var (
	oidKeyUsage            = asn1.ObjectIdentifier{2, 5, 29, 15}
	oidBasicConstraints     = asn1.ObjectIdentifier{2, 5, 29, 19}
	oidExtKeyUsage          = asn1.ObjectIdentifier{2, 5, 29, 37}
	oidSubjectAltName       = asn1.ObjectIdentifier{2, 5, 29, 17}
	oidNameConstraints      = asn1.ObjectIdentifier{2, 5, 29, 30}
	oidCertificatePolicies  = asn1.ObjectIdentifier{2, 5, 29, 32}
	oidPolicyMappings       = asn1.ObjectIdentifier{2, 5, 29, 33}
	oidAuthorityKeyID       = asn1.ObjectIdentifier{2, 5, 29, 35}
	oidPolicyConstraints    = asn1.ObjectIdentifier{2, 5, 29, 36}
	oidInhibitAnyPolicy     = asn1.ObjectIdentifier{2, 5, 29, 54}
	oidSubjectKeyID         = asn1.ObjectIdentifier{2, 5, 29, 14}
	oidCRLDistributionPoint = asn1.ObjectIdentifier{2, 5, 29, 31}
	oidAuthorityInfoAccess  = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 1, 1}
)

// recognizedExtensions lists the extensions this validator understands
// well enough for a critical flag on them to be unsurprising. Anything
// else, if marked critical, is an UnknownCriticalExtension per §9's open
// question.
var recognizedExtensions = map[string]bool{
	oidKeyUsage.String():            true,
	oidBasicConstraints.String():     true,
	oidExtKeyUsage.String():          true,
	oidSubjectAltName.String():       true,
	oidNameConstraints.String():      true,
	oidCertificatePolicies.String():  true,
	oidPolicyMappings.String():       true,
	oidAuthorityKeyID.String():       true,
	oidPolicyConstraints.String():    true,
	oidInhibitAnyPolicy.String():     true,
	oidSubjectKeyID.String():         true,
	oidCRLDistributionPoint.String(): true,
	oidAuthorityInfoAccess.String():  true,
}

func hasExtension(cert *x509.Certificate, oid asn1.ObjectIdentifier) bool {
	for _, ext := range cert.Extensions {
		if ext.Id.Equal(oid) {
			return true
		}
	}
	return false
}

// checkCriticalExtensions resolves §9's open question: a critical
// extension outside recognizedExtensions, or a basic-constraints
// extension too malformed for cryptobyte to even walk, raises
// UnknownCriticalExtension without touching any other output.
func checkCriticalExtensions(cert *x509.Certificate) []Reason {
	for _, ext := range cert.Extensions {
		if !ext.Critical {
			continue
		}
		if !recognizedExtensions[ext.Id.String()] {
			return []Reason{reasonf(UnknownCriticalExtension, ext.Id.String())}
		}
		if ext.Id.Equal(oidBasicConstraints) && !basicConstraintsWellFormed(ext.Value) {
			return []Reason{reasonf(UnknownCriticalExtension, ext.Id.String())}
		}
	}
	return nil
}

// basicConstraintsWellFormed re-walks the raw DER of a BasicConstraints
// extension with cryptobyte, independent of crypto/x509's own parsed
// IsCA/MaxPathLen fields, as a defense-in-depth check that a critical
// basic-constraints extension is at least a well-formed
// SEQUENCE { cA BOOLEAN DEFAULT FALSE, pathLenConstraint INTEGER OPTIONAL }.
func basicConstraintsWellFormed(der []byte) bool {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return false
	}
	if !seq.Empty() && seq.PeekASN1Tag(cbasn1.BOOLEAN) {
		var isCA bool
		if !seq.ReadASN1Boolean(&isCA) {
			return false
		}
	}
	if !seq.Empty() && seq.PeekASN1Tag(cbasn1.INTEGER) {
		var pathLen int64
		if !seq.ReadASN1Integer(&pathLen) {
			return false
		}
	}
	return seq.Empty()
}

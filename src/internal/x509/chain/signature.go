// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import "crypto/x509"

// SignatureVerifier is the external cryptographic primitive collaborator
// of §4.5: given a signed certificate and the certificate believed to have
// signed it, decide whether the signature actually checks out. A nil
// return is SignaturePass; any non-nil error is SignatureFailed, and its
// message becomes the InvalidSignature reason's detail.
type SignatureVerifier interface {
	Verify(signed, signer *x509.Certificate) error
}

// defaultSignatureVerifier delegates to crypto/x509's own signature-math
// primitive. It deliberately does not call CheckSignatureFrom: that stdlib
// method also enforces the signer's CA/keyCertSign constraints (RFC 5280
// 4.2.1.9) before it ever checks the signature, which would fold §4.4's CA
// gate into §4.5's pure signature check and double-report constraint
// failures that checkCAConstraints already reports on its own.
type defaultSignatureVerifier struct{}

// DefaultSignatureVerifier is the reference SignatureVerifier.
var DefaultSignatureVerifier SignatureVerifier = defaultSignatureVerifier{}

func (defaultSignatureVerifier) Verify(signed, signer *x509.Certificate) error {
	return signer.CheckSignature(signed.SignatureAlgorithm, signed.RawTBSCertificate, signed.Signature)
}

// checkSignature runs verifier over (signed, signer) and translates a
// failure into an InvalidSignature reason. Self-signed certificates are
// still run through this — checking a certificate against itself catches
// a corrupted self-signature even though SelfSigned has already been
// emitted separately.
func checkSignature(verifier SignatureVerifier, signed, signer *x509.Certificate) []Reason {
	if err := verifier.Verify(signed, signer); err != nil {
		return []Reason{reasonf(InvalidSignature, err.Error())}
	}
	return nil
}

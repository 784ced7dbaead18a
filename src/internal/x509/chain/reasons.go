// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import "fmt"

// Kind identifies the variant of a validation failure. It is the sum type
// described by the FailureReason enumeration: every way a chain can be
// rejected reduces to one of these values plus, for a handful of variants,
// a free-form Detail string.
type Kind int

const (
	// UnknownCriticalExtension marks a certificate carrying a critical
	// extension the decoder does not recognize.
	UnknownCriticalExtension Kind = iota
	// Expired marks a certificate whose notAfter has passed the
	// validation instant.
	Expired
	// InFuture marks a certificate whose notBefore is still ahead of the
	// validation instant.
	InFuture
	// SelfSigned marks a certificate whose subject equals its issuer and
	// which was not found in the trust store.
	SelfSigned
	// UnknownCA marks a certificate whose issuer could not be located,
	// either because the presented chain ran out or because strict
	// ordering rejected the next presented certificate.
	UnknownCA
	// NotAllowedToSign marks an issuer whose key usage extension is
	// present but does not grant keyCertSign.
	NotAllowedToSign
	// NotAnAuthority marks an issuer lacking a basic-constraints
	// extension with cA=true.
	NotAnAuthority
	// AuthorityTooDeep marks an issuer whose pathLenConstraint is
	// violated by the current path depth.
	AuthorityTooDeep
	// NoCommonName marks a leaf certificate with no decodable subject
	// common name.
	NoCommonName
	// InvalidName marks a syntactically malformed candidate name; Detail
	// carries the offending candidate.
	InvalidName
	// NameMismatch marks a leaf whose candidate names (CN and SAN DNS
	// entries) none matched the target hostname; Detail carries the
	// hostname.
	NameMismatch
	// InvalidWildcard marks a wildcard candidate rejected by the
	// wildcard guard (see matchCandidate).
	InvalidWildcard
	// LeafKeyUsageNotAllowed marks a leaf whose key usage extension is
	// present but does not grant every requested flag.
	LeafKeyUsageNotAllowed
	// LeafKeyPurposeNotAllowed marks a leaf whose extended key usage
	// extension is present but does not grant every requested purpose.
	LeafKeyPurposeNotAllowed
	// LeafNotV3 marks a leaf certificate not encoded as X.509v3.
	LeafNotV3
	// EmptyChain marks a validation call given no certificates at all.
	EmptyChain
	// InvalidSignature marks a signature verification failure between
	// two adjacent certificates; Detail carries the underlying reason
	// reported by the signature primitive.
	InvalidSignature
)

// String renders the Kind's name, matching the FailureReason enumeration
// in the specification this package implements.
func (k Kind) String() string {
	switch k {
	case UnknownCriticalExtension:
		return "UnknownCriticalExtension"
	case Expired:
		return "Expired"
	case InFuture:
		return "InFuture"
	case SelfSigned:
		return "SelfSigned"
	case UnknownCA:
		return "UnknownCA"
	case NotAllowedToSign:
		return "NotAllowedToSign"
	case NotAnAuthority:
		return "NotAnAuthority"
	case AuthorityTooDeep:
		return "AuthorityTooDeep"
	case NoCommonName:
		return "NoCommonName"
	case InvalidName:
		return "InvalidName"
	case NameMismatch:
		return "NameMismatch"
	case InvalidWildcard:
		return "InvalidWildcard"
	case LeafKeyUsageNotAllowed:
		return "LeafKeyUsageNotAllowed"
	case LeafKeyPurposeNotAllowed:
		return "LeafKeyPurposeNotAllowed"
	case LeafNotV3:
		return "LeafNotV3"
	case EmptyChain:
		return "EmptyChain"
	case InvalidSignature:
		return "InvalidSignature"
	default:
		return "Unknown"
	}
}

// Reason is one entry in the ordered sequence a validation call returns. An
// empty []Reason means success; the caller must not partially trust a
// chain that produced any Reason at all.
type Reason struct {
	Kind   Kind
	Detail string
}

// Error implements the error interface so a Reason can be wrapped, logged,
// or compared with errors.Is-style tooling without a dedicated adapter.
func (r Reason) Error() string {
	if r.Detail == "" {
		return r.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", r.Kind, r.Detail)
}

func reason(k Kind) Reason                  { return Reason{Kind: k} }
func reasonf(k Kind, detail string) Reason { return Reason{Kind: k, Detail: detail} }

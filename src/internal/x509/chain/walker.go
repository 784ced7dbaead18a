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

// CertificateStore is the trust-store lookup collaborator of spec §6: if a
// DN is present, the returned certificate is trusted.
type CertificateStore interface {
	FindCertificate(dn []byte) (*x509.Certificate, bool)
}

// Validate is the convenience entry point: it obtains the current instant
// internally and otherwise behaves exactly like ValidateWith.
func Validate(hooks Hooks, checks Checks, store CertificateStore, hostname string, chainCerts []*x509.Certificate) []Reason {
	return ValidateWith(Params{Time: time.Now(), Hostname: hostname}, hooks, checks, store, chainCerts)
}

// ValidateWith is the deterministic entry point. It never panics and never
// returns an error — every defect is modeled as a Reason in the returned
// sequence. An empty sequence is success.
func ValidateWith(params Params, hooks Hooks, checks Checks, store CertificateStore, chainCerts []*x509.Certificate) []Reason {
	if len(chainCerts) == 0 {
		return []Reason{reason(EmptyChain)}
	}

	top := chainCerts[0]
	rest := chainCerts[1:]

	leafReasons := func() []Reason { return leafPhase(params, hooks, checks, top) }
	walkReasons := func() []Reason { return walkPhase(params, hooks, checks, store, top, rest) }

	return combine(checks.CheckExhaustive, leafReasons, walkReasons)
}

// leafPhase runs the checks that apply only to the presented leaf: name
// matching, version, key usage, and extended key usage, in that order,
// under the shared exhaustion mode. This is §4.6's "leaf phase".
func leafPhase(params Params, hooks Hooks, checks Checks, leaf *x509.Certificate) []Reason {
	return sequence(checks.CheckExhaustive, []step{
		{checks.CheckFQHN, func() []Reason { return hooks.ValidateName(params.Hostname, leaf) }},
		{checks.CheckLeafV3, func() []Reason { return checkLeafVersion(leaf) }},
		{checks.CheckLeafKeyUsage != 0, func() []Reason { return checkLeafKeyUsage(leaf, checks.CheckLeafKeyUsage) }},
		{len(checks.CheckLeafKeyPurpose) > 0, func() []Reason { return checkLeafKeyPurpose(leaf, checks.CheckLeafKeyPurpose) }},
	})
}

// walkPhase runs the chain-building state machine of §4.6. It is
// tail-iterative on (level, current, remaining) rather than recursive, so
// a pathologically long chain does not grow the call stack.
func walkPhase(params Params, hooks Hooks, checks Checks, store CertificateStore, top *x509.Certificate, rest []*x509.Certificate) []Reason {
	level := 0
	current := top
	remaining := rest

	var out []Reason
	for {
		var done bool
		var nextLevel int
		var nextCurrent *x509.Certificate
		var nextRemaining []*x509.Certificate
		var nodeReasons []Reason

		preStep := func() []Reason {
			return sequence(checks.CheckExhaustive, []step{
				{checks.CheckTimeValidity, func() []Reason { return hooks.ValidateTime(params.Time, current) }},
				{checks.CheckCriticalExtensions, func() []Reason { return checkCriticalExtensions(current) }},
			})
		}
		restStep := func() []Reason {
			nodeReasons, done, nextLevel, nextCurrent, nextRemaining = advance(hooks, checks, store, level, current, remaining)
			return nodeReasons
		}

		stepOut := combine(checks.CheckExhaustive, preStep, restStep)
		out = append(out, stepOut...)

		if !checks.CheckExhaustive && len(stepOut) > 0 {
			// Fail-fast: the first non-empty result truncates every
			// remaining step, including the rest of this walk.
			break
		}
		if done {
			break
		}
		level, current, remaining = nextLevel, nextCurrent, nextRemaining
	}
	return out
}

// advance performs one node's structural transition: anchor lookup,
// self-signed detection, presented-chain exhaustion, or issuer selection
// followed by the CA gate and signature check. It implements steps 2-6 of
// §4.6.
func advance(hooks Hooks, checks Checks, store CertificateStore, level int, current *x509.Certificate, remaining []*x509.Certificate) (reasons []Reason, done bool, nextLevel int, nextCurrent *x509.Certificate, nextRemaining []*x509.Certificate) {
	if anchor, ok := store.FindCertificate(current.RawIssuer); ok {
		return checkSignature(DefaultSignatureVerifier, current, anchor), true, 0, nil, nil
	}

	if bytes.Equal(current.RawSubject, current.RawIssuer) {
		r := []Reason{reason(SelfSigned)}
		r = append(r, checkSignature(DefaultSignatureVerifier, current, current)...)
		return r, true, 0, nil, nil
	}

	if len(remaining) == 0 {
		return []Reason{reason(UnknownCA)}, true, 0, nil, nil
	}

	issuer, rest, ok := selectIssuer(hooks, checks, current, remaining)
	if !ok {
		return []Reason{reason(UnknownCA)}, true, 0, nil, nil
	}

	stepReasons := combine(checks.CheckExhaustive,
		func() []Reason {
			if checks.CheckCAConstraints {
				return checkCAConstraints(level, issuer)
			}
			return nil
		},
		func() []Reason { return checkSignature(DefaultSignatureVerifier, current, issuer) },
	)

	return stepReasons, false, level + 1, issuer, rest
}

// selectIssuer implements §4.6 step 5: under strict ordering the next
// presented certificate must already be the issuer; otherwise the walker
// scans the remaining certificates for the first subject match.
func selectIssuer(hooks Hooks, checks Checks, current *x509.Certificate, remaining []*x509.Certificate) (issuer *x509.Certificate, rest []*x509.Certificate, ok bool) {
	if checks.CheckStrictOrdering {
		candidate := remaining[0]
		if !hooks.MatchSubjectIssuer(current.RawIssuer, candidate) {
			return nil, nil, false
		}
		return candidate, remaining[1:], true
	}

	for i, candidate := range remaining {
		if hooks.MatchSubjectIssuer(current.RawIssuer, candidate) {
			rest := make([]*x509.Certificate, 0, len(remaining)-1)
			rest = append(rest, remaining[:i]...)
			rest = append(rest, remaining[i+1:]...)
			return candidate, rest, true
		}
	}
	return nil, nil, false
}

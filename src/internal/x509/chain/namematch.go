// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/x509"
	"strings"

	"golang.org/x/text/cases"
)

// fold case-folds a DNS name the same way for both the candidate and the
// target hostname; DNS names are case-insensitive per RFC 5280/6125, and
// the reference algorithm below is defined over label bytes, not runes, so
// folding once up front keeps every later comparison a plain strings.Split.
var fold = cases.Fold()

// ValidateName is the default Hooks.ValidateName implementation — the Name
// Matcher of §4.2. It extracts the candidate set (subject CN, then SAN DNS
// entries, in that order) from leaf and tests each against hostname until
// one matches. Per-candidate InvalidName/InvalidWildcard outcomes are
// discarded the moment any candidate succeeds; on total failure exactly
// one NameMismatch is emitted, never one per candidate.
func ValidateName(hostname string, leaf *x509.Certificate) []Reason {
	cn := leaf.Subject.CommonName
	if cn == "" {
		return []Reason{reason(NoCommonName)}
	}

	candidates := make([]string, 0, 1+len(leaf.DNSNames))
	candidates = append(candidates, cn)
	candidates = append(candidates, leaf.DNSNames...)

	folded := fold.String(hostname)
	for _, candidate := range candidates {
		if matchLabels(fold.String(candidate), folded) {
			return nil
		}
	}
	return []Reason{reasonf(NameMismatch, hostname)}
}

// matchCandidate is the per-candidate primitive described by §4.2's
// "per-candidate rules" and exercised directly by §8's wildcard-rule
// testable properties. It reports the specific InvalidName/InvalidWildcard
// outcome a single candidate produces, which ValidateName collapses into a
// single NameMismatch when every candidate fails this way.
func matchCandidate(candidate, hostname string) (ok bool, failure Reason) {
	labels := strings.Split(candidate, ".")
	for _, l := range labels {
		if l == "" {
			return false, reasonf(InvalidName, candidate)
		}
	}

	hostLabels := strings.Split(hostname, ".")

	if labels[0] != "*" {
		return labelsEqual(labels, hostLabels), Reason{}
	}

	rest := labels[1:]
	suffix := reverseLabels(rest)
	if len(suffix) < 2 {
		return false, reason(InvalidWildcard)
	}
	if len(suffix[0]) <= 2 && len(suffix[1]) <= 3 && len(suffix) < 3 {
		return false, reason(InvalidWildcard)
	}

	// The wildcard stands for exactly one label, so the host must carry
	// exactly as many labels as the candidate: the wildcard's label plus
	// the fixed suffix.
	if len(hostLabels) != len(labels) {
		return false, Reason{}
	}
	reversedHost := reverseLabels(hostLabels)
	return hasPrefix(reversedHost, suffix), Reason{}
}

// matchLabels reports whether a single candidate matches hostname,
// discarding the specific failure kind — used by ValidateName, which only
// cares whether some candidate succeeded.
func matchLabels(candidate, hostname string) bool {
	ok, _ := matchCandidate(candidate, hostname)
	return ok
}

func reverseLabels(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[len(labels)-1-i] = l
	}
	return out
}

func labelsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func hasPrefix(labels, prefix []string) bool {
	if len(prefix) > len(labels) {
		return false
	}
	for i := range prefix {
		if labels[i] != prefix[i] {
			return false
		}
	}
	return true
}

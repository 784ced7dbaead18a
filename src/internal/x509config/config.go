// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509config decodes a validation policy from YAML into a
// x509chain.Checks value, so a deployment can tune the policy without
// recompiling the validator.
package x509config

import (
	"crypto/x509"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	x509chain "github.com/ashgrove/x509verify/src/internal/x509/chain"
)

// document mirrors x509chain.Checks field for field, using the YAML-
// friendly string forms for the two enum-valued fields. The boolean fields
// are pointers so a field the file omits can be told apart from one the
// file sets to false: DecodeChecks merges onto DefaultChecks rather than a
// zero-valued Checks, so an omitted field keeps its default instead of
// silently disabling that gate.
type document struct {
	TimeValidity       *bool    `yaml:"timeValidity"`
	StrictOrdering     *bool    `yaml:"strictOrdering"`
	CAConstraints      *bool    `yaml:"caConstraints"`
	Exhaustive         *bool    `yaml:"exhaustive"`
	LeafV3             *bool    `yaml:"leafV3"`
	LeafKeyUsage       []string `yaml:"leafKeyUsage"`
	LeafKeyPurpose     []string `yaml:"leafKeyPurpose"`
	FQHN               *bool    `yaml:"fqhn"`
	CriticalExtensions *bool    `yaml:"criticalExtensions"`
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

var keyUsageByName = map[string]x509.KeyUsage{
	"digitalSignature": x509.KeyUsageDigitalSignature,
	"contentCommitment": x509.KeyUsageContentCommitment,
	"keyEncipherment":   x509.KeyUsageKeyEncipherment,
	"dataEncipherment":  x509.KeyUsageDataEncipherment,
	"keyAgreement":      x509.KeyUsageKeyAgreement,
	"certSign":          x509.KeyUsageCertSign,
	"crlSign":           x509.KeyUsageCRLSign,
	"encipherOnly":      x509.KeyUsageEncipherOnly,
	"decipherOnly":      x509.KeyUsageDecipherOnly,
}

var extKeyUsageByName = map[string]x509.ExtKeyUsage{
	"any":             x509.ExtKeyUsageAny,
	"serverAuth":      x509.ExtKeyUsageServerAuth,
	"clientAuth":      x509.ExtKeyUsageClientAuth,
	"codeSigning":     x509.ExtKeyUsageCodeSigning,
	"emailProtection": x509.ExtKeyUsageEmailProtection,
	"timeStamping":    x509.ExtKeyUsageTimeStamping,
	"ocspSigning":     x509.ExtKeyUsageOCSPSigning,
}

// LoadChecksFile reads and decodes a YAML policy file at path.
func LoadChecksFile(path string) (x509chain.Checks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return x509chain.Checks{}, err
	}
	return DecodeChecks(data)
}

// DecodeChecks decodes a YAML document onto a DefaultChecks base: a field
// the document omits keeps its default rather than zeroing out, so a file
// that sets only one gate tightens or loosens just that gate instead of
// disabling every other one by omission. Unknown key usage or extended key
// usage names are reported as an error rather than silently ignored.
func DecodeChecks(data []byte) (x509chain.Checks, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return x509chain.Checks{}, fmt.Errorf("x509config: %w", err)
	}

	checks := x509chain.DefaultChecks()

	checks.CheckTimeValidity = boolOr(doc.TimeValidity, checks.CheckTimeValidity)
	checks.CheckStrictOrdering = boolOr(doc.StrictOrdering, checks.CheckStrictOrdering)
	checks.CheckCAConstraints = boolOr(doc.CAConstraints, checks.CheckCAConstraints)
	checks.CheckExhaustive = boolOr(doc.Exhaustive, checks.CheckExhaustive)
	checks.CheckLeafV3 = boolOr(doc.LeafV3, checks.CheckLeafV3)
	checks.CheckFQHN = boolOr(doc.FQHN, checks.CheckFQHN)
	checks.CheckCriticalExtensions = boolOr(doc.CriticalExtensions, checks.CheckCriticalExtensions)

	if doc.LeafKeyUsage != nil {
		var ku x509.KeyUsage
		for _, name := range doc.LeafKeyUsage {
			bit, ok := keyUsageByName[name]
			if !ok {
				return x509chain.Checks{}, fmt.Errorf("x509config: unknown key usage %q", name)
			}
			ku |= bit
		}
		checks.CheckLeafKeyUsage = ku
	}

	if doc.LeafKeyPurpose != nil {
		eku := make([]x509.ExtKeyUsage, 0, len(doc.LeafKeyPurpose))
		for _, name := range doc.LeafKeyPurpose {
			purpose, ok := extKeyUsageByName[name]
			if !ok {
				return x509chain.Checks{}, fmt.Errorf("x509config: unknown key purpose %q", name)
			}
			eku = append(eku, purpose)
		}
		checks.CheckLeafKeyPurpose = eku
	}

	return checks, nil
}

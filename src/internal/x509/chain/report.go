// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ashgrove/x509verify/src/internal/helper/gc"
)

// Report bundles a validation call's inputs and outcome for presentation.
// It carries no behavior of its own beyond rendering — the decision already
// happened in ValidateWith.
type Report struct {
	Hostname string
	Time     time.Time
	Chain    []*x509.Certificate
	Reasons  []Reason
}

// Accepted reports whether the validation produced no reasons at all.
func (r Report) Accepted() bool { return len(r.Reasons) == 0 }

// String renders a short human-readable summary: one line per certificate
// role/subject, followed by either "OK" or one line per Reason.
func (r Report) String() string {
	b := gc.Default.Get()
	defer func() {
		b.Reset()
		gc.Default.Put(b)
	}()

	for i, cert := range r.Chain {
		fmt.Fprintf(b, "%s %s\n", certificateRole(i, len(r.Chain)), cert.Subject.CommonName)
	}
	if r.Accepted() {
		b.WriteString("OK\n")
		return b.String()
	}
	for _, reason := range r.Reasons {
		fmt.Fprintf(b, "FAIL %s\n", reason.Error())
	}
	return b.String()
}

// JSON renders the report as an indented JSON document.
func (r Report) JSON() ([]byte, error) {
	type reasonJSON struct {
		Kind   string `json:"kind"`
		Detail string `json:"detail,omitempty"`
	}
	type certJSON struct {
		Role      string    `json:"role"`
		Subject   string    `json:"subject"`
		Issuer    string    `json:"issuer"`
		NotBefore time.Time `json:"notBefore"`
		NotAfter  time.Time `json:"notAfter"`
	}
	doc := struct {
		Hostname string       `json:"hostname"`
		Time     time.Time    `json:"time"`
		Accepted bool         `json:"accepted"`
		Chain    []certJSON   `json:"chain"`
		Reasons  []reasonJSON `json:"reasons"`
	}{
		Hostname: r.Hostname,
		Time:     r.Time,
		Accepted: r.Accepted(),
	}
	for i, cert := range r.Chain {
		doc.Chain = append(doc.Chain, certJSON{
			Role:      certificateRole(i, len(r.Chain)),
			Subject:   cert.Subject.CommonName,
			Issuer:    cert.Issuer.CommonName,
			NotBefore: cert.NotBefore,
			NotAfter:  cert.NotAfter,
		})
	}
	for _, reason := range r.Reasons {
		doc.Reasons = append(doc.Reasons, reasonJSON{Kind: reason.Kind.String(), Detail: reason.Detail})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Table renders the certificate chain and the outcome as a markdown table,
// in the same style the teacher used for its chain visualization.
func (r Report) Table() string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	table := tablewriter.NewTable(buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Role", "Subject", "Issuer", "Valid Until", "Key"})

	var rows [][]string
	for i, cert := range r.Chain {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			certificateRole(i, len(r.Chain)),
			cert.Subject.CommonName,
			cert.Issuer.CommonName,
			cert.NotAfter.Format("2006-01-02"),
			keyDescription(cert),
		})
	}
	table.Bulk(rows)
	table.Render()

	if r.Accepted() {
		buf.WriteString("\nOK\n")
		return buf.String()
	}
	buf.WriteString("\n")
	for _, reason := range r.Reasons {
		fmt.Fprintf(buf, "- %s\n", reason.Error())
	}
	return buf.String()
}

func certificateRole(index, total int) string {
	switch {
	case total == 1:
		return "Self-Signed"
	case index == 0:
		return "Leaf"
	case index == total-1:
		return "Root"
	default:
		return "Intermediate"
	}
}

func keyDescription(cert *x509.Certificate) string {
	switch pub := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return fmt.Sprintf("%d-bit RSA", pub.Size()*8)
	case *ecdsa.PublicKey:
		return fmt.Sprintf("%d-bit ECDSA", pub.Curve.Params().BitSize)
	default:
		return "unknown"
	}
}

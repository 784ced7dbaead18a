// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli implements the command-line entry point for validating an
// X.509 certificate chain against a trust store.
package cli

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ashgrove/x509verify/src/internal/helper/posix"
	"github.com/ashgrove/x509verify/src/internal/x509config"
	x509certs "github.com/ashgrove/x509verify/src/internal/x509/certs"
	x509chain "github.com/ashgrove/x509verify/src/internal/x509/chain"
	x509store "github.com/ashgrove/x509verify/src/internal/x509/store"
	"github.com/ashgrove/x509verify/src/logger"
)

var (
	trustStoreFile string
	hostname       string
	checksFile     string
	atTime         string
	exhaustive     bool
	strictOrdering bool
	outputFormat   string
	connect        string
)

// ErrTrustStoreRequired is returned when --trust-store is missing.
var ErrTrustStoreRequired = errors.New("cli: --trust-store is required")

// ErrChainRequired is returned when neither a chain file nor --connect was given.
var ErrChainRequired = errors.New("cli: a chain file or --connect host:port is required")

// OperationPerformedSuccessfully records whether the last Execute call
// validated a chain and found it acceptable, so a caller's shutdown
// logging (see cmd/x509verify) can distinguish a clean run from a
// rejected chain or a usage error.
var OperationPerformedSuccessfully bool

// Execute runs the root command against args[1:] of os.Args, returning any
// error instead of exiting directly so it can be driven from tests or from
// a signal-aware main like the teacher's cmd/run.go.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformedSuccessfully = false

	rootCmd := &cobra.Command{
		Use:     posix.GetExecutableName() + " [CHAIN_FILE]",
		Short:   "Validate an X.509 certificate chain against a trust store",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(ctx, log, args)
		},
	}

	rootCmd.Flags().StringVarP(&trustStoreFile, "trust-store", "t", "", "PEM file of trusted anchor certificates (required)")
	rootCmd.Flags().StringVarP(&hostname, "hostname", "n", "", "hostname the leaf certificate must match")
	rootCmd.Flags().StringVarP(&checksFile, "checks", "c", "", "YAML policy file overriding the default Checks")
	rootCmd.Flags().StringVar(&atTime, "at", "", "validate as of this RFC3339 instant instead of now")
	rootCmd.Flags().BoolVarP(&exhaustive, "exhaustive", "x", false, "collect every failure instead of stopping at the first")
	rootCmd.Flags().BoolVar(&strictOrdering, "strict-ordering", false, "require the presented chain to already be in issuer order")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "o", "text", "output format: text, table, or json")
	rootCmd.Flags().StringVar(&connect, "connect", "", "fetch the chain from host:port via TLS instead of a file")

	return rootCmd.Execute()
}

func runValidate(ctx context.Context, log logger.Logger, args []string) error {
	if trustStoreFile == "" {
		return ErrTrustStoreRequired
	}
	anchors, err := loadCertificates(trustStoreFile)
	if err != nil {
		return fmt.Errorf("loading trust store: %w", err)
	}
	store := x509store.New(anchors)
	log.Printf("loaded %d trust anchor(s) from %s", store.Len(), trustStoreFile)

	chainCerts, err := resolveChain(ctx, args)
	if err != nil {
		return err
	}

	checks := x509chain.DefaultChecks()
	if checksFile != "" {
		if checks, err = x509config.LoadChecksFile(checksFile); err != nil {
			return fmt.Errorf("loading checks file: %w", err)
		}
	}
	checks.CheckExhaustive = checks.CheckExhaustive || exhaustive
	checks.CheckStrictOrdering = checks.CheckStrictOrdering || strictOrdering
	checks.CheckFQHN = checks.CheckFQHN && hostname != ""

	when := time.Now()
	if atTime != "" {
		when, err = time.Parse(time.RFC3339, atTime)
		if err != nil {
			return fmt.Errorf("parsing --at: %w", err)
		}
	}

	reasons := x509chain.ValidateWith(
		x509chain.Params{Time: when, Hostname: hostname},
		x509chain.DefaultHooks(),
		checks,
		store,
		chainCerts,
	)

	report := x509chain.Report{Hostname: hostname, Time: when, Chain: chainCerts, Reasons: reasons}
	if err := printReport(report); err != nil {
		return err
	}

	if !report.Accepted() {
		return fmt.Errorf("cli: chain rejected (%d reason(s))", len(reasons))
	}
	OperationPerformedSuccessfully = true
	return nil
}

func resolveChain(ctx context.Context, args []string) ([]*x509.Certificate, error) {
	if connect != "" {
		host, port, err := splitHostPort(connect)
		if err != nil {
			return nil, err
		}
		dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return x509chain.FetchRemoteChain(dialCtx, host, port, 10*time.Second)
	}
	if len(args) != 1 {
		return nil, ErrChainRequired
	}
	return loadCertificates(args[0])
}

func splitHostPort(hostport string) (string, int, error) {
	host, portStr, found := strings.Cut(hostport, ":")
	if !found {
		return "", 0, fmt.Errorf("--connect must be host:port, got %q", hostport)
	}
	var port int
	if _, err := fmt.Sscanf(portStr, "%d", &port); err != nil {
		return "", 0, fmt.Errorf("--connect port %q is not numeric", portStr)
	}
	return host, port, nil
}

func loadCertificates(path string) ([]*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decoder := x509certs.New()
	return decoder.DecodeMultiple(data)
}

func printReport(report x509chain.Report) error {
	switch outputFormat {
	case "json":
		data, err := report.JSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "table":
		fmt.Print(report.Table())
	default:
		fmt.Print(report.String())
	}
	return nil
}

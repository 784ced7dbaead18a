// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ashgrove/x509verify/src/cli"
	"github.com/ashgrove/x509verify/src/logger"
	"github.com/ashgrove/x509verify/src/version"
)

func main() {
	log := logger.NewCLILogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)

	go func() {
		err := cli.Execute(ctx, version.Version, log)
		select {
		case done <- err:
		case <-ctx.Done():
			log.Println("Operation cancelled, cleaning up...")
		}
	}()

	var exitErr error
	select {
	case <-sigs:
		log.Println("\nReceived termination signal. Exiting...")
		cancel()
	case exitErr = <-done:
	}

	if cli.OperationPerformedSuccessfully {
		log.Println("Certificate chain validation completed successfully.")
	}

	if exitErr != nil {
		os.Exit(1)
	}
}

// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/ashgrove/x509verify/src/mcp"
	"github.com/ashgrove/x509verify/src/version"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	if err := mcpserver.Run(ctx, version.Version); err != nil && ctx.Err() == nil {
		log.Fatalf("mcp server: %v", err)
	}
}

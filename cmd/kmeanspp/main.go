// Package main provides the kmeanspp CLI entry point.
//
//	kmeanspp K [iter] < points.txt
//
// reads comma-separated points from standard input, clusters them starting
// from the first K points and prints the final centroids, one per line with
// four decimals. See `kmeanspp --help` for inputs, outputs and seeding.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

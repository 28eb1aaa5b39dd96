// Package main provides the CLI entrypoint for sealgen.
//
// sealgen emulates sealed sum types in Go. It reads blueprint interfaces
// annotated with //sealgen: directives (or listed in a manifest) and
// generates a closed root interface with a visitor, factories, an optional
// Map/FlatMap functor and exhaustive staged matchers.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sealgen/cmd/sealgen/commands"
	"sealgen/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := commands.NewRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		commands.PrintError(os.Stderr, err)
		logger.Sync()
		os.Exit(1)
	}
}

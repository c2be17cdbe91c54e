// Package main provides the entry point for the difftoml CLI tool.
package main

import (
	"context"
	"os"

	"github.com/configtools/difftoml/cmd/difftoml/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// Cancel the run when interrupted, so a half-written report is all
	// the user loses.
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "prepop",
		Version: Version,
		Usage:   "Serve a three-field store that pre-populates from the URL",
		Commands: []*cli.Command{
			serverCmd,
			validateCmd,
			resolveCmd,
			versionCmd,
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

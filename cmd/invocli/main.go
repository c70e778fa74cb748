package main

import (
	"os"

	"github.com/invocli/invocli/internal/cli"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	os.Exit(cli.New().Run(version, os.Args[1:]))
}

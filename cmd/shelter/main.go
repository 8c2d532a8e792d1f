// Package main provides the shelter CLI.
package main

import (
	"os"

	"github.com/mesh-intelligence/shelter/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

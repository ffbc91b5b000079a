// Package main provides the jsonremap CLI: it reads an input JSON
// document and a mapping file, applies the mapping, and writes the
// transformed document.
package main

import (
	"os"

	"jsonremap/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}

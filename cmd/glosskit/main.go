// Command glosskit is a toolkit for WRIML linguistic corpora: parsing,
// minimal-pair and gloss-variant clustering, token search, and export.
package main

import (
	"github.com/glosskit/glosskit-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}

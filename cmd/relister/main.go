// Package main is the entry point for relister.
package main

import (
	"github.com/calegrey/relister/cmd/relister/cmd"
)

func main() {
	cmd.Execute()
}

// Package main is the entry point for the snare CLI.
package main

import (
	_ "go.uber.org/automaxprocs"

	"snare.dev/pkg/snare/cmd"
)

func main() {
	cmd.Execute()
}

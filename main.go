// Package main is the entry point for the pathenum CLI.
package main

import "pathenum.dev/pkg/pathenum/cmd"

func main() {
	cmd.Execute()
}

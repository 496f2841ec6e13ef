// main package for rsparam command-line tool
// Package main is the entry point for the rsparam CLI.
package main

import "rsparam.dev/pkg/rsparam/cmd"

func main() {
	cmd.Execute()
}

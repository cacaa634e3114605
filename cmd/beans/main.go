// Package main provides the beans CLI.
package main

import "github.com/mesh-intelligence/databeans/internal/cli"

func main() {
	cli.Execute()
}

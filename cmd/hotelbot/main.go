// Package main provides the entry point for the hotelbot CLI.
package main

import "github.com/raphaelgruber/hotelbot-go/internal/cli"

func main() {
	cli.Execute()
}

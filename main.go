package main

import "github.com/airwave-cli/airwave/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/roach88/arraykit/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/courtgrid/courtgrid/internal/cli"

func main() {
	cli.Execute()
}

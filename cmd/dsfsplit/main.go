package main

import "github.com/shinkarenko/dsf-toolkit/internal/cli"

func main() {
	cli.Execute()
}

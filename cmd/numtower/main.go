package main

import (
	"os"

	"github.com/funvibe/numtower/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout))
}

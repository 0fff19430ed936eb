package main

import (
	"os"

	"github.com/arthur-debert/temple/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], cli.StdStreams()))
}

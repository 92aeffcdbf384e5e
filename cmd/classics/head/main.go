package main

import (
	"os"

	"github.com/midbel/classics/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewHead(nil)))
}

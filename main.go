package main

import (
	"os"

	"github.com/sigma-db/napi/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

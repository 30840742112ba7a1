package main

import (
	"os"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

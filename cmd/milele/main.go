package main

import (
	"os"

	"github.com/milele-cleaning/milele/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

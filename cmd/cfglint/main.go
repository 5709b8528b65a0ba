package main

import (
	"os"

	"github.com/xgx-io/xgx-cause/cmd/cfglint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

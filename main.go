package main

import (
	"os"

	"github.com/NetroxTTV/NetroxTTV.github.io/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

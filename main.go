package main

import (
	"os"

	"github.com/mongle/monglectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

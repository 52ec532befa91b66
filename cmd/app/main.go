package main

import (
	"os"

	"github.com/goowebia/hay-paso/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}

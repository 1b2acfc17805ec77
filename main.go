package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/ctenv/cmd"
	"github.com/PolarWolf314/ctenv/internal/ui"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("error:")+" "+err.Error())
		os.Exit(1)
	}
}

// Package main is the entry point for the kael CLI.
package main

import (
	"fmt"
	"os"

	"github.com/pabloism0x/kael/cmd/kael/commands"
	"github.com/pabloism0x/kael/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(errors.ExitUser)
}

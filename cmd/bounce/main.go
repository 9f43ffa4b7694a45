// Command bounce generates datasets of constrained potential curves.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/bounce/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

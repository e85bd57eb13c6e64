// Command ps1 prints the interactive shell prompt.
package main

import (
	"os"

	"github.com/kilupskalvis/ps1/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

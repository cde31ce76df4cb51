// Command uselint lints using directive dumps.
package main

import (
	"os"

	"github.com/leapstack-labs/uselint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Command fleettco compares the total cost of ownership of a combustion fleet with an
// electric one.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/fleettco/internal/cli"
	"github.com/rshade/fleettco/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.Info())
	return root.Execute()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

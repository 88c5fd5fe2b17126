// Command queens solves the N-Queens puzzle from the terminal and can
// serve solver sessions over HTTP.
//
// Usage:
//
//	queens solve --size 8
//	queens solve --size 6 --count 4 --keep-history
//	queens serve --config queens.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "queens",
		Short:         "N-Queens solver with session-scoped solution history",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(), newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

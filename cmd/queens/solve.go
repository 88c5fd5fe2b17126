package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/queenslogic/internal/render"
	"github.com/gitrdm/queenslogic/pkg/queens"
)

func newSolveCmd() *cobra.Command {
	var (
		size        int
		count       int
		keepHistory bool
		ascii       bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find one or more N-Queens solutions",
		Long: `Find solutions for an N×N board.

By default one search runs and prints the first solution. With --count
above 1 the session keeps its history and enumerates distinct solutions
until the requested count or the search tree is exhausted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			var opts []queens.Option
			if keepHistory || count > 1 {
				opts = append(opts,
					queens.WithPersistentHistory(),
					queens.WithSearchPastDuplicates(),
				)
			}
			session := queens.NewSession(opts...)

			for i := 0; i < count; i++ {
				sol, err := session.Next(cmd.Context(), size)
				if errors.Is(err, queens.ErrNoSolutionFound) && i > 0 {
					cmd.Printf("No further solutions; %d found in total.\n", i)
					return nil
				}
				if err != nil {
					return err
				}

				if count > 1 {
					cmd.Printf("Solution %d:\n", i+1)
				}
				if ascii {
					cmd.Print(render.Text(sol, size))
				} else {
					cmd.Print(render.Styled(sol, size))
				}
				cmd.Println(sol)
				cmd.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 8, "board size")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of distinct solutions to find")
	cmd.Flags().BoolVar(&keepHistory, "keep-history", false,
		"keep the solution history across searches even for a single solution")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "render the plain Q/X grid instead of the styled board")
	return cmd
}

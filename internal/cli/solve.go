package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"puzzlebox/internal/maze"
	"puzzlebox/internal/mazefile"
	"puzzlebox/internal/render"
	"puzzlebox/internal/solver"
)

func readResult(path string, helix, nubs int) (*maze.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	mf, err := mazefile.Read(f)
	if err != nil {
		return nil, err
	}
	exitX := mf.ExitX
	if !mf.HasExit {
		exitX = 0
	}
	return maze.ResultFromGrid(mf.Grid(helix, nubs), exitX), nil
}

func newSolveCmd() *cobra.Command {
	var helix, nubs int
	var showMaze bool

	cmd := &cobra.Command{
		Use:   "solve <maze-file>",
		Short: "Solve a maze file and print the path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := readResult(args[0], helix, nubs)
			if err != nil {
				return err
			}
			sol, err := solver.Solve(res)
			if err != nil {
				return err
			}
			letters := make([]byte, len(sol.Path))
			for i, c := range sol.Path {
				letters[i] = c.Letter
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path length %d, %d reachable cells\n", len(sol.Path), sol.ReachableCount)
			fmt.Fprintf(out, "moves: %s\n", letters)
			if showMaze {
				fmt.Fprint(out, render.Text(res, render.TextOptions{Solution: sol, ShowInvalid: true}))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&helix, "helix", 0, "helical seam pitch of the stored maze")
	cmd.Flags().IntVar(&nubs, "nubs", 1, "radial copies of the stored maze")
	cmd.Flags().BoolVar(&showMaze, "show", false, "print the maze with the solution overlaid")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"puzzlebox/internal/render"
	"puzzlebox/internal/solver"
)

func newViewCmd() *cobra.Command {
	var helix, nubs int
	var ascii, showInvalid, withSolution bool

	cmd := &cobra.Command{
		Use:   "view <maze-file>",
		Short: "Print a maze file as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := readResult(args[0], helix, nubs)
			if err != nil {
				return err
			}
			opts := render.TextOptions{ShowInvalid: showInvalid}
			if withSolution {
				sol, err := solver.Solve(res)
				if err != nil {
					return err
				}
				opts.Solution = sol
			}
			out := cmd.OutOrStdout()
			if ascii {
				fmt.Fprint(out, render.Text(res, opts))
			} else {
				fmt.Fprint(out, render.Unicode(res, opts))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&helix, "helix", 0, "helical seam pitch of the stored maze")
	cmd.Flags().IntVar(&nubs, "nubs", 1, "radial copies of the stored maze")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "use plain ASCII walls instead of box drawing")
	cmd.Flags().BoolVar(&showInvalid, "show-invalid", false, "shade out-of-span cells")
	cmd.Flags().BoolVar(&withSolution, "solution", false, "overlay the solution path")
	return cmd
}

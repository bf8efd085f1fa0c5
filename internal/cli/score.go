package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"puzzlebox/internal/score"
)

func newScoreCmd() *cobra.Command {
	var helix, nubs int
	var weightSpec string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "score <maze-file>",
		Short: "Compute structural metrics and the ranking score of a maze file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := readResult(args[0], helix, nubs)
			if err != nil {
				return err
			}
			weights, err := score.ParseWeights(weightSpec)
			if err != nil {
				return err
			}
			m := score.Analyze(res.Grid)
			s := m.Score(weights)

			out := cmd.OutOrStdout()
			if asJSON {
				payload := struct {
					score.Metrics
					Score   float64       `json:"score"`
					Weights score.Weights `json:"weights_used"`
				}{m, s, weights}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			}
			fmt.Fprintf(out, "maze %dx%d\n", m.Width, m.Height)
			fmt.Fprintf(out, "usable: %d invalid: %d largest component: %d unreachable: %d\n",
				m.UsableCells, m.InvalidCells, m.LargestComponent, m.UnreachableCells)
			fmt.Fprintf(out, "dead ends: %d branching: %d avg degree: %.2f\n",
				m.DeadEnds, m.BranchingCells, m.AvgDegree)
			fmt.Fprintf(out, "score: %.3f\n", s)
			return nil
		},
	}
	cmd.Flags().IntVar(&helix, "helix", 0, "helical seam pitch of the stored maze")
	cmd.Flags().IntVar(&nubs, "nubs", 1, "radial copies of the stored maze")
	cmd.Flags().StringVar(&weightSpec, "weights", "", "weight overrides, e.g. connected=3,dead_end=-2")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit metrics and score as JSON")
	return cmd
}

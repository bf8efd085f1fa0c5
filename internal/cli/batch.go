package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"puzzlebox/internal/batch"
	"puzzlebox/internal/score"
)

func newBatchCmd() *cobra.Command {
	var flags mazeFlags
	var count, keep, workers int
	var weightSpec, bestOut string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate many candidate mazes and keep the best",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			weights, err := score.ParseWeights(weightSpec)
			if err != nil {
				return err
			}
			baseSeed := flags.seed
			if baseSeed == 0 {
				baseSeed = randomSeed()
			}
			leaders, stats, err := batch.Run(batch.Options{
				Config:   flags.config(),
				Weights:  weights,
				Count:    count,
				Keep:     keep,
				Workers:  workers,
				BaseSeed: baseSeed,
			}, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "evaluated %d candidates, rejected %d\n", stats.Generated, stats.Rejected)
			for i, c := range leaders.Entries() {
				fmt.Fprintf(out, "#%d seed=%d score=%.3f quality=%.3f total=%.3f dead_ends=%d branching=%d\n",
					i+1, c.Seed, c.Score, c.Quality, c.Total(), c.Metrics.DeadEnds, c.Metrics.BranchingCells)
			}
			if bestOut != "" && len(leaders.Entries()) > 0 {
				best := leaders.Entries()[0]
				if err := writeMazeFile(bestOut, best.Result, false); err != nil {
					return err
				}
				log.Info().Str("path", bestOut).Int64("seed", best.Seed).Msg("best maze written")
			}
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().IntVar(&count, "count", 100, "candidates to evaluate")
	cmd.Flags().IntVar(&keep, "keep", 3, "leaderboard size")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel evaluations (0 = all CPUs)")
	cmd.Flags().StringVar(&weightSpec, "weights", "", "weight overrides, e.g. connected=3,dead_end=-2")
	cmd.Flags().StringVar(&bestOut, "best", "", "write the top maze file here")
	return cmd
}

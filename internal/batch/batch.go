// Package batch searches for high-scoring mazes by generating, solving, and
// scoring many independent candidates in parallel.
package batch

import (
	"runtime"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"puzzlebox/internal/maze"
	"puzzlebox/internal/score"
	"puzzlebox/internal/solver"
)

// Candidate is one accepted maze with its ranking signals.
type Candidate struct {
	Seed    int64
	Score   float64
	Quality float64
	Metrics score.Metrics
	Result  *maze.Result
}

// Total is the combined ranking value candidates are ordered by.
func (c Candidate) Total() float64 { return c.Score + c.Quality }

// Leaderboard keeps the top-k candidates by Total.
type Leaderboard struct {
	keep    int
	entries []Candidate
}

// NewLeaderboard keeps the best k candidates.
func NewLeaderboard(k int) *Leaderboard {
	if k < 1 {
		k = 1
	}
	return &Leaderboard{keep: k}
}

// Add inserts a candidate, dropping the weakest beyond the keep count.
func (l *Leaderboard) Add(c Candidate) {
	l.entries = append(l.entries, c)
	sort.SliceStable(l.entries, func(i, j int) bool {
		if l.entries[i].Total() != l.entries[j].Total() {
			return l.entries[i].Total() > l.entries[j].Total()
		}
		// Ties break by seed so concurrent runs stay reproducible.
		return l.entries[i].Seed < l.entries[j].Seed
	})
	if len(l.entries) > l.keep {
		l.entries = l.entries[:l.keep]
	}
}

// Entries returns the kept candidates, best first.
func (l *Leaderboard) Entries() []Candidate { return l.entries }

// Options configures a batch run. Candidate i uses seed BaseSeed+i, so a run
// is reproducible end to end.
type Options struct {
	Config   maze.Config
	Weights  score.Weights
	Count    int
	Keep     int
	Workers  int
	BaseSeed int64
}

// Stats summarizes a finished run.
type Stats struct {
	Generated int
	Rejected  int
}

// Run evaluates Count candidates on a bounded worker pool and returns the
// leaderboard of accepted mazes. Candidates that fail to solve or leave
// unreachable cells are rejected, matching the acceptance rule a physical
// part must meet.
func Run(opts Options, log zerolog.Logger) (*Leaderboard, Stats, error) {
	if _, err := opts.Config.Layout(); err != nil {
		return nil, Stats{}, err
	}
	if opts.Count < 1 {
		opts.Count = 1
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	leaders := NewLeaderboard(opts.Keep)
	var stats Stats
	var mu sync.Mutex

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := 0; i < opts.Count; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			cfg := opts.Config
			cfg.Seed = opts.BaseSeed + int64(i)
			cand, err := evaluate(cfg, opts.Weights, log)

			mu.Lock()
			defer mu.Unlock()
			stats.Generated++
			if err != nil {
				stats.Rejected++
				log.Debug().Err(err).Int64("seed", cfg.Seed).Msg("candidate rejected")
				return
			}
			leaders.Add(cand)
		}(i)
	}
	wg.Wait()

	log.Info().
		Int("generated", stats.Generated).
		Int("rejected", stats.Rejected).
		Int("kept", len(leaders.Entries())).
		Msg("batch complete")
	return leaders, stats, nil
}

func evaluate(cfg maze.Config, w score.Weights, log zerolog.Logger) (Candidate, error) {
	res, err := maze.Generate(cfg, log)
	if err != nil {
		return Candidate{}, err
	}
	sol, err := solver.Solve(res)
	if err != nil {
		return Candidate{}, err
	}
	// Score the replicated grid: that is the structure the printed part has.
	m := score.Analyze(res.Viz)
	if m.UnreachableCells > 0 {
		return Candidate{}, &solver.DefectError{Reason: "orphaned cells outside the main component"}
	}
	return Candidate{
		Seed:    cfg.Seed,
		Score:   m.Score(w),
		Quality: score.PathQuality(sol),
		Metrics: m,
		Result:  res,
	}, nil
}

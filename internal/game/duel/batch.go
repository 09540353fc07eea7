package duel

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/monbattle/internal/game/combat"
	"github.com/udisondev/monbattle/internal/game/encounter"
)

// BatchConfig controls RunBatch.
type BatchConfig struct {
	Duels    int
	Workers  int
	MaxTurns int
	Seed     uint64
}

// SpeciesRecord aggregates results per species.
type SpeciesRecord struct {
	Wins   int
	Losses int
	Draws  int
}

// BatchReport summarizes many simulated duels.
type BatchReport struct {
	Duels     int
	Turns     int
	Timeouts  int
	Stalls    int
	BySpecies map[string]*SpeciesRecord
}

// AverageTurns returns the mean duel length.
func (r *BatchReport) AverageTurns() float64 {
	if r.Duels == 0 {
		return 0
	}
	return float64(r.Turns) / float64(r.Duels)
}

func (r *BatchReport) record(name string) *SpeciesRecord {
	rec, ok := r.BySpecies[name]
	if !ok {
		rec = &SpeciesRecord{}
		r.BySpecies[name] = rec
	}
	return rec
}

// RunBatch plays cfg.Duels duels between combatants drawn from pool, using up to
// cfg.Workers goroutines. Duel i is seeded from its index and cfg.Seed, so a batch
// is reproducible regardless of scheduling.
func RunBatch(ctx context.Context, cfg BatchConfig, pool *encounter.Pool, resolver *combat.Resolver) (*BatchReport, error) {
	report := &BatchReport{BySpecies: make(map[string]*SpeciesRecord)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))

	for i := range cfg.Duels {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src := combat.NewSource(combat.SeedFromID(fmt.Sprintf("duel-%d", i)) ^ cfg.Seed)

			a, err := pool.Generate(src)
			if err != nil {
				return fmt.Errorf("duel %d: generating side A: %w", i, err)
			}
			b, err := pool.Generate(src)
			if err != nil {
				return fmt.Errorf("duel %d: generating side B: %w", i, err)
			}

			out, err := New(resolver, a, b, cfg.MaxTurns).Run(src)
			if err != nil {
				return fmt.Errorf("duel %d: %w", i, err)
			}

			mu.Lock()
			defer mu.Unlock()
			report.Duels++
			report.Turns += out.Turns
			recA, recB := report.record(a.Name()), report.record(b.Name())
			switch out.Result {
			case ResultSideAWin:
				recA.Wins++
				recB.Losses++
			case ResultSideBWin:
				recB.Wins++
				recA.Losses++
			case ResultTimeout:
				report.Timeouts++
				recA.Draws++
				recB.Draws++
			case ResultStalled:
				report.Stalls++
				recA.Draws++
				recB.Draws++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

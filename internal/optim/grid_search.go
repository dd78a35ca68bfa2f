// Package optim searches the sampler's parameter space for extreme metric values.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/ijustbsd/pogruzhatel/internal/harmonic"
	"github.com/ijustbsd/pogruzhatel/internal/metrics"
)

var (
	ErrEmptyGrid     = errors.New("optim: empty search grid")
	ErrUnknownMetric = errors.New("optim: unknown metric")
)

// Candidate is one evaluated point of the grid.
type Candidate struct {
	Harmonics int
	Omega     float64
	Metrics   map[string]float64
}

// GridSearch evaluates every (harmonics, omega) pair concurrently.
type GridSearch struct {
	counts []int
	omegas []float64
	// Build returns a fresh sampler per candidate. Defaults to harmonic.NewSampler.
	Build func() *harmonic.Sampler
}

func NewGridSearch(counts []int, omegas []float64) *GridSearch {
	return &GridSearch{counts: counts, omegas: omegas, Build: harmonic.NewSampler}
}

func (g *GridSearch) Size() int { return len(g.counts) * len(g.omegas) }

// Evaluate samples every candidate and returns them in grid order,
// harmonic count major.
func (g *GridSearch) Evaluate(ctx context.Context) ([]Candidate, error) {
	n := g.Size()
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	results := make([]Candidate, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i, count := range g.counts {
		for j, omega := range g.omegas {
			wg.Add(1)
			go func(idx, count int, omega float64) {
				defer wg.Done()
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					return
				}

				s := g.Build()
				s.Omega = omega
				res, err := s.Sample(count)
				if err != nil {
					errs[idx] = fmt.Errorf("harmonics %d, omega %g: %w", count, omega, err)
					return
				}
				results[idx] = Candidate{
					Harmonics: count,
					Omega:     omega,
					Metrics:   metrics.Evaluate(res.Superposed),
				}
			}(i*len(g.omegas)+j, count, omega)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// Search returns the candidate with the largest (or smallest) metric value.
func (g *GridSearch) Search(ctx context.Context, metricName string, maximize bool) (Candidate, error) {
	all, err := g.Evaluate(ctx)
	if err != nil {
		return Candidate{}, err
	}
	return Best(all, metricName, maximize)
}

// Best picks the extreme candidate from already evaluated ones.
func Best(all []Candidate, metricName string, maximize bool) (Candidate, error) {
	if len(all) == 0 {
		return Candidate{}, ErrEmptyGrid
	}
	best := math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}
	var bestCandidate Candidate
	found := false
	for _, c := range all {
		val, ok := c.Metrics[metricName]
		if !ok {
			return Candidate{}, fmt.Errorf("%w: %s", ErrUnknownMetric, metricName)
		}
		if !found || (maximize && val > best) || (!maximize && val < best) {
			best, bestCandidate, found = val, c, true
		}
	}
	return bestCandidate, nil
}

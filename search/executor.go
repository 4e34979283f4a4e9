package search

import (
	"log/slog"
	"math/rand/v2"

	"github.com/poiesic/bayesearch/core"
)

// Executor runs search passes over the areas of one region.
type Executor struct {
	grids  []core.Grid
	rng    *rand.Rand
	logger *slog.Logger
}

// Option configures an Executor.
type Option func(*Executor) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewExecutor creates an executor for the given area grids.
// grids[i] is the grid of area i+1.
func NewExecutor(grids []core.Grid, rng *rand.Rand, opts ...Option) (*Executor, error) {
	if len(grids) == 0 {
		return nil, ErrGridsRequired
	}
	if rng == nil {
		return nil, ErrRandRequired
	}

	e := &Executor{
		grids:  grids,
		rng:    rng,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Grid returns the grid of an area.
func (e *Executor) Grid(area core.AreaID) (core.Grid, error) {
	if err := core.ValidateAreaID(area, len(e.grids)); err != nil {
		return core.Grid{}, err
	}
	return e.grids[area.Index()], nil
}

// Execute searches one area once. See ExecuteWithMonitor.
func (e *Executor) Execute(area core.AreaID, effectiveness float64, history *History, target core.Target) (*core.SearchResult, error) {
	return e.ExecuteWithMonitor(area, effectiveness, history, target, nil)
}

// ExecuteWithMonitor searches one area once, reporting each stage to monitor.
// The pass examines floor(k*effectiveness) of the k coordinates not yet in
// history, chosen uniformly at random, and records them into history.
func (e *Executor) ExecuteWithMonitor(area core.AreaID, effectiveness float64, history *History, target core.Target, monitor SearchMonitor) (*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	grid, err := e.Grid(area)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return nil, ErrHistoryRequired
	}
	if err := core.ValidateEffectiveness(effectiveness); err != nil {
		return nil, err
	}

	monitor.Start(area, effectiveness)

	// 1. Candidates are the coordinates not searched before
	candidates := make([]core.Coord, 0, grid.Cells())
	for _, c := range grid.Coords() {
		searched, err := history.AlreadySearched(area, c)
		if err != nil {
			return nil, err
		}
		if !searched {
			candidates = append(candidates, c)
		}
	}
	e.logger.Debug("search candidates", "area", area, "remaining", len(candidates))
	monitor.AfterCandidates(area, len(candidates))

	// 2. Shuffle and keep the covered prefix
	e.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	examined := candidates[:CoverageCount(len(candidates), effectiveness)]

	// 3. Record coverage
	if _, err := history.Record(area, examined); err != nil {
		return nil, err
	}
	monitor.AfterCoverage(area, examined)

	// 4. Detect
	result := &core.SearchResult{
		Area:     area,
		Outcome:  core.NotFound,
		Searched: examined,
	}
	if target.Area == area {
		for _, c := range examined {
			if c == target.Local {
				result.Outcome = core.Found
				monitor.Hit(target)
				break
			}
		}
	}

	e.logger.Debug("search pass complete",
		"area", area,
		"effectiveness", effectiveness,
		"examined", len(examined),
		"outcome", result.Outcome.String())
	monitor.Finish(result)

	return result, nil
}

// CoverageCount returns how many of k remaining candidates a pass of the
// given effectiveness examines: floor(k*effectiveness).
func CoverageCount(k int, effectiveness float64) int {
	n := int(float64(k) * effectiveness)
	if n > k {
		n = k
	}
	if n < 0 {
		n = 0
	}
	return n
}

// CombinedEffectiveness returns the fraction of grid examined by the given
// passes, counting each coordinate once.
func CombinedEffectiveness(grid core.Grid, results ...*core.SearchResult) float64 {
	distinct := make(map[core.Coord]struct{})
	for _, r := range results {
		if r == nil {
			continue
		}
		for _, c := range r.Searched {
			distinct[c] = struct{}{}
		}
	}
	if grid.Cells() == 0 {
		return 0
	}
	return float64(len(distinct)) / float64(grid.Cells())
}

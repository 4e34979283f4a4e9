package simulate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/bayesearch"
	"github.com/poiesic/bayesearch/core"
	"github.com/poiesic/bayesearch/scenario"
	"github.com/poiesic/bayesearch/storage"
)

const (
	// DefaultMaxRounds caps the rounds played in one trial.
	DefaultMaxRounds = 50

	seedStride = 0x9e3779b97f4a7c15
)

// Runner plays campaigns of independent games on a worker pool.
type Runner struct {
	repo           storage.TrialRepository
	pool           *ants.Pool
	progress       io.Writer
	reportInterval int
	logger         *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner) error

// WithPoolSize sets the worker pool size for concurrent trials.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Runner) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if r.pool != nil {
			r.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithProgress reports progress to w every interval trials.
func WithProgress(w io.Writer, interval int) Option {
	return func(r *Runner) error {
		r.progress = w
		r.reportInterval = interval
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRunner creates a campaign runner writing outcomes to repo.
func NewRunner(repo storage.TrialRepository, opts ...Option) (*Runner, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		repo:   repo,
		pool:   pool,
		logger: slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}
	return r, nil
}

// Release releases the worker pool.
// The runner should not be used after calling Release.
func (r *Runner) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}

// Campaign identifies one run of a policy over a scenario.
type Campaign struct {
	ID        core.ID
	Policy    string
	Trials    int
	MaxRounds int
}

// CampaignID derives a stable id from everything that shapes a campaign.
func CampaignID(cfg *scenario.Config, policy string, trials, maxRounds int) core.ID {
	return core.IDFromContent(fmt.Sprintf("%s|policy=%s|trials=%d|rounds=%d",
		cfg.Fingerprint(), policy, trials, maxRounds))
}

// Run plays trials games of cfg under policy, each capped at maxRounds
// rounds, and summarizes the outcomes. A rerun of the same campaign replaces
// its earlier outcomes.
func (r *Runner) Run(ctx context.Context, cfg *scenario.Config, policy Policy, trials, maxRounds int) (*Summary, error) {
	if cfg == nil {
		cfg = scenario.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, fmt.Errorf("%w: nil policy", ErrUnknownPolicy)
	}
	if trials < 1 || maxRounds < 1 {
		return nil, fmt.Errorf("%w: %d trials of at most %d rounds", ErrInvalidCampaign, trials, maxRounds)
	}

	campaign := Campaign{
		ID:        CampaignID(cfg, policy.Name(), trials, maxRounds),
		Policy:    policy.Name(),
		Trials:    trials,
		MaxRounds: maxRounds,
	}
	if err := r.repo.DeleteCampaign(ctx, campaign.ID); err != nil {
		return nil, err
	}

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = uint64(time.Now().UnixNano())
	}

	var tracker *ProgressTracker
	if r.progress != nil {
		tracker = NewProgressTracker(r.progress, trials, r.reportInterval)
		tracker.Start()
	}

	r.logger.Info("campaign started", "campaign", campaign.ID, "policy", campaign.Policy,
		"trials", trials, "max_rounds", maxRounds)
	start := time.Now()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for trial := 0; trial < trials; trial++ {
		trialCfg := *cfg
		trialCfg.Seed = baseSeed + uint64(trial+1)*seedStride

		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}

			outcome, err := r.playTrial(&trialCfg, policy, maxRounds)
			if err != nil {
				fail(fmt.Errorf("trial %d: %w", trial, err))
				return
			}
			outcome.Campaign = campaign.ID
			outcome.Trial = trial

			if err := r.repo.AddTrials(ctx, outcome); err != nil {
				fail(fmt.Errorf("trial %d: %w", trial, err))
				return
			}
			if tracker != nil {
				tracker.Complete(outcome.Found)
			}
		})
		if err != nil {
			wg.Done()
			fail(err)
			break
		}
	}
	wg.Wait()

	if tracker != nil {
		tracker.Finish()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		r.logger.Error("campaign failed", "campaign", campaign.ID, "err", firstErr)
		return nil, firstErr
	}

	outcomes, err := r.repo.GetTrials(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(campaign, cfg.NumAreas(), outcomes)
	summary.Elapsed = time.Since(start)

	r.logger.Info("campaign finished", "campaign", campaign.ID, "found", summary.Found,
		"find_rate", summary.FindRate(), "elapsed", summary.Elapsed)
	return summary, nil
}

// playTrial plays one game until it resolves or runs out of rounds.
func (r *Runner) playTrial(cfg *scenario.Config, policy Policy, maxRounds int) (*core.TrialOutcome, error) {
	game, err := bayesearch.NewGame(cfg, bayesearch.WithLogger(r.logger))
	if err != nil {
		return nil, err
	}

	outcome := &core.TrialOutcome{}
	for game.Round() <= maxRounds {
		report, err := game.Play(policy.Choose(game))
		if err != nil {
			return nil, err
		}
		outcome.Rounds = report.Round
		if report.Found {
			outcome.Found = true
			outcome.Area = report.Target.Area
			break
		}
	}
	outcome.Searched = game.History().Total()
	return outcome, nil
}

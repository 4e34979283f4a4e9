// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bayesearch

import (
	"cmp"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/poiesic/bayesearch/belief"
	"github.com/poiesic/bayesearch/core"
	"github.com/poiesic/bayesearch/scenario"
	"github.com/poiesic/bayesearch/search"
)

// Phase is the position of a game in its round cycle.
type Phase int

const (
	// PhaseAwaitingChoice waits for the next action.
	PhaseAwaitingChoice Phase = iota
	// PhaseExecuting runs the round's search passes.
	PhaseExecuting
	// PhaseRevising updates the belief state.
	PhaseRevising
	// PhaseResolved is terminal: the target was found.
	PhaseResolved
	// PhaseQuit is terminal: the player gave up.
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingChoice:
		return "awaiting choice"
	case PhaseExecuting:
		return "executing"
	case PhaseRevising:
		return "revising"
	case PhaseResolved:
		return "resolved"
	case PhaseQuit:
		return "quit"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Terminal reports whether no further rounds can be played.
func (p Phase) Terminal() bool {
	return p == PhaseResolved || p == PhaseQuit
}

// GameState is everything owned by one game: the hidden target, the search
// history, the belief state and the effectiveness of the last round.
type GameState struct {
	Target        core.Target
	History       *search.History
	Belief        *belief.State
	Effectiveness []float64
	Round         int
	Phase         Phase
}

// RoundReport describes what happened when an action was played.
type RoundReport struct {
	Round         int
	Action        Action
	Results       []*core.SearchResult
	Effectiveness []float64 // per area, after zeroing and recombination
	Priors        []float64 // after revision
	Found         bool
	Target        core.Target // set when Found
}

// Game runs rounds of a search over one scenario.
// A Game is not safe for concurrent use.
type Game struct {
	config   *scenario.Config
	grids    []core.Grid
	rng      *rand.Rand
	executor *search.Executor
	sampler  *search.Sampler
	menu     Menu
	monitor  search.SearchMonitor
	logger   *slog.Logger
	state    GameState
}

// GameOption configures a Game.
type GameOption func(*gameOptions)

type gameOptions struct {
	rng     *rand.Rand
	monitor search.SearchMonitor
	logger  *slog.Logger
}

// WithRand injects the random source. Default is seeded from the scenario.
func WithRand(rng *rand.Rand) GameOption {
	return func(o *gameOptions) {
		o.rng = rng
	}
}

// WithMonitor observes every search pass.
func WithMonitor(monitor search.SearchMonitor) GameOption {
	return func(o *gameOptions) {
		o.monitor = monitor
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) GameOption {
	return func(o *gameOptions) {
		o.logger = logger
	}
}

// NewGame validates cfg, hides a target and returns a game awaiting its first choice.
func NewGame(cfg *scenario.Config, opts ...GameOption) (*Game, error) {
	if cfg == nil {
		cfg = scenario.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Apply options
	options := &gameOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.rng == nil {
		options.rng = search.NewRand(cfg.Seed)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	grids, err := cfg.Grids()
	if err != nil {
		return nil, err
	}

	rule, err := belief.ParseRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	beliefState, err := belief.New(cfg.Priors(), belief.WithRule(rule))
	if err != nil {
		return nil, err
	}

	executor, err := search.NewExecutor(grids, options.rng, search.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	sampler, err := search.NewSampler(options.rng, cfg.MinEffectiveness, cfg.MaxEffectiveness)
	if err != nil {
		return nil, err
	}

	g := &Game{
		config:   cfg,
		grids:    grids,
		rng:      options.rng,
		executor: executor,
		sampler:  sampler,
		menu:     NewMenu(len(grids)),
		monitor:  options.monitor,
		logger:   options.logger,
		state: GameState{
			History: search.NewHistory(len(grids)),
			Belief:  beliefState,
		},
	}

	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset returns the game to its initial state with a freshly placed target.
func (g *Game) reset() error {
	target, err := search.PlaceTarget(g.rng, g.grids)
	if err != nil {
		return err
	}

	g.state.History.Reset()
	g.state.Belief.Reset()
	g.state.Target = target
	g.state.Effectiveness = make([]float64, len(g.grids))
	g.state.Round = 1
	g.state.Phase = PhaseAwaitingChoice

	g.logger.Debug("target placed", "area", target.Area, "local", target.Local.String())
	return nil
}

// Config returns the scenario the game was built from.
func (g *Game) Config() *scenario.Config {
	return g.config
}

// Menu returns the closed action set for this game.
func (g *Game) Menu() Menu {
	return g.menu
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Round returns the number of the round about to be played, starting at 1.
func (g *Game) Round() int {
	return g.state.Round
}

// Target returns the hidden target.
func (g *Game) Target() core.Target {
	return g.state.Target
}

// GlobalTarget returns the hidden target in chart coordinates.
func (g *Game) GlobalTarget() core.Coord {
	return g.state.Target.Global(g.config.Areas[g.state.Target.Area.Index()].Rect)
}

// Priors returns a copy of the current area probabilities.
func (g *Game) Priors() []float64 {
	return g.state.Belief.Priors()
}

// Effectiveness returns a copy of the last round's per-area effectiveness.
func (g *Game) Effectiveness() []float64 {
	return append([]float64(nil), g.state.Effectiveness...)
}

// History returns the search history. Callers must not modify it.
func (g *Game) History() *search.History {
	return g.state.History
}

// PlayChoice parses a typed menu choice and plays it. An unrecognized
// choice returns core.ErrUnrecognizedAction and leaves the game untouched.
func (g *Game) PlayChoice(choice string) (*RoundReport, error) {
	action, err := g.menu.Parse(choice)
	if err != nil {
		return nil, err
	}
	return g.Play(action)
}

// Play runs one action.
//
// Search actions sample a fresh effectiveness for every area, run their
// passes, zero the effectiveness of areas not searched, revise the belief
// state and then either resolve the game or wait for the next choice.
// ActionRestart resets the game; ActionQuit ends it.
func (g *Game) Play(action Action) (*RoundReport, error) {
	if action.Kind == ActionRestart {
		if err := g.Restart(); err != nil {
			return nil, err
		}
		return &RoundReport{Round: g.state.Round, Action: action, Priors: g.Priors()}, nil
	}

	if g.state.Phase != PhaseAwaitingChoice {
		return nil, fmt.Errorf("%w: phase is %s", core.ErrGameOver, g.state.Phase)
	}
	if err := action.validate(len(g.grids)); err != nil {
		return nil, err
	}

	if action.Kind == ActionQuit {
		g.state.Phase = PhaseQuit
		g.logger.Debug("game abandoned", "round", g.state.Round)
		return &RoundReport{Round: g.state.Round, Action: action, Priors: g.Priors()}, nil
	}

	report := &RoundReport{Round: g.state.Round, Action: action}

	// 1. Execute
	g.state.Phase = PhaseExecuting
	sampled := g.sampler.SampleAll(len(g.grids))
	for _, area := range action.Passes() {
		result, err := g.executor.ExecuteWithMonitor(area, sampled[area.Index()],
			g.state.History, g.state.Target, g.monitor)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, result)
	}

	effectiveness := make([]float64, len(g.grids))
	switch action.Kind {
	case ActionSearchTwice:
		area := action.First
		effectiveness[area.Index()] = search.CombinedEffectiveness(g.grids[area.Index()], report.Results...)
	case ActionSearchPair:
		effectiveness[action.First.Index()] = sampled[action.First.Index()]
		effectiveness[action.Second.Index()] = sampled[action.Second.Index()]
	}
	g.state.Effectiveness = effectiveness
	report.Effectiveness = append([]float64(nil), effectiveness...)

	// 2. Revise
	g.state.Phase = PhaseRevising
	if err := g.state.Belief.Revise(effectiveness); err != nil {
		g.logger.Error("belief revision failed", "round", g.state.Round, "err", err)
		return nil, err
	}
	report.Priors = g.Priors()

	// 3. Resolve or loop
	for _, result := range report.Results {
		if result.Found() {
			report.Found = true
			report.Target = g.state.Target
		}
	}
	if report.Found {
		g.state.Phase = PhaseResolved
		g.logger.Debug("target found", "round", g.state.Round, "area", g.state.Target.Area)
		return report, nil
	}

	g.logger.Debug("round complete", "round", g.state.Round, "priors", report.Priors)
	g.state.Round++
	g.state.Phase = PhaseAwaitingChoice
	return report, nil
}

// Restart clears the search history, restores the initial priors and hides
// a new target. It is allowed in any phase.
func (g *Game) Restart() error {
	g.logger.Debug("game restarted", "round", g.state.Round)
	return g.reset()
}

// MostLikely returns areas ordered from highest to lowest current prior.
// Ties keep area order.
func (g *Game) MostLikely() []core.AreaID {
	priors := g.Priors()
	order := make([]core.AreaID, len(priors))
	for i := range order {
		order[i] = core.AreaID(i + 1)
	}
	slices.SortStableFunc(order, func(a, b core.AreaID) int {
		return cmp.Compare(priors[b.Index()], priors[a.Index()])
	})
	return order
}

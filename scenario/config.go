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

package scenario

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/poiesic/bayesearch/belief"
	"github.com/poiesic/bayesearch/core"
	"github.com/poiesic/bayesearch/search"
)

// Area describes one search area of the chart.
type Area struct {
	// Name is a display label. Defaults to the area number when empty.
	Name string `toml:"name"`

	// Rect places the area on the chart; its size defines the local grid.
	Rect core.Rect `toml:"rect"`

	// Prior is the initial probability that the target is in this area.
	Prior float64 `toml:"prior"`
}

// Config holds everything needed to set up a game.
type Config struct {
	// Areas lists the search areas; area i+1 is Areas[i].
	Areas []Area `toml:"areas"`

	// MinEffectiveness and MaxEffectiveness bound the per-round sampled
	// effectiveness of a search pass.
	// Default: 0.2 and 0.9
	MinEffectiveness float64 `toml:"min_effectiveness"`
	MaxEffectiveness float64 `toml:"max_effectiveness"`

	// LastKnown is the last known chart position of the target, shown by renderers.
	LastKnown core.Coord `toml:"last_known"`

	// Rule names the belief revision rule: "literal" or "search-theory".
	// Default: "literal"
	Rule string `toml:"rule"`

	// Seed seeds the random source. Zero means seed from the clock.
	Seed uint64 `toml:"seed"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAreas replaces the search areas.
func WithAreas(areas ...Area) ConfigOption {
	return func(c *Config) {
		c.Areas = append([]Area(nil), areas...)
	}
}

// WithArea appends one search area.
func WithArea(name string, rect core.Rect, prior float64) ConfigOption {
	return func(c *Config) {
		c.Areas = append(c.Areas, Area{Name: name, Rect: rect, Prior: prior})
	}
}

// WithEffectivenessRange sets the sampling bounds for search effectiveness.
func WithEffectivenessRange(min, max float64) ConfigOption {
	return func(c *Config) {
		c.MinEffectiveness = min
		c.MaxEffectiveness = max
	}
}

// WithLastKnown sets the last known chart position.
func WithLastKnown(pos core.Coord) ConfigOption {
	return func(c *Config) {
		c.LastKnown = pos
	}
}

// WithRule sets the belief revision rule by name.
func WithRule(rule string) ConfigOption {
	return func(c *Config) {
		c.Rule = rule
	}
}

// WithSeed sets the random seed.
func WithSeed(seed uint64) ConfigOption {
	return func(c *Config) {
		c.Seed = seed
	}
}

// DefaultConfig returns the Cape Python scenario: three 50×50 areas off the
// coast with priors 0.2, 0.5 and 0.3.
func DefaultConfig() *Config {
	return &Config{
		Areas: []Area{
			{Name: "1", Rect: core.Rect{MinX: 130, MinY: 265, MaxX: 180, MaxY: 315}, Prior: 0.2},
			{Name: "2", Rect: core.Rect{MinX: 80, MinY: 255, MaxX: 130, MaxY: 305}, Prior: 0.5},
			{Name: "3", Rect: core.Rect{MinX: 105, MinY: 205, MaxX: 155, MaxY: 255}, Prior: 0.3},
		},
		MinEffectiveness: search.DefaultMinEffectiveness,
		MaxEffectiveness: search.DefaultMaxEffectiveness,
		LastKnown:        core.Coord{X: 160, Y: 290},
		Rule:             belief.RuleLiteral.String(),
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//   cfg := NewConfig(
//       WithSeed(42),
//       WithEffectivenessRange(0.4, 0.6),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Load reads a TOML scenario file over the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// Parse decodes a TOML scenario over the defaults. Unknown keys are rejected.
func Parse(data string) (*Config, error) {
	var file Config
	md, err := toml.Decode(data, &file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrConfiguration, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", core.ErrConfiguration, strings.Join(keys, ", "))
	}

	cfg := DefaultConfig()
	if md.IsDefined("areas") {
		cfg.Areas = file.Areas
	}
	if md.IsDefined("min_effectiveness") {
		cfg.MinEffectiveness = file.MinEffectiveness
	}
	if md.IsDefined("max_effectiveness") {
		cfg.MaxEffectiveness = file.MaxEffectiveness
	}
	if md.IsDefined("last_known") {
		cfg.LastKnown = file.LastKnown
	}
	if md.IsDefined("rule") {
		cfg.Rule = file.Rule
	}
	if md.IsDefined("seed") {
		cfg.Seed = file.Seed
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable game.
func (c *Config) Validate() error {
	if len(c.Areas) == 0 {
		return fmt.Errorf("%w: %w", core.ErrConfiguration, core.ErrNoAreas)
	}
	for i, area := range c.Areas {
		if _, err := area.Rect.Grid(); err != nil {
			return fmt.Errorf("area %d: %w", i+1, err)
		}
	}
	if err := core.ValidatePriors(c.Priors()); err != nil {
		return err
	}
	if err := core.ValidateEffectivenessRange(c.MinEffectiveness, c.MaxEffectiveness); err != nil {
		return err
	}
	if _, err := belief.ParseRule(c.Rule); err != nil {
		return err
	}
	return nil
}

// NumAreas returns the number of search areas.
func (c *Config) NumAreas() int {
	return len(c.Areas)
}

// Priors returns the configured initial priors in area order.
func (c *Config) Priors() []float64 {
	priors := make([]float64, len(c.Areas))
	for i, area := range c.Areas {
		priors[i] = area.Prior
	}
	return priors
}

// Grids returns the local grid of every area in area order.
func (c *Config) Grids() ([]core.Grid, error) {
	grids := make([]core.Grid, len(c.Areas))
	for i, area := range c.Areas {
		g, err := area.Rect.Grid()
		if err != nil {
			return nil, fmt.Errorf("area %d: %w", i+1, err)
		}
		grids[i] = g
	}
	return grids, nil
}

// AreaName returns the display label of an area.
func (c *Config) AreaName(id core.AreaID) string {
	if err := core.ValidateAreaID(id, len(c.Areas)); err == nil && c.Areas[id.Index()].Name != "" {
		return c.Areas[id.Index()].Name
	}
	return fmt.Sprintf("%d", int(id))
}

// Fingerprint renders the parts of the configuration that determine game
// behaviour, suitable for deriving a stable ID.
func (c *Config) Fingerprint() string {
	var b strings.Builder
	for _, area := range c.Areas {
		fmt.Fprintf(&b, "%d,%d,%d,%d:%g|", area.Rect.MinX, area.Rect.MinY, area.Rect.MaxX, area.Rect.MaxY, area.Prior)
	}
	fmt.Fprintf(&b, "e=%g..%g|rule=%s|seed=%d", c.MinEffectiveness, c.MaxEffectiveness, c.Rule, c.Seed)
	return b.String()
}

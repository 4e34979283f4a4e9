package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/bayesearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.NumAreas())
	assert.Equal(t, []float64{0.2, 0.5, 0.3}, cfg.Priors())
	assert.Equal(t, 0.2, cfg.MinEffectiveness)
	assert.Equal(t, 0.9, cfg.MaxEffectiveness)
	assert.Equal(t, core.Coord{X: 160, Y: 290}, cfg.LastKnown)
	assert.Equal(t, "literal", cfg.Rule)

	grids, err := cfg.Grids()
	require.NoError(t, err)
	for _, g := range grids {
		assert.Equal(t, 50, g.Width())
		assert.Equal(t, 50, g.Height())
	}
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("with custom areas", func(t *testing.T) {
		cfg := NewConfig(WithAreas(
			Area{Name: "a", Rect: core.Rect{MaxX: 10, MaxY: 10}, Prior: 0.7},
			Area{Name: "b", Rect: core.Rect{MinX: 10, MaxX: 20, MaxY: 5}, Prior: 0.3},
		))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 2, cfg.NumAreas())

		grids, err := cfg.Grids()
		require.NoError(t, err)
		assert.Equal(t, 50, grids[1].Cells())
	})

	t.Run("with seed, range and rule", func(t *testing.T) {
		cfg := NewConfig(
			WithSeed(42),
			WithEffectivenessRange(0.4, 0.6),
			WithRule("search-theory"),
			WithLastKnown(core.Coord{X: 1, Y: 2}),
		)
		require.NoError(t, cfg.Validate())
		assert.Equal(t, uint64(42), cfg.Seed)
		assert.Equal(t, 0.4, cfg.MinEffectiveness)
		assert.Equal(t, 0.6, cfg.MaxEffectiveness)
		assert.Equal(t, "search-theory", cfg.Rule)
		assert.Equal(t, core.Coord{X: 1, Y: 2}, cfg.LastKnown)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{
			name:    "no areas",
			cfg:     NewConfig(WithAreas()),
			wantErr: core.ErrNoAreas,
		},
		{
			name: "zero width area",
			cfg: NewConfig(WithAreas(
				Area{Rect: core.Rect{MinX: 5, MaxX: 5, MaxY: 5}, Prior: 1},
			)),
			wantErr: core.ErrInvalidGrid,
		},
		{
			name: "priors not summing to one",
			cfg: NewConfig(WithAreas(
				Area{Rect: core.Rect{MaxX: 5, MaxY: 5}, Prior: 0.5},
				Area{Rect: core.Rect{MaxX: 5, MaxY: 5}, Prior: 0.4},
			)),
			wantErr: core.ErrPriorsSum,
		},
		{
			name:    "inverted effectiveness range",
			cfg:     NewConfig(WithEffectivenessRange(0.9, 0.1)),
			wantErr: core.ErrInvalidEffectivenessRange,
		},
		{
			name:    "unknown rule",
			cfg:     NewConfig(WithRule("guess")),
			wantErr: core.ErrConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, core.ErrConfiguration)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("overrides only defined keys", func(t *testing.T) {
		cfg, err := Parse(`
seed = 7
max_effectiveness = 0.75
`)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), cfg.Seed)
		assert.Equal(t, 0.75, cfg.MaxEffectiveness)
		assert.Equal(t, 0.2, cfg.MinEffectiveness)
		assert.Equal(t, 3, cfg.NumAreas())
	})

	t.Run("replaces areas", func(t *testing.T) {
		cfg, err := Parse(`
last_known = { x = 3, y = 4 }
rule = "search-theory"

[[areas]]
name = "north"
prior = 0.6
rect = { min_x = 0, min_y = 0, max_x = 20, max_y = 20 }

[[areas]]
name = "south"
prior = 0.4
rect = { min_x = 0, min_y = 20, max_x = 20, max_y = 40 }
`)
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 2, cfg.NumAreas())
		assert.Equal(t, "south", cfg.AreaName(2))
		assert.Equal(t, core.Rect{MinX: 0, MinY: 20, MaxX: 20, MaxY: 40}, cfg.Areas[1].Rect)
		assert.Equal(t, core.Coord{X: 3, Y: 4}, cfg.LastKnown)
		assert.Equal(t, "search-theory", cfg.Rule)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := Parse(`colour = "blue"`)
		assert.ErrorIs(t, err, core.ErrConfiguration)
	})

	t.Run("rejects malformed toml", func(t *testing.T) {
		_, err := Parse(`seed = `)
		assert.ErrorIs(t, err, core.ErrConfiguration)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed = 99\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.Seed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestAreaName(t *testing.T) {
	cfg := NewConfig(WithAreas(
		Area{Rect: core.Rect{MaxX: 5, MaxY: 5}, Prior: 1},
	))
	assert.Equal(t, "1", cfg.AreaName(1))
	assert.Equal(t, "7", cfg.AreaName(7))
}

func TestFingerprint(t *testing.T) {
	a := NewConfig(WithSeed(1)).Fingerprint()
	b := NewConfig(WithSeed(1)).Fingerprint()
	c := NewConfig(WithSeed(2)).Fingerprint()

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestWithArea(t *testing.T) {
	cfg := NewConfig(
		WithAreas(),
		WithArea("north", core.Rect{MaxX: 10, MaxY: 10}, 0.75),
		WithArea("south", core.Rect{MinY: 10, MaxX: 10, MaxY: 20}, 0.25),
	)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.NumAreas())
	assert.Equal(t, "south", cfg.AreaName(2))
	assert.Equal(t, []float64{0.75, 0.25}, cfg.Priors())
}

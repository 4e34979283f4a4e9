package search

import (
	"math"
	"math/rand/v2"

	"github.com/poiesic/bayesearch/core"
)

// Triangular draws from the triangular distribution on [low, high) with its
// mode at the midpoint.
func Triangular(rng *rand.Rand, low, high float64) float64 {
	u := rng.Float64()
	c := 0.5
	if u > c {
		u = 1 - u
		c = 1 - c
		low, high = high, low
	}
	return low + (high-low)*math.Sqrt(u*c)
}

// PlaceTarget hides the target. The area is drawn from a symmetric triangular
// distribution over [1, n+1) so middle areas are favoured; the local
// coordinate is uniform over the chosen area's grid.
func PlaceTarget(rng *rand.Rand, grids []core.Grid) (core.Target, error) {
	if rng == nil {
		return core.Target{}, ErrRandRequired
	}
	if len(grids) == 0 {
		return core.Target{}, ErrGridsRequired
	}

	n := len(grids)
	area := core.AreaID(Triangular(rng, 1, float64(n+1)))
	if area < 1 {
		area = 1
	}
	if int(area) > n {
		area = core.AreaID(n)
	}

	grid := grids[area.Index()]
	return core.Target{
		Area: area,
		Local: core.Coord{
			X: rng.IntN(grid.Width()),
			Y: rng.IntN(grid.Height()),
		},
	}, nil
}

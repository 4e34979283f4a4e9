// Package scenario describes the layout of a search: the areas and where they
// sit on the chart, the initial priors, the effectiveness range, the revision
// rule and the random seed.
//
// Configurations are built with functional options over DefaultConfig or
// loaded from TOML:
//
//	seed = 42
//	min_effectiveness = 0.2
//	max_effectiveness = 0.9
//	last_known = { x = 160, y = 290 }
//
//	[[areas]]
//	name = "north"
//	prior = 0.6
//	rect = { min_x = 0, min_y = 0, max_x = 20, max_y = 20 }
//
//	[[areas]]
//	name = "south"
//	prior = 0.4
//	rect = { min_x = 0, min_y = 20, max_x = 20, max_y = 40 }
package scenario

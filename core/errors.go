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

package core

import "errors"

// Configuration errors. These are fatal and surface before any search begins.
var (
	// ErrConfiguration indicates the game could not be set up as described.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvalidGrid indicates a grid with a non-positive width or height.
	ErrInvalidGrid = errors.New("grid dimensions must be positive")

	// ErrNoAreas indicates a configuration without any search areas.
	ErrNoAreas = errors.New("at least one search area is required")

	// ErrInvalidPrior indicates a prior probability outside [0, 1].
	ErrInvalidPrior = errors.New("prior must be within [0, 1]")

	// ErrPriorsSum indicates priors that do not sum to 1.
	ErrPriorsSum = errors.New("priors must sum to 1")

	// ErrInvalidEffectivenessRange indicates a sampling range outside [0, 1] or inverted.
	ErrInvalidEffectivenessRange = errors.New("effectiveness range must satisfy 0 <= min <= max <= 1")
)

// Runtime errors.
var (
	// ErrDegenerateProbability indicates the revision denominator was zero.
	ErrDegenerateProbability = errors.New("degenerate probability distribution")

	// ErrInvalidArea indicates an area id outside 1..N.
	ErrInvalidArea = errors.New("invalid area reference")

	// ErrInvalidEffectiveness indicates an effectiveness value outside [0, 1].
	ErrInvalidEffectiveness = errors.New("effectiveness must be within [0, 1]")

	// ErrUnrecognizedAction indicates a menu choice outside the action set.
	// It is recoverable: the caller should re-prompt.
	ErrUnrecognizedAction = errors.New("unrecognized action")

	// ErrGameOver indicates an action was played after the game ended.
	ErrGameOver = errors.New("game is over")
)

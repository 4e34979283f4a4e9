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

import (
	"fmt"
	"math"
)

// PriorTolerance is the allowed deviation of a prior sum from 1.
const PriorTolerance = 1e-9

// ValidateGridSize validates grid dimensions.
func ValidateGridSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %w: %dx%d", ErrConfiguration, ErrInvalidGrid, width, height)
	}
	return nil
}

// ValidatePriors validates a prior distribution.
//
// Validation rules:
//   - At least one prior
//   - Every prior within [0, 1]
//   - Sum equal to 1 within PriorTolerance
func ValidatePriors(priors []float64) error {
	if len(priors) == 0 {
		return fmt.Errorf("%w: %w", ErrConfiguration, ErrNoAreas)
	}

	sum := 0.0
	for i, p := range priors {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%w: %w: area %d has %v", ErrConfiguration, ErrInvalidPrior, i+1, p)
		}
		sum += p
	}

	if math.Abs(sum-1) > PriorTolerance {
		return fmt.Errorf("%w: %w: got %v", ErrConfiguration, ErrPriorsSum, sum)
	}
	return nil
}

// ValidateEffectivenessRange validates a sampling range for search effectiveness.
func ValidateEffectivenessRange(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || min < 0 || max > 1 || min > max {
		return fmt.Errorf("%w: %w: [%v, %v]", ErrConfiguration, ErrInvalidEffectivenessRange, min, max)
	}
	return nil
}

// ValidateEffectiveness checks a single effectiveness value.
func ValidateEffectiveness(e float64) error {
	if math.IsNaN(e) || e < 0 || e > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidEffectiveness, e)
	}
	return nil
}

// ValidateAreaID checks that id refers to one of numAreas areas.
func ValidateAreaID(id AreaID, numAreas int) error {
	if id < 1 || int(id) > numAreas {
		return fmt.Errorf("%w: %d (have %d areas)", ErrInvalidArea, id, numAreas)
	}
	return nil
}

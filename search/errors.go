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

package search

import "errors"

var (
	// ErrRandRequired is returned when a random source is not provided.
	ErrRandRequired = errors.New("random source required")

	// ErrGridsRequired is returned when no area grids are provided.
	ErrGridsRequired = errors.New("area grids required")

	// ErrHistoryRequired is returned when a search history is not provided.
	ErrHistoryRequired = errors.New("search history required")
)

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

// Package search implements a single search pass over a partitioned region.
//
// The Executor type runs the per-area search algorithm:
//   - Enumerate the area's grid and drop coordinates already in the History
//   - Shuffle the remaining candidates and keep a prefix sized by effectiveness
//   - Record the examined coordinates and report whether the target was covered
//
// The package also provides the target placer and the effectiveness sampler.
// All randomness comes from an injected *rand.Rand so runs are reproducible.
package search

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

// Package belief holds the per-area probability that the target is present
// and revises it after each search round.
//
// The default rule, RuleLiteral, reweights each area by its own current
// probability:
//
//	p_i' = p_i(1-p_i) / Σ_j p_j(1-p_j)
//
// It deliberately ignores the round's effectiveness and outcome. RuleSearchTheory
// is the textbook update p_i' = p_i(1-e_i) / Σ_j p_j(1-e_j) and must be
// selected explicitly.
package belief

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

// Package storage defines the trial ledger used by Monte Carlo campaigns.
//
// A campaign plays many independent games and records one core.TrialOutcome
// per game. TrialRepository decouples the campaign runner from the backend;
// the badger subpackage provides an in-memory implementation.
//
//	repo, err := badger.NewMemoryRepository()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
// # Constructor Return Type Pattern
//
// Public constructors return the storage interface, not the backend type:
//
//	repo, err := badger.NewMemoryRepository() // returns storage.TrialRepository
//
// # Thread Safety
//
// Repository implementations must support concurrent access from multiple
// goroutines; campaign workers write outcomes in parallel.
//
// # Serialization
//
// Outcomes are encoded with mus-go varints (MarshalTrialOutcome,
// UnmarshalTrialOutcome). Keys order outcomes by campaign, then trial.
package storage

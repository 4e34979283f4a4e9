// Package simulate plays many independent search games under a fixed policy
// and summarizes how often, and how quickly, the target is found.
//
// Each trial gets its own game, random source and history, so trials run in
// parallel on an ants worker pool. Outcomes are written to a
// storage.TrialRepository and the summary is computed from the ledger.
package simulate

// Package pipeline sequences preprocessing and synthesis for one book.
//
// The orchestrator is a three-state machine. It always starts in PREPROCESS,
// moves to SYNTHESIZE only when at least one chapter was cleaned, and ends in
// DONE. The Outcome lists the states visited so callers and tests can tell a
// stopped pipeline from a completed one.
package pipeline

// Package services defines shared helpers consumed by the stage runners, the
// orchestrator, and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, stage names, and book paths for
//     logging.
//   - Structured error markers plus the Wrap helper so callers can classify
//     setup failures with errors.Is.
//
// Use these helpers when wiring new stage logic so operational behaviour stays
// uniform across the preprocessing and synthesis stages.
package services

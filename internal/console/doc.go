// Package console renders operator-facing output: status lines, section
// headers and tables. Colour is used only when the destination is a terminal.
//
// Console implements stages.Observer and pipeline.Reporter so the stage
// runner and orchestrator never format text themselves.
package console

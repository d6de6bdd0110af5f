// Package main hosts the bookloom CLI entrypoint and command graph.
//
// Invoked with no subcommand, bookloom selects a book (from the argument or
// an interactive list) and either shows the action menu or, with --direct,
// runs the full pipeline once. Subcommands run a single stage, list books,
// verify preprocessing output, and scaffold configuration.
//
// Keep this package lean: stage logic lives in internal/stages and
// internal/pipeline, rendering in internal/console. Commands here resolve
// configuration, pick the book, and wire the pieces together.
package main

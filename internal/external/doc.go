// Package external runs the preprocessor and TTS programs that do the actual
// work on a chapter file.
//
// A Tool is a command line minus its final argument; Invoke appends the file
// being processed, waits for the child to exit, and reports success purely on
// the exit status. Stage runners depend on the Invoker interface so tests can
// substitute a recording fake for real processes.
package external

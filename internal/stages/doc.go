// Package stages runs one external tool over every matching file of a book.
//
// The preprocessing stage feeds each raw chapter to the preprocessor; the
// synthesis stage feeds each clean file to the TTS tool. Both re-read the
// chapters directory when they start, invoke the tool once per file in
// lexicographic order, and keep going after a failure. Per-file failures are
// counted in Result and never returned as errors.
package stages

// Package library resolves books and discovers their chapter files.
//
// A book is a directory with a chapters subdirectory. Raw chapter files and
// cleaned files live side by side in that subdirectory and are told apart only
// by a reserved name suffix, so every discovery call re-reads the directory and
// returns paths in lexicographic order.
package library

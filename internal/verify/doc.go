// Package verify compares each raw chapter with its cleaned counterpart to
// flag chapters where the preprocessor dropped too much text.
package verify

// Package preflight provides readiness checks for the external tools and
// filesystem paths that bookloom depends on.
//
// The CLI runs RunAll before any stage action; a failed check is a setup
// error and the action does not start. "bookloom config validate" prints the
// same results without failing.
package preflight

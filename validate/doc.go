// Package validate turns raw operation input, as typed into a form or
// passed on a command line, into a runner.Request that is safe to run.
//
// Every rejection wraps one of the package's sentinel errors, so callers
// branch with errors.Is and show the wrapped message as is. A rejected
// request never reaches the runner and leaves the structure untouched.
//
// Normalisation applied on the way through: surrounding whitespace is
// trimmed from every field, hash-table keys are lower-cased, and a string
// operand keeps only its first character.
package validate

// Package numeric provides the closed set of number types a bounded numeric
// input can edit, with parse and format helpers and a stepping domain.
//
// Every helper dispatches on the concrete type with a type switch, so no
// implementation beyond the types listed in [Number] is possible.
package numeric

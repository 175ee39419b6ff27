// Package errors provides structured, coded errors for the CLI and the
// conversion service. Library packages return plain errors; this package
// wraps them with codes, suggestions, and terminal formatting at the edges.
package errors

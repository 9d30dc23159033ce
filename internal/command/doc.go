// Package command parses raw CLI tokens into the closed set of contact book
// operations and update directives.
//
// Parsing is total: a token sequence that matches no grammar rule yields
// Help rather than an error, and a malformed update option yields a single
// Unknown edit in place of everything parsed before it.
package command

// Package jmespath is the shared runtime facade: the single entry point
// library callers use instead of reaching into pkg/lexer, pkg/parser,
// pkg/eval, and pkg/registry directly.
//
// Grounded in a composition pattern where main.go wires lexer+parser+
// eval.New into one call per expression; this package generalizes that
// wiring into a reusable Runtime so a caller gets one import rather than
// four.
package jmespath

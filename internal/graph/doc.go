// Package graph describes the Go declarations synthesized for one sealed
// blueprint.
//
// A TypeGraph is built by internal/synth and consumed once by internal/gen.
// It is declarative: every name, type expression and relation the emitter
// needs is precomputed here, so templates only print.
package graph

// Package synth derives the declarations emitted for a validated blueprint.
//
// Synthesize builds a graph.TypeGraph holding:
//   - the sealed root interface and the AcceptX visitor entry point
//   - one visitor branch, wrapper and factory per variant
//   - FlatMapX and MapX when the single generic variant allows them
//   - the staged matchers, one per enabled mode
//
// Variants are sorted by name first so output does not depend on the order
// they were permitted in. Synthesize is pure and safe to call concurrently
// for different blueprints.
package synth

// Package plan runs blueprints through the generation pipeline.
//
// For every analyzed unit the pipeline:
//   - merges the resolution diagnostics from analysis
//   - validates the blueprint and its variants
//   - synthesizes the type graph when validation found no failures
//   - renders the graph into a Go source file
//
// Units are independent, so they are processed in parallel with a bounded
// errgroup. Results are stored by index and come back in input order.
package plan

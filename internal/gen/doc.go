// Package gen renders a synthesized type graph into a Go source file.
//
// Generation uses text/template followed by golang.org/x/tools/imports, so
// the output is gofmt-clean with a sorted import block.
//
// Every emitted file contains, for one blueprint:
//   - the sealed root interface and its visitor
//   - one unexported wrapper and one factory per variant
//   - FlatMap and Map when the functor extension applies
//   - the staged matcher builders for each enabled mode
package gen

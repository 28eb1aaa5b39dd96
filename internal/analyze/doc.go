// Package analyze loads Go packages and extracts sealgen blueprints.
//
// It uses golang.org/x/tools/go/packages with go/types to find interfaces
// carrying //sealgen: directives or named by a manifest, and resolves their
// permitted types into the model consumed by validation and synthesis.
//
// Key types:
//   - Loader: loads package patterns and builds one Unit per blueprint
//   - Unit: a blueprint, its variants and resolution diagnostics
//   - Relation: model.TypeRelation backed by types.Identical and types.AssignableTo
//   - TypeStringer: renders types relative to the blueprint package
package analyze

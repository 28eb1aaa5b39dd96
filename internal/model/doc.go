// Package model describes a blueprint interface and its permitted variants
// as plain data.
//
// The model is filled in by an introspection layer (see internal/analyze) and
// consumed by internal/validate and internal/synth. Nothing here touches the
// file system or go/types directly; type comparisons go through a
// TypeRelation supplied by the caller.
//
// Key types:
//   - Blueprint: the interface being sealed, its type parameter and methods
//   - Variant: one permitted type with accessibility, finality and methods
//   - TypeRef: a rendered type expression plus an opaque host handle
//   - Options: root name, strict mode and matcher modes
package model

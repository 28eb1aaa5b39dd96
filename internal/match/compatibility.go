package match

import (
	"sealgen/internal/model"
)

// TypeCompatibility represents the level of compatibility between two types.
type TypeCompatibility int

const (
	// TypeIncompatible means a value of the first type cannot be used as the second.
	TypeIncompatible TypeCompatibility = iota
	// TypeAssignable means the value can be assigned to the target.
	TypeAssignable
	// TypeIdentical means the types are exactly the same.
	TypeIdentical
)

const (
	VerdictIdentical    = "identical"
	VerdictAssignable   = "assignable"
	VerdictIncompatible = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c TypeCompatibility) String() string {
	switch c {
	case TypeIdentical:
		return VerdictIdentical
	case TypeAssignable:
		return VerdictAssignable
	case TypeIncompatible:
		return VerdictIncompatible
	default:
		return "unknown"
	}
}

// OK reports whether the value can stand in for the target.
func (c TypeCompatibility) OK() bool {
	return c >= TypeAssignable
}

// Classify compares a value type against a target type.
func Classify(rel model.TypeRelation, value, target model.TypeRef) TypeCompatibility {
	rel = model.RelationOrDefault(rel)

	switch {
	case rel.Identical(value, target):
		return TypeIdentical
	case rel.AssignableTo(value, target):
		return TypeAssignable
	default:
		return TypeIncompatible
	}
}

// ClassifyResults compares result lists position by position. It returns the
// weakest level found and the index of the first incompatible position, or -1.
// Lists of different length are incompatible at the shorter length.
func ClassifyResults(rel model.TypeRelation, got, want []model.TypeRef) (TypeCompatibility, int) {
	if len(got) != len(want) {
		return TypeIncompatible, min(len(got), len(want))
	}

	weakest := TypeIdentical

	for i := range want {
		c := Classify(rel, got[i], want[i])
		if c == TypeIncompatible {
			return TypeIncompatible, i
		}

		weakest = min(weakest, c)
	}

	return weakest, -1
}

// ParamsIdentical reports whether two methods take identical parameter types,
// including the variadic flag.
func ParamsIdentical(rel model.TypeRelation, a, b model.Method) bool {
	if len(a.Params) != len(b.Params) || a.Variadic != b.Variadic {
		return false
	}

	rel = model.RelationOrDefault(rel)

	for i := range a.Params {
		if !rel.Identical(a.Params[i].Type, b.Params[i].Type) {
			return false
		}
	}

	return true
}

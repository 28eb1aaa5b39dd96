package model

// TypeRelation compares type references. The go/types backed implementation
// lives in internal/analyze; StructuralRelation works on expressions alone.
type TypeRelation interface {
	// Identical reports whether a and b denote the same type.
	Identical(a, b TypeRef) bool
	// AssignableTo reports whether a value of type value can be assigned to
	// a variable of type target.
	AssignableTo(value, target TypeRef) bool
}

// StructuralRelation compares rendered expressions. Every type is assignable
// to the empty interface.
type StructuralRelation struct{}

// Identical compares expressions.
func (StructuralRelation) Identical(a, b TypeRef) bool {
	return a.Expr == b.Expr
}

// AssignableTo accepts identical expressions and any empty-interface target.
func (StructuralRelation) AssignableTo(value, target TypeRef) bool {
	if value.Expr == target.Expr {
		return true
	}

	return target.Expr == "any" || target.Expr == "interface{}"
}

// RelationOrDefault returns rel, or StructuralRelation when rel is nil.
func RelationOrDefault(rel TypeRelation) TypeRelation {
	if rel == nil {
		return StructuralRelation{}
	}

	return rel
}

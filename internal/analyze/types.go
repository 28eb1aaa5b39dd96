package analyze

import (
	"go/types"

	"sealgen/internal/diagnostic"
	"sealgen/internal/model"
)

// Unit is one blueprint ready for validation: the blueprint, its resolved
// variants and what went wrong while resolving them.
type Unit struct {
	Blueprint   *model.Blueprint
	Variants    []*model.Variant
	Declaration model.Declaration
	// Relation compares types with go/types.
	Relation model.TypeRelation
	// Diagnostics holds resolution failures such as unknown permitted types.
	Diagnostics *diagnostic.Diagnostics
}

// Name returns the blueprint name, or the declared interface when the
// blueprint could not be built.
func (u *Unit) Name() string {
	if u.Blueprint != nil {
		return u.Blueprint.Name
	}

	return u.Declaration.Interface
}

// Relation implements model.TypeRelation on top of go/types. References
// without a types.Type handle are compared by expression.
type Relation struct{}

var _ model.TypeRelation = Relation{}

// Identical reports types.Identical for the handles.
func (Relation) Identical(a, b model.TypeRef) bool {
	ta, okA := a.Handle.(types.Type)
	tb, okB := b.Handle.(types.Type)

	if !okA || !okB {
		return model.StructuralRelation{}.Identical(a, b)
	}

	return types.Identical(ta, tb)
}

// AssignableTo reports types.AssignableTo for the handles.
func (Relation) AssignableTo(value, target model.TypeRef) bool {
	tv, okV := value.Handle.(types.Type)
	tt, okT := target.Handle.(types.Type)

	if !okV || !okT {
		return model.StructuralRelation{}.AssignableTo(value, target)
	}

	return types.AssignableTo(tv, tt)
}

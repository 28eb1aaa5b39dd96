package analyze

import (
	"go/types"

	"sealgen/internal/model"
)

// TypeStringer renders go/types types as they are spelled from inside one
// package, remembering the imports each rendering needs.
type TypeStringer struct {
	pkg *types.Package
}

// NewTypeStringer creates a TypeStringer rendering relative to pkg.
func NewTypeStringer(pkg *types.Package) *TypeStringer {
	return &TypeStringer{pkg: pkg}
}

// Ref renders t into a TypeRef whose Handle is t itself.
func (s *TypeStringer) Ref(t types.Type) model.TypeRef {
	if t == nil {
		return model.TypeRef{}
	}

	var imports []model.Import

	qualifier := func(p *types.Package) string {
		if p == nil || p == s.pkg || (s.pkg != nil && p.Path() == s.pkg.Path()) {
			return ""
		}

		imports = appendImport(imports, model.Import{Path: p.Path(), Name: p.Name()})

		return p.Name()
	}

	return model.TypeRef{
		Expr:    types.TypeString(t, qualifier),
		Imports: imports,
		Handle:  t,
	}
}

// Params renders a tuple into named parameters. Unnamed parameters keep an
// empty name.
func (s *TypeStringer) Params(tuple *types.Tuple) []model.Param {
	if tuple == nil || tuple.Len() == 0 {
		return nil
	}

	out := make([]model.Param, tuple.Len())
	for i := range tuple.Len() {
		v := tuple.At(i)

		name := v.Name()
		if name == "_" {
			name = ""
		}

		out[i] = model.Param{Name: name, Type: s.Ref(v.Type())}
	}

	return out
}

// Results renders a result tuple.
func (s *TypeStringer) Results(tuple *types.Tuple) []model.TypeRef {
	if tuple == nil || tuple.Len() == 0 {
		return nil
	}

	out := make([]model.TypeRef, tuple.Len())
	for i := range tuple.Len() {
		out[i] = s.Ref(tuple.At(i).Type())
	}

	return out
}

// Method renders a method object with signature sig. Passing the signature
// separately lets callers supply an instantiated one.
func (s *TypeStringer) Method(fn *types.Func, sig *types.Signature) model.Method {
	m := model.Method{
		Name:     fn.Name(),
		Params:   s.Params(sig.Params()),
		Results:  s.Results(sig.Results()),
		Variadic: sig.Variadic(),
	}

	if fn.Pkg() != nil {
		m.PkgPath = fn.Pkg().Path()
	}

	return m
}

// TypeParams renders a type parameter list.
func (s *TypeStringer) TypeParams(list *types.TypeParamList) []model.TypeParam {
	if list == nil || list.Len() == 0 {
		return nil
	}

	out := make([]model.TypeParam, list.Len())
	for i := range list.Len() {
		tp := list.At(i)

		out[i] = model.TypeParam{
			Name:       tp.Obj().Name(),
			Constraint: s.Ref(tp.Constraint()),
			Ref:        s.Ref(tp),
		}
	}

	return out
}

func appendImport(imports []model.Import, imp model.Import) []model.Import {
	for _, existing := range imports {
		if existing.Path == imp.Path {
			return imports
		}
	}

	return append(imports, imp)
}

package model

import (
	"go/token"
	"strings"
)

// Import is a package import required by a rendered type expression.
type Import struct {
	Path string
	Name string
}

// TypeRef is a Go type expression rendered relative to the blueprint package.
type TypeRef struct {
	// Expr is the source form, e.g. "string", "*Dog", "time.Time", "Success[T]".
	Expr string
	// Imports lists the packages Expr refers to.
	Imports []Import
	// Handle is an opaque host value (a go/types.Type when loaded from source).
	Handle any `yaml:"-"`
}

// Ref builds a TypeRef without imports or handle.
func Ref(expr string) TypeRef {
	return TypeRef{Expr: expr}
}

// String returns the expression.
func (r TypeRef) String() string {
	return r.Expr
}

// TypeParam is a single type parameter with its constraint.
type TypeParam struct {
	Name       string
	Constraint TypeRef
	// Ref refers to the parameter itself, used when comparing member types.
	Ref TypeRef
}

// Self returns the reference to the parameter, defaulting to its name.
func (p TypeParam) Self() TypeRef {
	if p.Ref.Expr == "" {
		return Ref(p.Name)
	}

	return p.Ref
}

// Param is a named method or function parameter.
type Param struct {
	Name string
	Type TypeRef
}

// Method is a method signature declared by a blueprint or found on a variant.
type Method struct {
	Name    string
	Params  []Param
	Results []TypeRef
	// Variadic marks the last parameter as variadic; its Type is the slice type.
	Variadic bool
	// PointerReceiver is set on variant methods callable only through *T.
	PointerReceiver bool
	// PkgPath is the package declaring the method.
	PkgPath string
}

// Exported reports whether the method name is exported.
func (m Method) Exported() bool {
	return token.IsExported(m.Name)
}

// Signature renders the name and parameter types, e.g. "Sound(int, ...string)".
func (m Method) Signature() string {
	return m.Name + "(" + m.ParamList() + ")"
}

// ParamList renders only the parameter types.
func (m Method) ParamList() string {
	parts := make([]string, len(m.Params))

	for i, p := range m.Params {
		expr := p.Type.Expr
		if m.Variadic && i == len(m.Params)-1 {
			expr = "..." + strings.TrimPrefix(expr, "[]")
		}

		parts[i] = expr
	}

	return strings.Join(parts, ", ")
}

// ResultList renders the result types as they appear after the parameter list.
func (m Method) ResultList() string {
	switch len(m.Results) {
	case 0:
		return ""
	case 1:
		return m.Results[0].Expr
	default:
		parts := make([]string, len(m.Results))
		for i, r := range m.Results {
			parts[i] = r.Expr
		}

		return "(" + strings.Join(parts, ", ") + ")"
	}
}

// Func is a package-level function, used for variant constructors.
type Func struct {
	Name    string
	Params  []Param
	Results []TypeRef
	// TypeParams are the function's own type parameters, already instantiated
	// with the blueprint's parameter when Params and Results are rendered.
	TypeParams int
}

// Exported reports whether the function name is exported.
func (f Func) Exported() bool {
	return token.IsExported(f.Name)
}

package graph

import (
	"strings"

	"sealgen/internal/model"
)

// TypeGraph is everything emitted for one blueprint.
type TypeGraph struct {
	Package   Package
	Blueprint string
	Root      Root
	Visitor   Visitor
	Wrappers  []Wrapper
	Factories []Factory
	// Functor is nil when Map/FlatMap are not emitted.
	Functor  *Functor
	Matchers []Matcher
	Imports  []model.Import
}

// Package identifies where the graph is emitted.
type Package struct {
	Path string
	Name string
	Dir  string
}

// TypeParams is a type parameter list that renders itself.
type TypeParams []model.TypeParam

// Decl renders a declaration list such as "[T any, R any]". Extra names are
// appended with an any constraint. An empty list renders as "".
func (tp TypeParams) Decl(extra ...string) string {
	parts := make([]string, 0, len(tp)+len(extra))

	for _, p := range tp {
		constraint := p.Constraint.Expr
		if constraint == "" {
			constraint = "any"
		}

		parts = append(parts, p.Name+" "+constraint)
	}

	for _, e := range extra {
		parts = append(parts, e+" any")
	}

	return bracket(parts)
}

// DeclAs is Decl where extra names share the constraint of the first
// parameter, e.g. "[T comparable, U comparable]".
func (tp TypeParams) DeclAs(extra ...string) string {
	constraint := "any"
	if len(tp) > 0 && tp[0].Constraint.Expr != "" {
		constraint = tp[0].Constraint.Expr
	}

	parts := make([]string, 0, len(tp)+len(extra))
	for _, p := range tp {
		parts = append(parts, p.Name+" "+orAny(p.Constraint.Expr))
	}

	for _, e := range extra {
		parts = append(parts, e+" "+constraint)
	}

	return bracket(parts)
}

// Args renders an argument list such as "[T, R]".
func (tp TypeParams) Args(extra ...string) string {
	parts := make([]string, 0, len(tp)+len(extra))
	for _, p := range tp {
		parts = append(parts, p.Name)
	}

	parts = append(parts, extra...)

	return bracket(parts)
}

// Root is the sealed interface.
type Root struct {
	Name       string
	TypeParams TypeParams
	// Embeds is the blueprint instantiation the root extends.
	Embeds string
	// Dispatch is the unexported method sealing the root.
	Dispatch string
	// Accept is the generic function running a visitor over a root value.
	Accept string
}

// Ref renders the root instantiated with its own parameters.
func (r Root) Ref() string {
	return r.Name + r.TypeParams.Args()
}

// RefWith renders the root instantiated with args.
func (r Root) RefWith(args ...string) string {
	return r.Name + bracket(args)
}

// Visitor is the double-dispatch contract.
type Visitor struct {
	Name string
	// Result is the caller-chosen result type parameter.
	Result     string
	Dispatcher string
	Adapter    string
	// FuncVisitor is a visitor backed by one func per branch, used by the
	// matchers. Empty when no matcher is emitted.
	FuncVisitor string
	Branches    []Branch
}

// Branch is one visitor method.
type Branch struct {
	// Method is the exported visitor method, e.g. "OnDog".
	Method string
	// Dispatch is the dispatcher method, e.g. "dispatchDog".
	Dispatch string
	// Field is the func field of the func-backed visitor, e.g. "onDog".
	Field   string
	Variant VariantRef
}

// VariantRef is a variant as referenced from the emitted package.
type VariantRef struct {
	Name    string
	Expr    string
	Generic bool
	Pointer bool
}

// Wrapper holds one variant value and implements the root.
type Wrapper struct {
	Name    string
	Variant VariantRef
	// Branch is the dispatcher method invoked by the wrapper.
	Branch    string
	Delegates []Delegate
	// Stringer is set when the wrapper defines String.
	Stringer bool
	// Unwrap is set when the wrapper defines Unwrap.
	Unwrap bool
}

// Delegate is a blueprint method forwarded unchanged to the held value.
type Delegate struct {
	Name     string
	Params   []Param
	Variadic bool
	Results  []string
}

// Param is a rendered parameter.
type Param struct {
	Name string
	Type string
}

// ParamDecl renders "a int, rest ...string".
func (d Delegate) ParamDecl() string {
	parts := make([]string, len(d.Params))

	for i, p := range d.Params {
		typ := p.Type
		if d.Variadic && i == len(d.Params)-1 {
			typ = "..." + strings.TrimPrefix(typ, "[]")
		}

		parts[i] = p.Name + " " + typ
	}

	return strings.Join(parts, ", ")
}

// CallArgs renders "a, rest...".
func (d Delegate) CallArgs() string {
	parts := make([]string, len(d.Params))

	for i, p := range d.Params {
		parts[i] = p.Name
		if d.Variadic && i == len(d.Params)-1 {
			parts[i] += "..."
		}
	}

	return strings.Join(parts, ", ")
}

// ResultDecl renders the result list after the parameters.
func (d Delegate) ResultDecl() string {
	switch len(d.Results) {
	case 0:
		return ""
	case 1:
		return " " + d.Results[0]
	default:
		return " (" + strings.Join(d.Results, ", ") + ")"
	}
}

// Factory wraps a variant value into the root.
type Factory struct {
	Name    string
	Variant VariantRef
	Wrapper string
	// RejectsNil is set for pointer variants.
	RejectsNil bool
}

// Functor describes FlatMap and Map for the single generic variant.
type Functor struct {
	FlatMap string
	Map     string
	// Target is the fresh type parameter of the mapped root.
	Target string
	// Visitor is the unexported visitor implementing FlatMap.
	Visitor     string
	// Branch is the visitor branch of the generic variant.
	Branch      Branch
	Variant     VariantRef
	Accessor    string
	Constructor string
	// Factory wraps a constructed generic variant into the root.
	Factory string
	// PassThrough re-wraps every non-generic variant under the new parameter.
	PassThrough []PassThrough
}

// PassThrough re-wraps a non-generic variant value.
type PassThrough struct {
	Branch  Branch
	Factory string
}

// Flavor is the kind of matcher.
type Flavor int

const (
	// FlavorFunction returns a value from every branch.
	FlavorFunction Flavor = iota
	// FlavorConsumer runs a side effect per branch.
	FlavorConsumer
)

// String returns a human-readable flavor name.
func (f Flavor) String() string {
	if f == FlavorConsumer {
		return "consumer"
	}

	return "function"
}

// Variance is the intended variance of a handler position.
type Variance int

const (
	// Invariant positions take exactly the declared type.
	Invariant Variance = iota
	// Contravariant inputs accept any supertype of the variant.
	Contravariant
	// Covariant outputs may produce any subtype of the result.
	Covariant
)

// Matcher is a staged builder protocol.
type Matcher struct {
	Flavor Flavor
	// Entry starts the builder, e.g. "ReturningPet" or "MatchPet".
	Entry string
	// Result is the result type parameter, empty for consumers.
	Result   string
	Stages   []Stage
	Terminal Terminal
	Builder  string
	// Adapter turns a consumer handler into a visitor branch.
	Adapter string
}

// Stage is one state of the builder protocol.
type Stage struct {
	Index      int
	Name       string
	Transition string
	Field      string
	Handler    Handler
	// Next names the following stage or the terminal.
	Next string
}

// Handler is the function accepted by a transition.
type Handler struct {
	Input          VariantRef
	InputVariance  Variance
	Output         string
	OutputVariance Variance
}

// Expr renders the handler as a Go func type. Go function types are
// invariant, so the recorded variance is not expressed.
func (h Handler) Expr() string {
	if h.Output == "" {
		return "func(" + h.Input.Expr + ")"
	}

	return "func(" + h.Input.Expr + ") " + h.Output
}

// Terminal finishes the protocol.
type Terminal struct {
	Name string
	// Finish is the finishing method, e.g. "AsFunction".
	Finish string
	// Callable is the returned func type, e.g. "func(Pet) R".
	Callable string
}

func bracket(parts []string) string {
	if len(parts) == 0 {
		return ""
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}

	return s
}

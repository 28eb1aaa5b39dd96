package synth

import (
	"sort"

	"sealgen/internal/diagnostic"
	"sealgen/internal/graph"
	"sealgen/internal/model"
	"sealgen/internal/naming"
)

// Synthesize builds the type graph for a blueprint that passed validation.
// The returned diagnostics only ever hold advisories.
func Synthesize(bp *model.Blueprint, variants []*model.Variant, rel model.TypeRelation) (*graph.TypeGraph, *diagnostic.Diagnostics) {
	s := newSynthesizer(bp, variants, rel)

	g := &graph.TypeGraph{
		Package:   graph.Package{Path: bp.PkgPath, Name: bp.PkgName, Dir: bp.Dir},
		Blueprint: bp.Expr(),
		Root:      s.root(),
	}

	g.Visitor = s.visitor()
	g.Wrappers = s.wrappers(g.Visitor)
	g.Factories = s.factories(g.Wrappers)
	g.Functor = s.functor(g)
	g.Matchers = s.matchers(g)
	g.Imports = s.imports.sorted()

	return g, s.diags
}

type synthesizer struct {
	bp       *model.Blueprint
	variants []*model.Variant
	rel      model.TypeRelation
	diags    *diagnostic.Diagnostics
	imports  importSet

	rootName string
	lower    string
	typeArg  string
	result   string
	target   string
}

func newSynthesizer(bp *model.Blueprint, variants []*model.Variant, rel model.TypeRelation) *synthesizer {
	sorted := make([]*model.Variant, len(variants))
	copy(sorted, variants)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	rootName := bp.RootName()

	s := &synthesizer{
		bp:       bp,
		variants: sorted,
		rel:      model.RelationOrDefault(rel),
		diags:    &diagnostic.Diagnostics{},
		imports:  importSet{},
		rootName: rootName,
		lower:    naming.LowerFirst(rootName),
	}

	taken := naming.Namespace(rootName)
	for _, v := range sorted {
		taken[v.Name] = struct{}{}
	}

	for _, p := range bp.TypeParams {
		taken[p.Name] = struct{}{}
		s.imports.addRef(p.Constraint)
	}

	if tp, ok := bp.TypeParam(); ok {
		s.typeArg = tp.Name
	}

	s.result = naming.NewStem("R", taken).Fresh()
	s.target = naming.NewStem("U", taken).Fresh()

	return s
}

func (s *synthesizer) root() graph.Root {
	return graph.Root{
		Name:       s.rootName,
		TypeParams: graph.TypeParams(s.bp.TypeParams),
		Embeds:     s.bp.Expr(),
		Dispatch:   "dispatch" + s.rootName,
		Accept:     "Accept" + s.rootName,
	}
}

func (s *synthesizer) variantRef(v *model.Variant) graph.VariantRef {
	ref := v.TypeRef(s.bp.PkgPath, s.typeArg)
	s.imports.addRef(ref)

	return graph.VariantRef{
		Name:    v.Name,
		Expr:    ref.Expr,
		Generic: v.Generic(),
		Pointer: v.Pointer,
	}
}

func (s *synthesizer) visitor() graph.Visitor {
	vis := graph.Visitor{
		Name:       s.rootName + "Visitor",
		Result:     s.result,
		Dispatcher: s.lower + "Dispatcher",
		Adapter:    s.lower + "VisitorAdapter",
	}

	if s.bp.Options.Modes != 0 {
		vis.FuncVisitor = s.lower + "FuncVisitor"
	}

	for _, v := range s.variants {
		suffix := naming.UpperFirst(v.Name)

		vis.Branches = append(vis.Branches, graph.Branch{
			Method:   "On" + suffix,
			Dispatch: "dispatch" + suffix,
			Field:    "on" + suffix,
			Variant:  s.variantRef(v),
		})
	}

	return vis
}

func (s *synthesizer) wrappers(vis graph.Visitor) []graph.Wrapper {
	delegates := s.delegates()
	stringer := !s.bp.Declares("String")
	unwrap := !s.bp.Declares("Unwrap")

	if stringer {
		s.imports.add(model.Import{Path: "fmt", Name: "fmt"})
	}

	out := make([]graph.Wrapper, 0, len(vis.Branches))

	for _, b := range vis.Branches {
		out = append(out, graph.Wrapper{
			Name:      s.lower + naming.UpperFirst(b.Variant.Name) + "Wrapper",
			Variant:   b.Variant,
			Branch:    b.Dispatch,
			Delegates: delegates,
			Stringer:  stringer,
			Unwrap:    unwrap,
		})
	}

	return out
}

// reservedParams are identifiers used by the wrapper method bodies.
var reservedParams = naming.Namespace("w", "_")

func (s *synthesizer) delegates() []graph.Delegate {
	out := make([]graph.Delegate, 0, len(s.bp.Methods))

	for _, m := range s.bp.Methods {
		d := graph.Delegate{Name: m.Name, Variadic: m.Variadic}
		used := naming.Namespace()

		for _, p := range m.Params {
			s.imports.addRef(p.Type)

			name := p.Name
			if _, bad := reservedParams[name]; bad || name == "" {
				name = "p"
			}

			name = naming.NewStem(name, used).Fresh()

			d.Params = append(d.Params, graph.Param{Name: name, Type: p.Type.Expr})
		}

		for _, r := range m.Results {
			s.imports.addRef(r)
			d.Results = append(d.Results, r.Expr)
		}

		out = append(out, d)
	}

	return out
}

func (s *synthesizer) factories(wrappers []graph.Wrapper) []graph.Factory {
	out := make([]graph.Factory, 0, len(wrappers))

	for _, w := range wrappers {
		out = append(out, graph.Factory{
			Name:       s.factoryName(w.Variant.Name),
			Variant:    w.Variant,
			Wrapper:    w.Name,
			RejectsNil: w.Variant.Pointer,
		})
	}

	return out
}

func (s *synthesizer) factoryName(variant string) string {
	return s.rootName + "From" + naming.UpperFirst(variant)
}

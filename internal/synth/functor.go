package synth

import (
	"fmt"

	"sealgen/internal/diagnostic"
	"sealgen/internal/graph"
	"sealgen/internal/model"
)

// functor describes FlatMap and Map when exactly one variant is generic and
// it exposes an accessor returning its parameter and a New<Variant>
// constructor taking it. Otherwise it records an advisory and returns nil.
func (s *synthesizer) functor(g *graph.TypeGraph) *graph.Functor {
	tp, ok := s.bp.TypeParam()
	if !ok {
		return nil
	}

	var (
		genericVariant *model.Variant
		genericBranch  graph.Branch
		passThrough    []graph.PassThrough
	)

	for i, v := range s.variants {
		b := g.Visitor.Branches[i]
		if v.Generic() {
			genericVariant, genericBranch = v, b
			continue
		}

		passThrough = append(passThrough, graph.PassThrough{Branch: b, Factory: s.factoryName(v.Name)})
	}

	if genericVariant == nil {
		return nil
	}

	accessor, hasAccessor := s.accessor(genericVariant, tp)
	ctor, hasCtor := s.constructor(genericVariant, tp)

	if !hasAccessor || !hasCtor {
		s.diags.AddWarning(diagnostic.CodeFunctorUnavailable,
			fmt.Sprintf("Could not generate 'FlatMap%[1]s'/'Map%[1]s'. Permitted type '%[2]s' requires an exported accessor "+
				"returning %[3]s and an exported constructor New%[2]s accepting %[3]s.", s.rootName, genericVariant.Name, tp.Name),
			diagnostic.Locus{Blueprint: s.bp.Name, Variant: genericVariant.DisplayName()},
			missingParts(genericVariant, tp, hasAccessor, hasCtor)...)

		return nil
	}

	return &graph.Functor{
		FlatMap:     "FlatMap" + s.rootName,
		Map:         "Map" + s.rootName,
		Target:      s.target,
		Visitor:     s.lower + "FlatMapVisitor",
		Branch:      genericBranch,
		Variant:     genericBranch.Variant,
		Accessor:    accessor,
		Constructor: ctor,
		Factory:     s.factoryName(genericVariant.Name),
		PassThrough: passThrough,
	}
}

// accessor finds an exported zero-argument method returning exactly the
// type parameter. Pointer-receiver methods only count for pointer variants.
func (s *synthesizer) accessor(v *model.Variant, tp model.TypeParam) (string, bool) {
	for _, m := range v.Methods {
		if !m.Exported() || len(m.Params) != 0 || len(m.Results) != 1 {
			continue
		}

		if m.PointerReceiver && !v.Pointer {
			continue
		}

		if s.rel.Identical(m.Results[0], tp.Self()) {
			return m.Name, true
		}
	}

	return "", false
}

// constructor checks New<Variant>: one type parameter, one argument of that
// parameter, and the permitted variant form as its only result.
func (s *synthesizer) constructor(v *model.Variant, tp model.TypeParam) (string, bool) {
	f, ok := v.Constructor()
	if !ok || !f.Exported() || f.TypeParams != 1 || len(f.Params) != 1 || len(f.Results) != 1 {
		return "", false
	}

	if !s.rel.Identical(f.Params[0].Type, tp.Self()) {
		return "", false
	}

	if !s.rel.Identical(f.Results[0], v.TypeRef(s.bp.PkgPath, tp.Name)) {
		return "", false
	}

	name := f.Name
	if v.PkgPath != s.bp.PkgPath {
		name = v.PkgName + "." + name
	}

	return name, true
}

func missingParts(v *model.Variant, tp model.TypeParam, hasAccessor, hasCtor bool) []string {
	var out []string

	if !hasAccessor {
		out = append(out, fmt.Sprintf("add a method such as 'func (v %s) Get() %s'", v.DisplayName(), tp.Name))
	}

	if !hasCtor {
		out = append(out, fmt.Sprintf("add 'func New%s[%s any](v %s) %s'", v.Name, tp.Name, tp.Name, v.DisplayName()+"["+tp.Name+"]"))
	}

	return out
}

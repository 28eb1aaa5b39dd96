package validate

import (
	"fmt"
	"strings"

	"sealgen/internal/diagnostic"
	"sealgen/internal/model"
	"sealgen/internal/naming"
)

// Validate checks bp and its variants. Variant order does not affect the
// result set.
func Validate(bp *model.Blueprint, variants []*model.Variant, strict bool, rel model.TypeRelation) *diagnostic.Diagnostics {
	v := &validator{
		bp:     bp,
		strict: strict,
		rel:    model.RelationOrDefault(rel),
		diags:  &diagnostic.Diagnostics{},
	}

	v.checkVariantCount(variants)
	v.checkTypeParamCounts(variants)
	v.checkGenericArity(variants)
	v.checkRootName(variants)

	seen := make(map[string]*model.Variant, len(variants))

	for _, variant := range variants {
		v.checkAccessibility(variant)
		v.checkUnique(variant, seen)
		v.checkAbstract(variant)
		v.checkFinality(variant)
		v.checkConstraint(variant)
		v.checkDelegation(variant)
	}

	return v.diags
}

type validator struct {
	bp     *model.Blueprint
	strict bool
	rel    model.TypeRelation
	diags  *diagnostic.Diagnostics
}

func (v *validator) blueprintLocus() diagnostic.Locus {
	return diagnostic.Locus{Blueprint: v.bp.Name}
}

func (v *validator) variantLocus(variant *model.Variant) diagnostic.Locus {
	return diagnostic.Locus{Blueprint: v.bp.Name, Variant: variant.DisplayName()}
}

func (v *validator) checkVariantCount(variants []*model.Variant) {
	if len(variants) > 0 {
		return
	}

	v.diags.AddError(diagnostic.CodeNoVariants,
		fmt.Sprintf("Blueprint interface '%s' permits no types. At least one permitted type is required.", v.bp.Name),
		v.blueprintLocus())
}

func (v *validator) checkTypeParamCounts(variants []*model.Variant) {
	if n := len(v.bp.TypeParams); n > 1 {
		v.diags.AddError(diagnostic.CodeTooManyTypeParams,
			fmt.Sprintf("Blueprint interface '%s' declares %d type parameters. At most one is supported.", v.bp.Name, n),
			v.blueprintLocus())
	}

	for _, variant := range variants {
		if n := len(variant.TypeParams); n > 1 {
			v.diags.AddError(diagnostic.CodeTooManyTypeParams,
				fmt.Sprintf("Permitted type '%s' declares %d type parameters. At most one is supported.", variant.Name, n),
				v.variantLocus(variant))
		}
	}
}

func (v *validator) checkGenericArity(variants []*model.Variant) {
	var generic []*model.Variant

	for _, variant := range variants {
		if variant.Generic() {
			generic = append(generic, variant)
		}
	}

	if len(generic) > 1 {
		names := make([]string, len(generic))
		for i, g := range generic {
			names[i] = g.Name
		}

		v.diags.AddError(diagnostic.CodeGenericCardinality,
			fmt.Sprintf("Up to one permitted type can be generic. Found: %d (%s).", len(generic), strings.Join(names, ", ")),
			v.blueprintLocus())
	}

	switch {
	case v.bp.Generic() && len(generic) == 0:
		v.diags.AddError(diagnostic.CodeMustNotBeGeneric,
			fmt.Sprintf("The blueprint interface '%s' MUST NOT be generic because no permitted types are generic. "+
				"Either remove the type parameter from the blueprint interface or make one permitted type generic.", v.bp.Name),
			v.blueprintLocus())
	case !v.bp.Generic() && len(generic) > 0:
		v.diags.AddError(diagnostic.CodeMustBeGeneric,
			fmt.Sprintf("The blueprint interface '%s' MUST be generic because permitted type '%s' is generic. "+
				"Either make the permitted type non-generic or add a type parameter to the blueprint interface.",
				v.bp.Name, generic[0].Name),
			v.blueprintLocus())
	}
}

func (v *validator) checkAccessibility(variant *model.Variant) {
	switch variant.Access {
	case model.AccessPrivate:
		v.diags.AddError(diagnostic.CodeInaccessibleVariant,
			fmt.Sprintf("Permitted type '%s' must be accessible (cannot be declared inside a function).", variant.Name),
			v.variantLocus(variant))
	case model.AccessPackage:
		if variant.PkgPath != v.bp.PkgPath {
			v.diags.AddError(diagnostic.CodeInaccessibleVariant,
				fmt.Sprintf("Permitted type '%s' is not exported and must be in the same package as the blueprint interface '%s'.",
					variant.Name, v.bp.Name),
				v.variantLocus(variant))
		}
	}
}

// checkUnique keys variants by the suffix they contribute to generated
// identifiers, so Dog and dog collide.
func (v *validator) checkUnique(variant *model.Variant, seen map[string]*model.Variant) {
	suffix := naming.UpperFirst(variant.Name)

	first, dup := seen[suffix]
	if !dup {
		seen[suffix] = variant

		return
	}

	v.diags.AddError(diagnostic.CodeDuplicateVariant,
		fmt.Sprintf("Duplicate simple name detected in permitted types: %s. '%s' and '%s' would both generate On%s.",
			suffix, first.DisplayName(), variant.DisplayName(), suffix),
		v.variantLocus(variant))
}

// checkRootName rejects root names that would redeclare the blueprint, a
// variant, or clash with an identifier derived from a variant.
func (v *validator) checkRootName(variants []*model.Variant) {
	root := v.bp.RootName()

	declared := map[string]string{v.bp.Name: "the blueprint interface"}

	for _, variant := range variants {
		suffix := naming.UpperFirst(variant.Name)
		declared[suffix] = fmt.Sprintf("permitted type '%s'", variant.DisplayName())

		if variant.PkgPath == v.bp.PkgPath {
			declared[variant.Name] = fmt.Sprintf("permitted type '%s'", variant.DisplayName())
		}
	}

	generated := []string{root, root + "Visitor", "Accept" + root}
	for _, variant := range variants {
		generated = append(generated, root+"From"+naming.UpperFirst(variant.Name))
	}

	for _, name := range generated {
		owner, clash := declared[name]
		if !clash {
			continue
		}

		v.diags.AddError(diagnostic.CodeInvalidDirective,
			fmt.Sprintf("Root name '%s' of blueprint interface '%s' generates '%s', which collides with %s.",
				root, v.bp.Name, name, owner),
			v.blueprintLocus(),
			"choose another name=<Root>")
	}
}

func (v *validator) checkAbstract(variant *model.Variant) {
	if !variant.Abstract {
		return
	}

	v.diags.AddError(diagnostic.CodeAbstractVariant,
		fmt.Sprintf("Permitted types cannot be abstract: '%s' is an interface type. Permit a concrete type instead.", variant.Name),
		v.variantLocus(variant))
}

func (v *validator) checkFinality(variant *model.Variant) {
	if variant.Final() {
		return
	}

	embeds := strings.Join(variant.Embeds, ", ")

	if v.strict {
		v.diags.AddError(diagnostic.CodeNonFinalVariant,
			fmt.Sprintf("Strict mode is enabled: permitted type '%s' must be final, but it embeds %s.", variant.Name, embeds),
			v.variantLocus(variant),
			"replace the embedded types with named fields",
			"or disable strict mode for this blueprint")

		return
	}

	v.diags.AddWarning(diagnostic.CodeFinalityAdvisory,
		fmt.Sprintf("Strict mode is disabled, but it is recommended to make '%s' final (it embeds %s).", variant.Name, embeds),
		v.variantLocus(variant))
}

func (v *validator) checkConstraint(variant *model.Variant) {
	bpParam, ok := v.bp.TypeParam()
	if !ok || len(variant.TypeParams) != 1 {
		return
	}

	got := variant.TypeParams[0].Constraint
	if isAny(got) || v.rel.Identical(got, bpParam.Constraint) {
		return
	}

	v.diags.AddError(diagnostic.CodeConstraintMismatch,
		fmt.Sprintf("Permitted type '%s' constrains its type parameter with '%s', which differs from '%s' on the blueprint interface '%s'. "+
			"Use 'any' or the blueprint's constraint.", variant.Name, got.Expr, bpParam.Constraint.Expr, v.bp.Name),
		v.variantLocus(variant))
}

func (v *validator) checkDelegation(variant *model.Variant) {
	for _, member := range v.bp.Methods {
		res := MatchMember(member, v.bp, variant, v.rel)
		if res.Outcome == OutcomeExact {
			continue
		}

		locus := v.variantLocus(variant)
		locus.Member = member.Name

		v.diags.AddError(res.Outcome.Code(), res.Message(v.bp, variant), locus, res.Suggestions()...)
	}
}

func isAny(r model.TypeRef) bool {
	return r.Expr == "" || r.Expr == "any" || r.Expr == "interface{}"
}

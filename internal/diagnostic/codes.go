package diagnostic

import "sealgen/internal/common"

// Kind groups diagnostic codes.
type Kind int

const (
	KindUnknown Kind = iota
	// KindStructural covers malformed blueprint or variant declarations.
	KindStructural
	// KindDelegation covers blueprint members a variant does not implement.
	KindDelegation
	// KindFunctorUnavailable is reported when Map/FlatMap cannot be emitted.
	KindFunctorUnavailable
	// KindFinalityAdvisory flags non-final variants in lenient mode.
	KindFinalityAdvisory
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "StructuralViolation"
	case KindDelegation:
		return "DelegationViolation"
	case KindFunctorUnavailable:
		return "FunctorUnavailable"
	case KindFinalityAdvisory:
		return "FinalityAdvisory"
	default:
		return common.UnknownStr
	}
}

// Structural violation codes.
const (
	CodeGenericCardinality   = "generic_cardinality"
	CodeMustBeGeneric        = "blueprint_must_be_generic"
	CodeMustNotBeGeneric     = "blueprint_must_not_be_generic"
	CodeTooManyTypeParams    = "too_many_type_params"
	CodeConstraintMismatch   = "constraint_mismatch"
	CodeInaccessibleVariant  = "inaccessible_variant"
	CodeDuplicateVariant     = "duplicate_variant"
	CodeAbstractVariant      = "abstract_variant"
	CodeNonFinalVariant      = "non_final_variant"
	CodeNoVariants           = "no_variants"
	CodeInvalidDirective     = "invalid_directive"
	CodeUnknownVariant       = "unknown_variant"
	CodeInvalidManifestEntry = "invalid_manifest_entry"
)

// Delegation violation codes.
const (
	CodeMissingMember      = "missing_member"
	CodeNonPublicMember    = "non_public_member"
	CodeIncompatibleReturn = "incompatible_return"
	CodeNearMatch          = "near_match"
)

// Advisory codes.
const (
	CodeFunctorUnavailable = "functor_unavailable"
	CodeFinalityAdvisory   = "finality_advisory"
)

var codeKinds = map[string]Kind{
	CodeGenericCardinality:   KindStructural,
	CodeMustBeGeneric:        KindStructural,
	CodeMustNotBeGeneric:     KindStructural,
	CodeTooManyTypeParams:    KindStructural,
	CodeConstraintMismatch:   KindStructural,
	CodeInaccessibleVariant:  KindStructural,
	CodeDuplicateVariant:     KindStructural,
	CodeAbstractVariant:      KindStructural,
	CodeNonFinalVariant:      KindStructural,
	CodeNoVariants:           KindStructural,
	CodeInvalidDirective:     KindStructural,
	CodeUnknownVariant:       KindStructural,
	CodeInvalidManifestEntry: KindStructural,
	CodeMissingMember:        KindDelegation,
	CodeNonPublicMember:      KindDelegation,
	CodeIncompatibleReturn:   KindDelegation,
	CodeNearMatch:            KindDelegation,
	CodeFunctorUnavailable:   KindFunctorUnavailable,
	CodeFinalityAdvisory:     KindFinalityAdvisory,
}

// KindOf returns the kind registered for code.
func KindOf(code string) Kind {
	return codeKinds[code]
}

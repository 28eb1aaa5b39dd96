package validate

import (
	"fmt"
	"strings"

	"sealgen/internal/diagnostic"
	"sealgen/internal/match"
	"sealgen/internal/model"
)

// Outcome classifies how a variant implements one blueprint method.
type Outcome int

const (
	// OutcomeExact means a reachable method with identical parameters and
	// assignable results exists.
	OutcomeExact Outcome = iota
	// OutcomeMissing means no method with that name exists.
	OutcomeMissing
	// OutcomeNonPublic means the method exists but cannot be called through
	// the permitted value from the blueprint package.
	OutcomeNonPublic
	// OutcomeReturnIncompatible means the results are not assignable.
	OutcomeReturnIncompatible
	// OutcomeNearMatch means same-named methods exist with other parameters.
	OutcomeNearMatch
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeExact:
		return "exact"
	case OutcomeMissing:
		return "missing"
	case OutcomeNonPublic:
		return "non-public"
	case OutcomeReturnIncompatible:
		return "return-incompatible"
	case OutcomeNearMatch:
		return "near-match"
	default:
		return "unknown"
	}
}

// Code returns the diagnostic code reported for the outcome.
func (o Outcome) Code() string {
	switch o {
	case OutcomeMissing:
		return diagnostic.CodeMissingMember
	case OutcomeNonPublic:
		return diagnostic.CodeNonPublicMember
	case OutcomeReturnIncompatible:
		return diagnostic.CodeIncompatibleReturn
	case OutcomeNearMatch:
		return diagnostic.CodeNearMatch
	default:
		return ""
	}
}

// MatchResult is the classification of one blueprint method on one variant.
type MatchResult struct {
	Outcome Outcome
	Member  model.Method
	// Candidate is the method that matched by name and parameters.
	Candidate model.Method
	// NearMatches holds ranked same-named methods for OutcomeNearMatch.
	NearMatches match.CandidateList
	// Reason completes the sentence for OutcomeNonPublic.
	Reason string
	// BadResult is the first result position that is not assignable.
	BadResult int
}

// MatchMember finds the implementation of member on variant.
//
// Methods are grouped by case-insensitive name so an unexported twin such as
// sound for Sound is reported as non-public rather than missing.
func MatchMember(member model.Method, bp *model.Blueprint, variant *model.Variant, rel model.TypeRelation) MatchResult {
	res := MatchResult{Member: member, BadResult: -1}

	named := variant.MethodsNamed(member.Name)
	if len(named) == 0 {
		res.Outcome = OutcomeMissing
		return res
	}

	var (
		cand  model.Method
		found bool
	)

	for _, m := range named {
		if !sameOrTwin(m.Name, member.Name) || !match.ParamsIdentical(rel, m, member) {
			continue
		}

		if !found || m.Name == member.Name {
			cand, found = m, true
		}
	}

	if !found {
		res.Outcome = OutcomeNearMatch
		res.NearMatches = match.RankNearMatches(member, named)

		return res
	}

	res.Candidate = cand

	if reason, ok := reachable(cand, member, bp, variant); !ok {
		res.Outcome = OutcomeNonPublic
		res.Reason = reason

		return res
	}

	if c, idx := match.ClassifyResults(rel, cand.Results, member.Results); !c.OK() {
		res.Outcome = OutcomeReturnIncompatible
		res.BadResult = idx

		return res
	}

	res.Outcome = OutcomeExact

	return res
}

// sameOrTwin accepts the exact name or the unexported spelling of an
// exported blueprint method.
func sameOrTwin(got, want string) bool {
	if got == want {
		return true
	}

	return strings.EqualFold(got, want) && model.Method{Name: want}.Exported() && !model.Method{Name: got}.Exported()
}

func reachable(cand, member model.Method, bp *model.Blueprint, variant *model.Variant) (string, bool) {
	declPkg := cand.PkgPath
	if declPkg == "" {
		declPkg = variant.PkgPath
	}

	switch {
	case cand.Name != member.Name:
		return fmt.Sprintf("it must be exported as '%s'", member.Name), false
	case !cand.Exported() && declPkg != bp.PkgPath:
		return fmt.Sprintf("it is unexported and declared outside package '%s'", bp.PkgPath), false
	case cand.PointerReceiver && !variant.Pointer:
		return fmt.Sprintf("it must have a value receiver (or permit '*%s')", variant.Name), false
	default:
		return "", true
	}
}

// Message renders the diagnostic text for a failed outcome.
func (r MatchResult) Message(bp *model.Blueprint, variant *model.Variant) string {
	switch r.Outcome {
	case OutcomeMissing:
		return fmt.Sprintf("Permitted type '%s' is missing method '%s' defined in blueprint interface '%s'. "+
			"Please implement it with a matching signature.", variant.Name, r.Member.Signature(), bp.Name)
	case OutcomeNonPublic:
		return fmt.Sprintf("Permitted type '%s' has a method '%s' matching '%s' in blueprint interface '%s', but %s.",
			variant.Name, r.Candidate.Signature(), r.Member.Signature(), bp.Name, r.Reason)
	case OutcomeReturnIncompatible:
		return fmt.Sprintf("Permitted type '%s' implements '%s', but its return type '%s' is incompatible with '%s' "+
			"declared in blueprint interface '%s'.",
			variant.Name, r.Candidate.Signature(), resultOrNone(r.Candidate), resultOrNone(r.Member), bp.Name)
	case OutcomeNearMatch:
		quoted := make([]string, len(r.NearMatches))
		for i, sig := range r.NearMatches.Signatures() {
			quoted[i] = "'" + sig + "'"
		}

		return fmt.Sprintf("Permitted type '%s' has methods with the same name as '%s' defined in blueprint interface '%s', "+
			"but the signatures do not match. Found near matches: %s.",
			variant.Name, r.Member.Signature(), bp.Name, strings.Join(quoted, ", "))
	default:
		return ""
	}
}

// Suggestions returns corrective hints for the diagnostic.
func (r MatchResult) Suggestions() []string {
	want := strings.TrimSpace(r.Member.Signature() + " " + r.Member.ResultList())

	switch r.Outcome {
	case OutcomeMissing, OutcomeNearMatch, OutcomeReturnIncompatible:
		return []string{"implement " + want}
	case OutcomeNonPublic:
		return []string{r.Reason}
	default:
		return nil
	}
}

func resultOrNone(m model.Method) string {
	if s := m.ResultList(); s != "" {
		return s
	}

	return "(none)"
}

package match

import (
	"sort"

	"sealgen/internal/model"
)

// Candidate is a same-named method that does not match a wanted signature.
type Candidate struct {
	Method model.Method
	// ParamDistance is |len(candidate params) - len(wanted params)|.
	ParamDistance int
	// EditDistance is the Levenshtein distance of the rendered parameter lists.
	EditDistance int
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankNearMatches orders candidates closest first: by parameter-count
// distance, then by edit distance of the rendered parameter lists, then by
// rendered signature.
func RankNearMatches(want model.Method, methods []model.Method) CandidateList {
	wantParams := want.ParamList()
	candidates := make(CandidateList, 0, len(methods))

	for _, m := range methods {
		candidates = append(candidates, Candidate{
			Method:        m,
			ParamDistance: abs(len(m.Params) - len(want.Params)),
			EditDistance:  Levenshtein(m.ParamList(), wantParams),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Signatures renders each candidate signature in ranked order.
func (cl CandidateList) Signatures() []string {
	out := make([]string, len(cl))
	for i, c := range cl {
		out[i] = c.Method.Signature()
	}

	return out
}

// Len implements sort.Interface.
func (cl CandidateList) Len() int { return len(cl) }

// Less implements sort.Interface.
func (cl CandidateList) Less(i, j int) bool {
	a, b := cl[i], cl[j]

	if a.ParamDistance != b.ParamDistance {
		return a.ParamDistance < b.ParamDistance
	}

	if a.EditDistance != b.EditDistance {
		return a.EditDistance < b.EditDistance
	}

	return a.Method.Signature() < b.Method.Signature()
}

// Swap implements sort.Interface.
func (cl CandidateList) Swap(i, j int) { cl[i], cl[j] = cl[j], cl[i] }

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

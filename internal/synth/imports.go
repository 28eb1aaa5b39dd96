package synth

import (
	"sort"

	"sealgen/internal/model"
)

// importSet collects imports keyed by path.
type importSet map[string]model.Import

func (is importSet) add(imp model.Import) {
	if imp.Path == "" {
		return
	}

	is[imp.Path] = imp
}

func (is importSet) addRef(ref model.TypeRef) {
	for _, imp := range ref.Imports {
		is.add(imp)
	}
}

func (is importSet) sorted() []model.Import {
	out := make([]model.Import, 0, len(is))
	for _, imp := range is {
		out = append(out, imp)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	return out
}

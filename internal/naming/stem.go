package naming

import "strconv"

// NewStem creates a Stem producing names from stem that are absent from
// namespace. A nil namespace is treated as empty.
func NewStem(stem string, namespace map[string]struct{}) *Stem {
	return &Stem{
		taken: namespace,
		stem:  stem,
		last:  0,
	}
}

// Stem hands out unique identifiers sharing a prefix.
type Stem struct {
	taken map[string]struct{}
	stem  string
	last  int
}

// Fresh returns the bare stem when it is free, otherwise the next numbered name.
func (s *Stem) Fresh() string {
	if s.taken == nil {
		s.taken = make(map[string]struct{})
	}

	if _, ok := s.taken[s.stem]; !ok {
		s.taken[s.stem] = struct{}{}
		return s.stem
	}

	return s.Next()
}

// Next returns stem1, stem2, ... skipping taken names.
func (s *Stem) Next() string {
	if s.taken == nil {
		s.taken = make(map[string]struct{})
	}

	for {
		s.last++
		name := s.stem + strconv.Itoa(s.last)

		if _, ok := s.taken[name]; !ok {
			s.taken[name] = struct{}{}
			return name
		}
	}
}

// Namespace builds a namespace from names.
func Namespace(names ...string) map[string]struct{} {
	ns := make(map[string]struct{}, len(names))
	for _, n := range names {
		ns[n] = struct{}{}
	}

	return ns
}

package model

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Accessibility -trimprefix=Access -output=accessibility_string.go

// Accessibility says where a variant type can be named from.
type Accessibility int

const (
	// AccessPublic is an exported package-level type.
	AccessPublic Accessibility = iota
	// AccessPackage is an unexported package-level type.
	AccessPackage
	// AccessPrivate is a type declared inside a function body.
	AccessPrivate
)

// Modes is the set of matcher flavors to synthesize.
type Modes uint8

const (
	// ModeFunction builds the value-returning matcher.
	ModeFunction Modes = 1 << iota
	// ModeConsumer builds the side-effecting matcher.
	ModeConsumer

	ModeBoth = ModeFunction | ModeConsumer
)

// Has reports whether every flavor in m is enabled.
func (ms Modes) Has(m Modes) bool {
	return ms&m == m
}

// String returns "function", "consumer", "both" or "none".
func (ms Modes) String() string {
	switch ms {
	case ModeFunction:
		return "function"
	case ModeConsumer:
		return "consumer"
	case ModeBoth:
		return "both"
	default:
		return "none"
	}
}

// ParseModes accepts "function", "consumer" and "both", case-insensitively.
// Values may also be comma separated. An empty input yields ModeBoth.
func ParseModes(values ...string) (Modes, error) {
	var ms Modes

	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			switch strings.ToLower(strings.TrimSpace(part)) {
			case "":
			case "function", "func":
				ms |= ModeFunction
			case "consumer":
				ms |= ModeConsumer
			case "both", "all":
				ms |= ModeBoth
			default:
				return 0, fmt.Errorf("unknown generation mode %q (want function, consumer or both)", part)
			}
		}
	}

	if ms == 0 {
		ms = ModeBoth
	}

	return ms, nil
}

// Options configure generation for one blueprint.
type Options struct {
	// RootName is the name of the synthesized root interface.
	RootName string
	// Strict turns non-final variants into failures.
	Strict bool
	Modes  Modes
}

// DefaultOptions returns strict mode with both matcher flavors.
func DefaultOptions() Options {
	return Options{
		Strict: true,
		Modes:  ModeBoth,
	}
}

// PermitRef names a permitted type as written by the author.
type PermitRef struct {
	// Qualifier is the package name for types outside the blueprint package.
	Qualifier string
	Name      string
	Pointer   bool
}

// ParsePermitRef parses "Dog", "*Dog" or "other.Bird".
func ParsePermitRef(s string) (PermitRef, error) {
	var ref PermitRef

	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "*"); ok {
		ref.Pointer = true
		s = rest
	}

	if q, name, ok := strings.Cut(s, "."); ok {
		ref.Qualifier = q
		s = name
	}

	if s == "" || strings.ContainsAny(s, " *.[]") {
		return PermitRef{}, fmt.Errorf("invalid permitted type reference %q", s)
	}

	ref.Name = s

	return ref, nil
}

// String renders the reference back to source form.
func (r PermitRef) String() string {
	s := r.Name
	if r.Qualifier != "" {
		s = r.Qualifier + "." + s
	}

	if r.Pointer {
		s = "*" + s
	}

	return s
}

// Declaration is an author's request to seal an interface, coming from
// either a source directive or a manifest entry.
type Declaration struct {
	Interface string
	// Root is empty when the root name should be derived from Interface.
	Root    string
	Permits []PermitRef
	// Strict is nil when the author did not choose.
	Strict *bool
	Modes  Modes
	// Source describes where the declaration came from, for messages.
	Source string
}

// RootName resolves the root interface name. Without an explicit name the
// interface must end in "Def", which is trimmed.
func (d Declaration) RootName() (string, bool) {
	if d.Root != "" {
		return d.Root, true
	}

	if base, ok := strings.CutSuffix(d.Interface, "Def"); ok && base != "" {
		return base, true
	}

	return "", false
}

// Options resolves the declaration into Options, falling back to defaults.
func (d Declaration) Options() Options {
	opts := DefaultOptions()
	opts.RootName, _ = d.RootName()

	if d.Strict != nil {
		opts.Strict = *d.Strict
	}

	if d.Modes != 0 {
		opts.Modes = d.Modes
	}

	return opts
}

package analyze

import (
	"go/ast"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"sealgen/internal/errors"
	"sealgen/internal/model"
)

// DirectivePrefix starts every sealgen directive comment.
const DirectivePrefix = "//sealgen:"

// Directive verbs.
const (
	VerbSealed  = "sealed"
	VerbPermits = "permits"
)

// DirectiveLines returns the sealgen directive lines of a comment group.
func DirectiveLines(groups ...*ast.CommentGroup) []string {
	var lines []string

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			if strings.HasPrefix(c.Text, DirectivePrefix) {
				lines = append(lines, c.Text)
			}
		}
	}

	return lines
}

// ParseDirectives folds directive lines into a declaration for iface. It
// reports false when no line is a sealgen directive.
//
//	//sealgen:sealed name=Pet mode=both
//	//sealgen:permits Dog *Cat other.Bird strict=false
//
// A qualified permit such as other.Bird resolves through the imports of the
// file declaring the blueprint, by import name or alias. Comments are not a
// use of an import, so that file must also reference the package in code,
// for example with a compile-time check:
//
//	var _ PetDef = other.Bird{}
func ParseDirectives(iface string, lines []string) (model.Declaration, bool, error) {
	decl := model.Declaration{Interface: iface, Source: "directive"}
	found := false

	var modes []string

	for _, line := range lines {
		rest, ok := strings.CutPrefix(line, DirectivePrefix)
		if !ok {
			continue
		}

		found = true

		words, err := shellquote.Split(rest)
		if err != nil {
			return decl, true, errors.Wrapf(err, "tokenizing %q", line)
		}

		if len(words) == 0 {
			return decl, true, errors.Newf("empty directive %q", line)
		}

		verb := words[0]
		if verb != VerbSealed && verb != VerbPermits {
			return decl, true, errors.WithHintf(errors.Newf("unknown directive %q", verb),
				"use %s%s or %s%s", DirectivePrefix, VerbSealed, DirectivePrefix, VerbPermits)
		}

		for _, word := range words[1:] {
			key, value, isOption := strings.Cut(word, "=")
			if !isOption {
				if verb != VerbPermits {
					return decl, true, errors.Newf("unexpected argument %q to %s%s", word, DirectivePrefix, verb)
				}

				ref, err := model.ParsePermitRef(word)
				if err != nil {
					return decl, true, err
				}

				decl.Permits = append(decl.Permits, ref)

				continue
			}

			switch key {
			case "name", "root":
				decl.Root = value
			case "mode", "modes":
				modes = append(modes, value)
			case "strict":
				strict, err := strconv.ParseBool(value)
				if err != nil {
					return decl, true, errors.Wrapf(err, "invalid strict value %q", value)
				}

				decl.Strict = &strict
			default:
				return decl, true, errors.Newf("unknown directive option %q", key)
			}
		}
	}

	if len(modes) > 0 {
		ms, err := model.ParseModes(modes...)
		if err != nil {
			return decl, true, err
		}

		decl.Modes = ms
	}

	return decl, found, nil
}

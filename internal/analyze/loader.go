package analyze

import (
	"context"
	"go/ast"
	"go/token"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"

	"sealgen/internal/diagnostic"
	"sealgen/internal/errors"
	"sealgen/internal/logger"
	"sealgen/internal/model"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports |
	packages.NeedDeps

// Loader loads Go packages and turns their sealgen declarations into units.
type Loader struct {
	// Dir is the working directory for package patterns.
	Dir string

	manifest map[string][]model.Declaration
	order    []string
}

// NewLoader creates a Loader resolving patterns relative to dir.
func NewLoader(dir string) *Loader {
	return &Loader{
		Dir:      dir,
		manifest: make(map[string][]model.Declaration),
	}
}

// AddDeclarations registers manifest declarations for the packages matched
// by pattern. They are loaded together with the directive patterns.
func (l *Loader) AddDeclarations(pattern string, decls ...model.Declaration) {
	if _, ok := l.manifest[pattern]; !ok {
		l.order = append(l.order, pattern)
	}

	l.manifest[pattern] = append(l.manifest[pattern], decls...)
}

// Load loads patterns, scans them for directives, applies the registered
// manifest declarations and returns one unit per blueprint sorted by
// qualified name. Type errors in the loaded packages are logged, not
// returned, because a stale or missing generated file is expected.
func (l *Loader) Load(ctx context.Context, patterns ...string) ([]*Unit, error) {
	units := make(map[string]*Unit)

	if len(patterns) > 0 {
		pkgs, err := l.load(ctx, patterns...)
		if err != nil {
			return nil, err
		}

		for _, pkg := range pkgs {
			for _, u := range directiveUnits(pkg) {
				units[unitKey(pkg, u)] = u
			}
		}
	}

	for _, pattern := range l.order {
		pkgs, err := l.load(ctx, pattern)
		if err != nil {
			return nil, err
		}

		for _, pkg := range pkgs {
			for _, decl := range l.manifest[pattern] {
				u := buildUnit(pkg, decl)
				key := unitKey(pkg, u)

				if prev, ok := units[key]; ok && prev.Declaration.Source == "directive" {
					u.Diagnostics.AddInfo(diagnostic.CodeInvalidManifestEntry,
						"Blueprint '"+decl.Interface+"' is declared by both a directive and the manifest; the manifest entry wins.",
						diagnostic.Locus{Blueprint: decl.Interface})
				}

				units[key] = u
			}
		}
	}

	keys := make([]string, 0, len(units))
	for k := range units {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	out := make([]*Unit, len(keys))
	for i, k := range keys {
		out[i] = units[k]
	}

	return out, nil
}

func (l *Loader) load(ctx context.Context, patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:    LoadMode,
		Context: ctx,
		Dir:     l.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrapf(err, "loading packages %v", patterns)
	}

	var usable []*packages.Package

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Logger.Debugw("package error", "package", pkg.PkgPath, "error", e.Msg)
		}

		if pkg.Types == nil || len(pkg.Syntax) == 0 {
			logger.Logger.Warnw("skipping package without type information", "package", pkg.PkgPath)
			continue
		}

		usable = append(usable, pkg)
	}

	if len(usable) == 0 {
		return nil, errors.WithHint(errors.Newf("no loadable packages match %v", patterns),
			"check the package patterns and that the module builds")
	}

	return usable, nil
}

// directiveUnits builds a unit for every interface carrying a directive.
func directiveUnits(pkg *packages.Package) []*Unit {
	var units []*Unit

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)

				groups := []*ast.CommentGroup{ts.Doc}
				if len(gen.Specs) == 1 {
					groups = append(groups, gen.Doc)
				}

				lines := DirectiveLines(groups...)
				if len(lines) == 0 {
					continue
				}

				d, _, err := ParseDirectives(ts.Name.Name, lines)
				if err != nil {
					units = append(units, invalidUnit(pkg, d, err))
					continue
				}

				units = append(units, buildUnit(pkg, d))
			}
		}
	}

	return units
}

func invalidUnit(pkg *packages.Package, d model.Declaration, err error) *Unit {
	u := &Unit{
		Declaration: d,
		Relation:    Relation{},
		Diagnostics: &diagnostic.Diagnostics{},
	}

	var hints []string
	if h := errors.FlattenHints(err); h != "" {
		hints = append(hints, h)
	}

	u.Diagnostics.AddError(diagnostic.CodeInvalidDirective,
		"Invalid sealgen directive on '"+d.Interface+"' in package "+pkg.PkgPath+": "+err.Error(),
		diagnostic.Locus{Blueprint: d.Interface},
		hints...)

	return u
}

func unitKey(pkg *packages.Package, u *Unit) string {
	return pkg.PkgPath + "." + u.Name()
}

func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}

	return ""
}

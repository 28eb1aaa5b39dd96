package gen

import (
	"bytes"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"

	"sealgen/internal/common"
	"sealgen/internal/errors"
	"sealgen/internal/graph"
	"sealgen/internal/logger"
	"sealgen/internal/naming"
)

// DefaultSuffix is appended to the snake-cased root name.
const DefaultSuffix = "_sealed.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix is the generated filename suffix, e.g. "_sealed.go".
	Suffix string
	// DebugUnformatted writes a .unformatted.go sidecar when formatting fails.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix:           DefaultSuffix,
		DebugUnformatted: true,
	}
}

// Generator renders type graphs into Go source.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Suffix == "" {
		config.Suffix = DefaultSuffix
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs to.
	Dir string
	// Filename is the base name, e.g. "pet_sealed.go".
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path joins Dir and Filename.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Filename returns the output filename for a root name.
func (g *Generator) Filename(root string) string {
	return naming.Snake(root) + g.config.Suffix
}

// Generate renders one type graph. When formatting fails the unformatted
// source is returned together with the error.
func (g *Generator) Generate(tg *graph.TypeGraph) (*GeneratedFile, error) {
	if len(tg.Visitor.Branches) == 0 {
		return nil, errors.Newf("root %s has no variants", tg.Root.Name)
	}

	file := &GeneratedFile{
		Dir:      tg.Package.Dir,
		Filename: g.Filename(tg.Root.Name),
	}

	var buf bytes.Buffer
	if err := sealedTemplate.Execute(&buf, newTemplateData(tg)); err != nil {
		return nil, errors.Wrapf(err, "executing template for %s", tg.Root.Name)
	}

	if err := g.format(file, buf.Bytes()); err != nil {
		return file, err
	}

	return file, nil
}

// format fixes imports and gofmts src into file.Content. On failure the
// unformatted source is kept and a sidecar is written when enabled.
func (g *Generator) format(file *GeneratedFile, src []byte) error {
	formatted, err := imports.Process(file.Path(), src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	})
	if err != nil {
		if g.config.DebugUnformatted && file.Dir != "" {
			if werr := writeDebugUnformatted(file.Dir, file.Filename, src); werr != nil {
				logger.Logger.Warnw("writing unformatted sidecar", "file", file.Filename, "error", werr)
			}
		}

		file.Content = src

		return errors.Wrapf(err, "formatting %s (unformatted code returned)", file.Filename)
	}

	file.Content = formatted

	return nil
}

// templateData flattens the rendered type parameter lists so the template
// stays free of logic.
type templateData struct {
	*graph.TypeGraph

	// Decl and Args are the root parameter lists, e.g. "[T any]" and "[T]".
	Decl string
	Args string
	// DeclR and ArgsR append the visitor result parameter.
	DeclR   string
	ArgsR   string
	RootRef string
	R       string
	// Order lists the variants in handler order.
	Order     string
	ImportSet []importLine
	MapData   *functorData
	Protocols []matcherData
}

type importLine struct {
	Alias string
	Path  string
}

type functorData struct {
	*graph.Functor

	Decl       string
	Args       string
	T          string
	RootU      string
	AcceptArgs string
}

type matcherData struct {
	graph.Matcher

	Consumer bool
	Decl     string
	Args     string
	// VisitorArgs instantiates the func visitor; consumers use struct{}.
	VisitorArgs string
	AcceptArgs  string
	Order       string
}

func newTemplateData(tg *graph.TypeGraph) *templateData {
	tp := tg.Root.TypeParams
	r := tg.Visitor.Result

	exprs := make([]string, len(tg.Visitor.Branches))
	for i, b := range tg.Visitor.Branches {
		exprs[i] = b.Variant.Expr
	}

	d := &templateData{
		TypeGraph: tg,
		Decl:      tp.Decl(),
		Args:      tp.Args(),
		DeclR:     tp.Decl(r),
		ArgsR:     tp.Args(r),
		RootRef:   tg.Root.Ref(),
		R:         r,
		Order:     strings.Join(exprs, ", "),
	}

	for _, imp := range tg.Imports {
		line := importLine{Path: imp.Path}
		if imp.Name != "" && imp.Name != common.PkgAlias(imp.Path) {
			line.Alias = imp.Name
		}

		d.ImportSet = append(d.ImportSet, line)
	}

	if f := tg.Functor; f != nil && len(tp) == 1 {
		t := tp[0].Name
		rootU := tg.Root.RefWith(f.Target)

		d.MapData = &functorData{
			Functor:    f,
			Decl:       tp.DeclAs(f.Target),
			Args:       "[" + t + ", " + f.Target + "]",
			T:          t,
			RootU:      rootU,
			AcceptArgs: "[" + t + ", " + rootU + "]",
		}
	}

	for _, m := range tg.Matchers {
		md := matcherData{Matcher: m, Order: d.Order}

		if m.Flavor == graph.FlavorConsumer {
			md.Consumer = true
			md.Decl = tp.Decl()
			md.Args = tp.Args()
			md.VisitorArgs = tp.Args("struct{}")
		} else {
			md.Decl = tp.Decl(m.Result)
			md.Args = tp.Args(m.Result)
			md.VisitorArgs = md.Args
		}

		md.AcceptArgs = md.VisitorArgs
		d.Protocols = append(d.Protocols, md)
	}

	return d
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"sealgen/internal/diagnostic"
	"sealgen/internal/errors"
	"sealgen/internal/model"
)

// DefaultVersion is assumed when a manifest omits its version.
const DefaultVersion = "1"

// supportedVersions is the semver constraint a manifest version must meet.
const supportedVersions = "^1"

// Manifest declares blueprints without source directives.
type Manifest struct {
	Version    string  `yaml:"version"    toml:"version"`
	Blueprints []Entry `yaml:"blueprints" toml:"blueprints"`

	// path is the file the manifest was read from, if any.
	path string
}

// Entry declares one blueprint.
type Entry struct {
	// Package is a package pattern, e.g. "./examples/pets".
	Package   string        `yaml:"package"   toml:"package"`
	Interface string        `yaml:"interface" toml:"interface"`
	Root      string        `yaml:"root"      toml:"root"`
	Permits   StringOrArray `yaml:"permits"   toml:"permits"`
	Strict    *bool         `yaml:"strict"    toml:"strict"`
	Modes     StringOrArray `yaml:"modes"     toml:"modes"`
}

// hclManifest mirrors Manifest for gohcl, which has no scalar-or-list type.
type hclManifest struct {
	Version    string     `hcl:"version,optional"`
	Blueprints []hclEntry `hcl:"blueprint,block"`
}

type hclEntry struct {
	Interface string   `hcl:"interface,label"`
	Package   string   `hcl:"package"`
	Root      string   `hcl:"root,optional"`
	Permits   []string `hcl:"permits"`
	Strict    *bool    `hcl:"strict,optional"`
	Modes     []string `hcl:"modes,optional"`
}

// LoadFile reads and decodes the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", path)
	}

	return Parse(path, data)
}

// Parse decodes data according to the extension of name.
func Parse(name string, data []byte) (*Manifest, error) {
	var (
		m   *Manifest
		err error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		m, err = parseYAML(data)
	case ".toml":
		m, err = parseTOML(data)
	case ".hcl":
		m, err = parseHCL(name, data)
	default:
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedFormat, "manifest %s", name),
			"manifest files must end in .yaml, .yml, .toml or .hcl")
	}

	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrInvalidManifest), "decoding manifest %s", name)
	}

	m.path = name

	if m.Version == "" {
		m.Version = DefaultVersion
	}

	if err := checkVersion(m.Version); err != nil {
		return nil, errors.Wrapf(err, "manifest %s", name)
	}

	return m, nil
}

func parseYAML(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	return &m, nil
}

func parseTOML(data []byte) (*Manifest, error) {
	var m Manifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, err
	}

	return &m, nil
}

func parseHCL(name string, data []byte) (*Manifest, error) {
	var hm hclManifest
	if err := hclsimple.Decode(filepath.Base(name), data, nil, &hm); err != nil {
		return nil, err
	}

	m := &Manifest{Version: hm.Version}
	for _, b := range hm.Blueprints {
		m.Blueprints = append(m.Blueprints, Entry{
			Package:   b.Package,
			Interface: b.Interface,
			Root:      b.Root,
			Permits:   b.Permits,
			Strict:    b.Strict,
			Modes:     b.Modes,
		})
	}

	return m, nil
}

// checkVersion accepts any 1.x manifest version.
func checkVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidManifest, "version %q is not a semantic version", version)
	}

	c, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return errors.Wrap(err, "parsing version constraint")
	}

	if !c.Check(v) {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrInvalidManifest, "unsupported manifest version %s", version),
			"this sealgen reads manifests matching %s", supportedVersions)
	}

	return nil
}

// Source describes where the manifest came from, for diagnostics.
func (m *Manifest) Source() string {
	if m.path == "" {
		return "manifest"
	}

	return "manifest:" + m.path
}

// Validate checks every entry and reports problems as diagnostics.
func Validate(m *Manifest) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}
	seen := make(map[string]struct{})

	for i, e := range m.Blueprints {
		locus := diagnostic.Locus{Blueprint: e.Interface}

		if strings.TrimSpace(e.Interface) == "" {
			diags.AddError(diagnostic.CodeInvalidManifestEntry,
				fmt.Sprintf("Manifest entry %d has no interface name.", i+1), locus,
				"set interface to the blueprint interface, e.g. PetDef")

			continue
		}

		key := e.Package + "." + e.Interface
		if _, dup := seen[key]; dup {
			diags.AddError(diagnostic.CodeInvalidManifestEntry,
				fmt.Sprintf("Blueprint '%s' in package %s is declared more than once.", e.Interface, e.Package), locus,
				"remove the duplicate entry")
		}

		seen[key] = struct{}{}

		if e.Permits.IsEmpty() {
			diags.AddError(diagnostic.CodeInvalidManifestEntry,
				fmt.Sprintf("Blueprint '%s' permits no types.", e.Interface), locus,
				"list at least one permitted type under permits")
		}

		for _, p := range e.Permits {
			if _, err := model.ParsePermitRef(p); err != nil {
				diags.AddError(diagnostic.CodeInvalidManifestEntry,
					fmt.Sprintf("Blueprint '%s': %v.", e.Interface, err),
					diagnostic.Locus{Blueprint: e.Interface, Variant: p})
			}
		}

		if _, err := model.ParseModes(e.Modes...); err != nil {
			diags.AddError(diagnostic.CodeInvalidManifestEntry,
				fmt.Sprintf("Blueprint '%s': %v.", e.Interface, err), locus,
				"use function, consumer or both")
		}
	}

	return diags
}

// Group holds the declarations for one package pattern.
type Group struct {
	Package      string
	Declarations []model.Declaration
}

// Declarations converts the entries into declarations grouped by package,
// in manifest order. Entries that do not validate are skipped.
func (m *Manifest) Declarations() []Group {
	var groups []Group

	for _, e := range m.Blueprints {
		decl, ok := m.declaration(e)
		if !ok {
			continue
		}

		idx := slices.IndexFunc(groups, func(g Group) bool { return g.Package == e.Package })
		if idx < 0 {
			groups = append(groups, Group{Package: e.Package})
			idx = len(groups) - 1
		}

		groups[idx].Declarations = append(groups[idx].Declarations, decl)
	}

	return groups
}

func (m *Manifest) declaration(e Entry) (model.Declaration, bool) {
	if strings.TrimSpace(e.Interface) == "" || e.Permits.IsEmpty() {
		return model.Declaration{}, false
	}

	modes, err := model.ParseModes(e.Modes...)
	if err != nil {
		return model.Declaration{}, false
	}

	decl := model.Declaration{
		Interface: e.Interface,
		Root:      e.Root,
		Strict:    e.Strict,
		Modes:     modes,
		Source:    m.Source(),
	}

	for _, p := range e.Permits {
		ref, err := model.ParsePermitRef(p)
		if err != nil {
			return model.Declaration{}, false
		}

		decl.Permits = append(decl.Permits, ref)
	}

	return decl, true
}

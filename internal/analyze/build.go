package analyze

import (
	"fmt"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"sealgen/internal/diagnostic"
	"sealgen/internal/model"
)

// builder turns one declaration in one package into a unit.
type builder struct {
	pkg   *packages.Package
	decl  model.Declaration
	str   *TypeStringer
	diags *diagnostic.Diagnostics
}

func buildUnit(pkg *packages.Package, decl model.Declaration) *Unit {
	u := &Unit{
		Declaration: decl,
		Relation:    Relation{},
		Diagnostics: &diagnostic.Diagnostics{},
	}

	b := &builder{
		pkg:   pkg,
		decl:  decl,
		str:   NewTypeStringer(pkg.Types),
		diags: u.Diagnostics,
	}

	bp, tn, ok := b.blueprint()
	if !ok {
		return u
	}

	u.Blueprint = bp
	u.Variants = b.variants(bp, tn)

	return u
}

func (b *builder) declarationCode() string {
	if strings.HasPrefix(b.decl.Source, "manifest") {
		return diagnostic.CodeInvalidManifestEntry
	}

	return diagnostic.CodeInvalidDirective
}

func (b *builder) blueprint() (*model.Blueprint, *types.TypeName, bool) {
	name := b.decl.Interface
	locus := diagnostic.Locus{Blueprint: name}

	tn, ok := b.pkg.Types.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		b.diags.AddError(b.declarationCode(),
			fmt.Sprintf("Blueprint interface '%s' was not found in package %s.", name, b.pkg.PkgPath), locus)

		return nil, nil, false
	}

	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		b.diags.AddError(b.declarationCode(),
			fmt.Sprintf("Blueprint '%s' must be a named interface type.", name), locus)

		return nil, nil, false
	}

	iface, ok := named.Underlying().(*types.Interface)
	if !ok {
		b.diags.AddError(b.declarationCode(),
			fmt.Sprintf("Blueprint '%s' must be an interface, found %s.", name, named.Underlying()), locus)

		return nil, nil, false
	}

	if !iface.IsMethodSet() {
		b.diags.AddError(b.declarationCode(),
			fmt.Sprintf("Blueprint '%s' is a constraint interface and cannot be used as a value type.", name), locus)

		return nil, nil, false
	}

	rootName, ok := b.decl.RootName()
	if !ok {
		b.diags.AddError(diagnostic.CodeInvalidDirective,
			fmt.Sprintf("Cannot derive a root name for '%s'.", name), locus,
			"add name=<Root> to the directive", "or end the interface name in Def")

		return nil, nil, false
	}

	bp := &model.Blueprint{
		PkgPath:    b.pkg.PkgPath,
		PkgName:    b.pkg.Name,
		Dir:        packageDir(b.pkg),
		Name:       name,
		TypeParams: b.str.TypeParams(named.TypeParams()),
		Options:    b.decl.Options(),
	}

	bp.Options.RootName = rootName

	for i := range iface.NumMethods() {
		m := iface.Method(i)
		bp.Methods = append(bp.Methods, b.str.Method(m, m.Type().(*types.Signature)))
	}

	return bp, tn, true
}

func (b *builder) variants(bp *model.Blueprint, blueprint *types.TypeName) []*model.Variant {
	var bpParam *types.TypeParam
	if named, ok := types.Unalias(blueprint.Type()).(*types.Named); ok && named.TypeParams().Len() > 0 {
		bpParam = named.TypeParams().At(0)
	}

	imports := b.fileImports(blueprint.Pos())

	var out []*model.Variant

	for _, ref := range b.decl.Permits {
		locus := diagnostic.Locus{Blueprint: bp.Name, Variant: ref.String()}

		tn, access, err := b.resolve(ref, imports)
		if err != nil {
			b.diags.AddError(diagnostic.CodeUnknownVariant,
				fmt.Sprintf("Permitted type '%s' of blueprint '%s' cannot be resolved: %v.", ref, bp.Name, err), locus)

			continue
		}

		out = append(out, b.variant(tn, ref, access, bpParam))
	}

	return out
}

// fileImports maps import names to packages for the file declaring pos.
func (b *builder) fileImports(pos token.Pos) map[string]*packages.Package {
	out := make(map[string]*packages.Package)

	for _, imp := range b.pkg.Imports {
		out[imp.Name] = imp
	}

	for _, file := range b.pkg.Syntax {
		if pos < file.FileStart || pos > file.FileEnd {
			continue
		}

		for _, spec := range file.Imports {
			path, err := strconv.Unquote(spec.Path.Value)
			if err != nil {
				continue
			}

			imp, ok := b.pkg.Imports[path]
			if !ok {
				continue
			}

			name := imp.Name
			if spec.Name != nil {
				name = spec.Name.Name
			}

			out[name] = imp
		}
	}

	return out
}

func (b *builder) resolve(ref model.PermitRef, imports map[string]*packages.Package) (*types.TypeName, model.Accessibility, error) {
	scope := b.pkg.Types.Scope()

	if ref.Qualifier != "" {
		imp, ok := imports[ref.Qualifier]
		if !ok || imp.Types == nil {
			return nil, 0, fmt.Errorf("package %q is not imported", ref.Qualifier)
		}

		scope = imp.Types.Scope()
	}

	switch obj := scope.Lookup(ref.Name).(type) {
	case *types.TypeName:
		if obj.Exported() {
			return obj, model.AccessPublic, nil
		}

		return obj, model.AccessPackage, nil
	case nil:
	default:
		return nil, 0, fmt.Errorf("%s is not a type", ref.Name)
	}

	if ref.Qualifier == "" {
		if tn := b.localType(ref.Name); tn != nil {
			return tn, model.AccessPrivate, nil
		}
	}

	return nil, 0, fmt.Errorf("no type named %s", ref.Name)
}

// localType finds a type declared inside a function body.
func (b *builder) localType(name string) *types.TypeName {
	if b.pkg.TypesInfo == nil {
		return nil
	}

	for _, obj := range b.pkg.TypesInfo.Defs {
		tn, ok := obj.(*types.TypeName)
		if ok && tn.Name() == name && tn.Parent() != b.pkg.Types.Scope() && tn.Parent() != nil {
			return tn
		}
	}

	return nil
}

func (b *builder) variant(tn *types.TypeName, ref model.PermitRef, access model.Accessibility, bpParam *types.TypeParam) *model.Variant {
	v := &model.Variant{
		Name:    tn.Name(),
		Pointer: ref.Pointer,
		Access:  access,
	}

	if tn.Pkg() != nil {
		v.PkgPath = tn.Pkg().Path()
		v.PkgName = tn.Pkg().Name()
	}

	typ := tn.Type()

	if named, ok := types.Unalias(typ).(*types.Named); ok && named.TypeParams().Len() > 0 {
		v.TypeParams = b.str.TypeParams(named.TypeParams())

		if bpParam != nil && named.TypeParams().Len() == 1 {
			if inst, err := types.Instantiate(nil, named, []types.Type{bpParam}, false); err == nil {
				typ = inst
			}
		}
	}

	switch u := typ.Underlying().(type) {
	case *types.Interface:
		v.Abstract = true
	case *types.Struct:
		for i := range u.NumFields() {
			if f := u.Field(i); f.Embedded() {
				v.Embeds = append(v.Embeds, b.str.Ref(f.Type()).Expr)
			}
		}
	}

	self := typ
	if ref.Pointer {
		self = types.NewPointer(typ)
	}

	v.Self = b.str.Ref(self)
	v.Methods = b.methods(typ)
	v.Constructors = b.constructors(tn, bpParam)

	return v
}

// methods lists the method set of *typ, marking the methods missing from
// the value method set. Interfaces use their own method set.
func (b *builder) methods(typ types.Type) []model.Method {
	values := types.NewMethodSet(typ)

	all := values
	if !types.IsInterface(typ) {
		all = types.NewMethodSet(types.NewPointer(typ))
	}

	out := make([]model.Method, 0, all.Len())

	for i := range all.Len() {
		sel := all.At(i)
		fn := sel.Obj().(*types.Func)

		sig, ok := sel.Type().(*types.Signature)
		if !ok {
			sig = fn.Type().(*types.Signature)
		}

		m := b.str.Method(fn, sig)
		m.PointerReceiver = values.Lookup(fn.Pkg(), fn.Name()) == nil

		out = append(out, m)
	}

	return out
}

// constructors returns New<Name> from the variant's package, instantiated
// with the blueprint parameter when both are generic.
func (b *builder) constructors(tn *types.TypeName, bpParam *types.TypeParam) []model.Func {
	if tn.Pkg() == nil {
		return nil
	}

	fn, ok := tn.Pkg().Scope().Lookup("New" + tn.Name()).(*types.Func)
	if !ok {
		return nil
	}

	sig := fn.Type().(*types.Signature)
	f := model.Func{Name: fn.Name(), TypeParams: sig.TypeParams().Len()}

	if bpParam != nil && sig.TypeParams().Len() == 1 {
		if inst, err := types.Instantiate(nil, sig, []types.Type{bpParam}, false); err == nil {
			sig = inst.(*types.Signature)
		}
	}

	f.Params = b.str.Params(sig.Params())
	f.Results = b.str.Results(sig.Results())

	return []model.Func{f}
}

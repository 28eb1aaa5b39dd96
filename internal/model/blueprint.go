package model

import "strings"

// Blueprint is the interface being sealed.
type Blueprint struct {
	PkgPath string
	PkgName string
	// Dir is the package directory; generated files are written there.
	Dir  string
	Name string
	// TypeParams are the interface's type parameters, in declaration order.
	TypeParams []TypeParam
	// Methods are the members every variant must implement. Go interfaces
	// have no default methods, so all of them are delegated.
	Methods []Method
	Options Options
}

// QualifiedName returns "pkgpath.Name".
func (b *Blueprint) QualifiedName() string {
	return qualify(b.PkgPath, b.Name)
}

// RootName is the name of the generated root interface. Without an explicit
// option it falls back to "<Name>Sealed".
func (b *Blueprint) RootName() string {
	if b.Options.RootName != "" {
		return b.Options.RootName
	}

	return b.Name + "Sealed"
}

// Generic reports whether the blueprint declares a type parameter.
func (b *Blueprint) Generic() bool {
	return len(b.TypeParams) > 0
}

// TypeParam returns the first type parameter, if any.
func (b *Blueprint) TypeParam() (TypeParam, bool) {
	if len(b.TypeParams) == 0 {
		return TypeParam{}, false
	}

	return b.TypeParams[0], true
}

// Expr renders the blueprint instantiated with its own parameters,
// e.g. "PetDef" or "ResultDef[T]".
func (b *Blueprint) Expr() string {
	if len(b.TypeParams) == 0 {
		return b.Name
	}

	names := make([]string, len(b.TypeParams))
	for i, p := range b.TypeParams {
		names[i] = p.Name
	}

	return b.Name + "[" + strings.Join(names, ", ") + "]"
}

// Declares reports whether the blueprint has a method with the given name.
func (b *Blueprint) Declares(name string) bool {
	for _, m := range b.Methods {
		if m.Name == name {
			return true
		}
	}

	return false
}

// Variant is one permitted implementation of a blueprint.
type Variant struct {
	PkgPath string
	PkgName string
	Name    string
	// Pointer is set when the variant is permitted as *Name.
	Pointer bool
	Access  Accessibility
	// Embeds lists embedded named types; a variant without embeds is final.
	Embeds   []string
	Abstract bool
	// TypeParams are the variant's own type parameters.
	TypeParams []TypeParam
	// Methods is the method set of *Name; PointerReceiver marks the ones
	// missing from the value method set.
	Methods []Method
	// Constructors holds New<Name> when the package declares one.
	Constructors []Func
	// Self is the variant type as seen from the blueprint package. When empty
	// it is derived from the other fields.
	Self TypeRef
}

// Final reports whether the variant embeds no other named type.
func (v *Variant) Final() bool {
	return len(v.Embeds) == 0
}

// Generic reports whether the variant declares a type parameter.
func (v *Variant) Generic() bool {
	return len(v.TypeParams) > 0
}

// QualifiedName returns "pkgpath.Name".
func (v *Variant) QualifiedName() string {
	return qualify(v.PkgPath, v.Name)
}

// DisplayName is the name used in messages, with a leading * for pointers.
func (v *Variant) DisplayName() string {
	if v.Pointer {
		return "*" + v.Name
	}

	return v.Name
}

// TypeRef renders the variant type relative to fromPkg. typeArg binds the
// variant's type parameter when it has one.
func (v *Variant) TypeRef(fromPkg, typeArg string) TypeRef {
	if v.Self.Expr != "" {
		return v.Self
	}

	ref := TypeRef{}
	expr := v.Name

	if v.PkgPath != "" && v.PkgPath != fromPkg {
		expr = v.PkgName + "." + expr
		ref.Imports = []Import{{Path: v.PkgPath, Name: v.PkgName}}
	}

	if v.Generic() {
		arg := typeArg
		if arg == "" {
			arg = v.TypeParams[0].Name
		}

		expr += "[" + arg + "]"
	}

	if v.Pointer {
		expr = "*" + expr
	}

	ref.Expr = expr

	return ref
}

// MethodsNamed returns every method whose name equals name ignoring case.
func (v *Variant) MethodsNamed(name string) []Method {
	var out []Method

	for _, m := range v.Methods {
		if strings.EqualFold(m.Name, name) {
			out = append(out, m)
		}
	}

	return out
}

// Constructor returns New<Name> if present.
func (v *Variant) Constructor() (Func, bool) {
	want := "New" + v.Name

	for _, f := range v.Constructors {
		if f.Name == want {
			return f, true
		}
	}

	return Func{}, false
}

func qualify(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}

	return pkgPath + "." + name
}

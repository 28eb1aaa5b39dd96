package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethod_Signature(t *testing.T) {
	tests := []struct {
		name     string
		method   Method
		expected string
		results  string
	}{
		{
			name:     "no params",
			method:   Method{Name: "Sound", Results: []TypeRef{Ref("string")}},
			expected: "Sound()",
			results:  "string",
		},
		{
			name: "variadic",
			method: Method{
				Name:     "Log",
				Params:   []Param{{Name: "level", Type: Ref("int")}, {Name: "args", Type: Ref("[]any")}},
				Variadic: true,
			},
			expected: "Log(int, ...any)",
			results:  "",
		},
		{
			name:     "multiple results",
			method:   Method{Name: "Get", Results: []TypeRef{Ref("T"), Ref("error")}},
			expected: "Get()",
			results:  "(T, error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.method.Signature())
			assert.Equal(t, tt.results, tt.method.ResultList())
		})
	}
}

func TestParseModes(t *testing.T) {
	tests := []struct {
		in       []string
		expected Modes
		wantErr  bool
	}{
		{nil, ModeBoth, false},
		{[]string{"function"}, ModeFunction, false},
		{[]string{"Consumer"}, ModeConsumer, false},
		{[]string{"function,consumer"}, ModeBoth, false},
		{[]string{"function", "consumer"}, ModeBoth, false},
		{[]string{"both"}, ModeBoth, false},
		{[]string{"supplier"}, 0, true},
	}

	for _, tt := range tests {
		got, err := ParseModes(tt.in...)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.in)
			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "%v", tt.in)
	}

	assert.True(t, ModeBoth.Has(ModeConsumer))
	assert.False(t, ModeFunction.Has(ModeConsumer))
	assert.Equal(t, "both", ModeBoth.String())
}

func TestParsePermitRef(t *testing.T) {
	ref, err := ParsePermitRef("*other.Bird")
	require.NoError(t, err)
	assert.Equal(t, PermitRef{Qualifier: "other", Name: "Bird", Pointer: true}, ref)
	assert.Equal(t, "*other.Bird", ref.String())

	ref, err = ParsePermitRef("Dog")
	require.NoError(t, err)
	assert.Equal(t, PermitRef{Name: "Dog"}, ref)

	_, err = ParsePermitRef("*")
	assert.Error(t, err)

	_, err = ParsePermitRef("List[int]")
	assert.Error(t, err)
}

func TestDeclaration_Options(t *testing.T) {
	lenient := false

	d := Declaration{Interface: "PetDef", Strict: &lenient, Modes: ModeFunction}
	opts := d.Options()

	assert.Equal(t, "Pet", opts.RootName)
	assert.False(t, opts.Strict)
	assert.Equal(t, ModeFunction, opts.Modes)

	_, ok := Declaration{Interface: "Shape"}.RootName()
	assert.False(t, ok)

	name, ok := Declaration{Interface: "Shape", Root: "AnyShape"}.RootName()
	assert.True(t, ok)
	assert.Equal(t, "AnyShape", name)

	assert.True(t, Declaration{Interface: "ShapeDef"}.Options().Strict)
}

func TestVariant_TypeRef(t *testing.T) {
	local := &Variant{PkgPath: "example.com/pets", PkgName: "pets", Name: "Dog"}
	assert.Equal(t, "Dog", local.TypeRef("example.com/pets", "").Expr)

	foreign := &Variant{PkgPath: "example.com/birds", PkgName: "birds", Name: "Parrot", Pointer: true}
	ref := foreign.TypeRef("example.com/pets", "")
	assert.Equal(t, "*birds.Parrot", ref.Expr)
	assert.Equal(t, []Import{{Path: "example.com/birds", Name: "birds"}}, ref.Imports)

	generic := &Variant{Name: "Success", TypeParams: []TypeParam{{Name: "V"}}}
	assert.Equal(t, "Success[T]", generic.TypeRef("", "T").Expr)
	assert.Equal(t, "Success[V]", generic.TypeRef("", "").Expr)
}

func TestBlueprint_Expr(t *testing.T) {
	bp := &Blueprint{
		PkgPath:    "example.com/result",
		Name:       "ResultDef",
		TypeParams: []TypeParam{{Name: "T", Constraint: Ref("any")}},
		Methods:    []Method{{Name: "Describe"}, {Name: "IsOk"}},
	}

	assert.Equal(t, "ResultDef[T]", bp.Expr())
	assert.Equal(t, "example.com/result.ResultDef", bp.QualifiedName())
	assert.True(t, bp.Generic())
	assert.True(t, bp.Declares("Describe"))
	assert.False(t, bp.Declares("String"))
	assert.Equal(t, "ResultDefSealed", bp.RootName())

	bp.Options.RootName = "Result"
	assert.Equal(t, "Result", bp.RootName())

	tp, ok := bp.TypeParam()
	require.True(t, ok)
	assert.Equal(t, "T", tp.Self().Expr)
}

func TestAccessibility_String(t *testing.T) {
	assert.Equal(t, "Public", AccessPublic.String())
	assert.Equal(t, "Package", AccessPackage.String())
	assert.Equal(t, "Private", AccessPrivate.String())
	assert.Equal(t, "Accessibility(7)", Accessibility(7).String())
}

func TestStructuralRelation(t *testing.T) {
	rel := RelationOrDefault(nil)

	assert.True(t, rel.Identical(Ref("int"), Ref("int")))
	assert.False(t, rel.Identical(Ref("int"), Ref("int64")))
	assert.True(t, rel.AssignableTo(Ref("Dog"), Ref("any")))
	assert.False(t, rel.AssignableTo(Ref("Dog"), Ref("Cat")))
}

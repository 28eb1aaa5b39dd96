package analyze

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealgen/internal/model"
)

const stringerSrc = `package shapes

import "strings"

type Box[T any] struct{ v T }

func (b Box[T]) Get() T { return b.v }
func (b *Box[T]) Set(v T) { b.v = v }
func (b Box[T]) Write(w *strings.Builder, parts ...string) (int, error) { return 0, nil }

func NewBox[T any](v T) Box[T] { return Box[T]{v: v} }

type Holder[T comparable] interface{ Get() T }
`

func checkSource(t *testing.T, src string) *types.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "shapes.go", src, parser.ParseComments)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check("example.com/shapes", fset, []*ast.File{file}, nil)
	require.NoError(t, err)

	return pkg
}

func TestTypeStringer_Ref(t *testing.T) {
	pkg := checkSource(t, stringerSrc)
	s := NewTypeStringer(pkg)

	box := pkg.Scope().Lookup("Box").Type()
	ref := s.Ref(types.NewPointer(box))

	assert.Equal(t, "*Box[T any]", ref.Expr)
	assert.Empty(t, ref.Imports)
	assert.Equal(t, types.NewPointer(box).String(), ref.Handle.(types.Type).String())
}

func TestTypeStringer_MethodImports(t *testing.T) {
	pkg := checkSource(t, stringerSrc)
	s := NewTypeStringer(pkg)

	named := pkg.Scope().Lookup("Box").Type().(*types.Named)

	var write model.Method

	for i := range named.NumMethods() {
		fn := named.Method(i)
		if fn.Name() == "Write" {
			write = s.Method(fn, fn.Type().(*types.Signature))
		}
	}

	assert.Equal(t, "Write(*strings.Builder, ...string)", write.Signature())
	assert.Equal(t, "(int, error)", write.ResultList())
	assert.True(t, write.Variadic)
	assert.Equal(t, "example.com/shapes", write.PkgPath)
	assert.Equal(t, []model.Import{{Path: "strings", Name: "strings"}}, write.Params[0].Type.Imports)
}

func TestTypeStringer_TypeParams(t *testing.T) {
	pkg := checkSource(t, stringerSrc)
	s := NewTypeStringer(pkg)

	holder := pkg.Scope().Lookup("Holder").Type().(*types.Named)
	tps := s.TypeParams(holder.TypeParams())

	require.Len(t, tps, 1)
	assert.Equal(t, "T", tps[0].Name)
	assert.Equal(t, "comparable", tps[0].Constraint.Expr)
	assert.Equal(t, "T", tps[0].Self().Expr)
}

func TestRelation(t *testing.T) {
	pkg := checkSource(t, stringerSrc)
	s := NewTypeStringer(pkg)

	holder := pkg.Scope().Lookup("Holder").Type().(*types.Named)
	param := holder.TypeParams().At(0)

	box, err := types.Instantiate(nil, pkg.Scope().Lookup("Box").Type(), []types.Type{param}, false)
	require.NoError(t, err)

	boxAgain, err := types.Instantiate(nil, pkg.Scope().Lookup("Box").Type(), []types.Type{param}, false)
	require.NoError(t, err)

	rel := Relation{}
	assert.True(t, rel.Identical(s.Ref(box), s.Ref(boxAgain)))
	assert.False(t, rel.Identical(s.Ref(box), s.Ref(types.NewPointer(box))))

	anyRef := s.Ref(types.Universe.Lookup("any").Type())
	assert.True(t, rel.AssignableTo(s.Ref(box), anyRef))
	assert.False(t, rel.AssignableTo(anyRef, s.Ref(box)))

	// without handles the expressions decide
	assert.True(t, rel.Identical(model.Ref("Box[T]"), model.Ref("Box[T]")))
}

func TestBuilder_Methods(t *testing.T) {
	pkg := checkSource(t, stringerSrc)
	b := &builder{str: NewTypeStringer(pkg)}

	box := pkg.Scope().Lookup("Box").Type()
	methods := b.methods(box)

	byName := map[string]model.Method{}
	for _, m := range methods {
		byName[m.Name] = m
	}

	require.Len(t, byName, 3)
	assert.False(t, byName["Get"].PointerReceiver)
	assert.True(t, byName["Set"].PointerReceiver)
}

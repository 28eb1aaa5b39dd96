package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sealgen/internal/model"
)

func TestTypeParams_Render(t *testing.T) {
	var none TypeParams

	assert.Equal(t, "", none.Decl())
	assert.Equal(t, "[R any]", none.Decl("R"))
	assert.Equal(t, "[R]", none.Args("R"))

	tp := TypeParams{{Name: "T", Constraint: model.Ref("comparable")}}

	assert.Equal(t, "[T comparable]", tp.Decl())
	assert.Equal(t, "[T comparable, R any]", tp.Decl("R"))
	assert.Equal(t, "[T comparable, U comparable]", tp.DeclAs("U"))
	assert.Equal(t, "[T, R]", tp.Args("R"))
}

func TestRoot_Ref(t *testing.T) {
	r := Root{Name: "Result", TypeParams: TypeParams{{Name: "T"}}}

	assert.Equal(t, "Result[T]", r.Ref())
	assert.Equal(t, "Result[U]", r.RefWith("U"))
	assert.Equal(t, "Pet", Root{Name: "Pet"}.Ref())
}

func TestDelegate_Render(t *testing.T) {
	d := Delegate{
		Name:     "Log",
		Params:   []Param{{Name: "level", Type: "int"}, {Name: "args", Type: "[]any"}},
		Variadic: true,
		Results:  []string{"int", "error"},
	}

	assert.Equal(t, "level int, args ...any", d.ParamDecl())
	assert.Equal(t, "level, args...", d.CallArgs())
	assert.Equal(t, " (int, error)", d.ResultDecl())

	assert.Equal(t, " string", Delegate{Results: []string{"string"}}.ResultDecl())
	assert.Equal(t, "", Delegate{}.ResultDecl())
}

func TestHandler_Expr(t *testing.T) {
	in := VariantRef{Name: "Dog", Expr: "Dog"}

	assert.Equal(t, "func(Dog) R", Handler{Input: in, Output: "R"}.Expr())
	assert.Equal(t, "func(Dog)", Handler{Input: in}.Expr())
	assert.Equal(t, "consumer", FlavorConsumer.String())
}

package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealgen/internal/graph"
	"sealgen/internal/model"
	"sealgen/internal/synth"
)

func petGraph(t *testing.T, modes model.Modes) *graph.TypeGraph {
	t.Helper()

	bp := &model.Blueprint{
		PkgPath: "example.com/pets",
		PkgName: "pets",
		Name:    "PetDef",
		Methods: []model.Method{
			{Name: "Sound", Results: []model.TypeRef{model.Ref("string")}},
			{Name: "Feed", Params: []model.Param{{Name: "grams", Type: model.Ref("int")}}},
		},
		Options: model.Options{RootName: "Pet", Strict: true, Modes: modes},
	}

	variants := []*model.Variant{
		{PkgPath: bp.PkgPath, PkgName: "pets", Name: "Dog"},
		{PkgPath: bp.PkgPath, PkgName: "pets", Name: "Cat", Pointer: true},
	}

	g, diags := synth.Synthesize(bp, variants, nil)
	require.True(t, diags.IsValid())

	return g
}

func resultGraph(t *testing.T) *graph.TypeGraph {
	t.Helper()

	tp := model.TypeParam{Name: "T", Constraint: model.Ref("any")}
	bp := &model.Blueprint{
		PkgPath:    "example.com/result",
		PkgName:    "result",
		Name:       "ResultDef",
		TypeParams: []model.TypeParam{tp},
		Methods:    []model.Method{{Name: "IsOk", Results: []model.TypeRef{model.Ref("bool")}}},
		Options:    model.Options{RootName: "Result", Strict: true, Modes: model.ModeBoth},
	}

	variants := []*model.Variant{
		{
			PkgPath:    bp.PkgPath,
			PkgName:    "result",
			Name:       "Success",
			TypeParams: []model.TypeParam{tp},
			Methods:    []model.Method{{Name: "Get", Results: []model.TypeRef{model.Ref("T")}}},
			Constructors: []model.Func{{
				Name:       "NewSuccess",
				TypeParams: 1,
				Params:     []model.Param{{Name: "v", Type: model.Ref("T")}},
				Results:    []model.TypeRef{model.Ref("Success[T]")},
			}},
		},
		{PkgPath: bp.PkgPath, PkgName: "result", Name: "Failure"},
	}

	g, diags := synth.Synthesize(bp, variants, nil)
	require.Equal(t, 0, diags.Len())

	return g
}

func generate(t *testing.T, g *graph.TypeGraph) string {
	t.Helper()

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(g)
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.AllErrors)
	require.NoError(t, err, string(file.Content))

	return string(file.Content)
}

func TestGenerate_Pet(t *testing.T) {
	g := petGraph(t, model.ModeBoth)

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(g)
	require.NoError(t, err)
	assert.Equal(t, "pet_sealed.go", file.Filename)

	src := generate(t, g)

	for _, want := range []string{
		"// Code generated by sealgen. DO NOT EDIT.",
		"package pets",
		"type Pet interface {\n\tPetDef\n\tdispatchPet(d petDispatcher)\n}",
		"type PetVisitor[R any] interface {\n\tOnCat(v *Cat) R\n\tOnDog(v Dog) R\n}",
		"func AcceptPet[R any](root Pet, v PetVisitor[R]) R {",
		"type petDogWrapper struct {\n\tvalue Dog\n}",
		"func (w petDogWrapper) Sound() string {\n\treturn w.value.Sound()\n}",
		"func (w petDogWrapper) Feed(grams int) {\n\tw.value.Feed(grams)\n}",
		"func (w petDogWrapper) String() string {\n\treturn fmt.Sprint(w.value)\n}",
		"func (w petCatWrapper) Unwrap() *Cat {",
		"func PetFromDog(v Dog) Pet {",
		`panic("sealgen: PetFromCat: source cannot be nil")`,
		"func ReturningPet[R any]() PetMatcherStage0[R] {",
		"OnCat(f func(*Cat) R) PetMatcherStage1[R]",
		"OnDog(f func(Dog) R) PetMatcherTerminal[R]",
		"AsFunction() func(Pet) R",
		"func MatchPet() PetConsumerStage0 {",
		"OnDog(f func(Dog)) PetConsumerTerminal",
		"AsConsumer() func(Pet)",
		"\tAcceptPet[struct{}](root, v)",
		"func petDiscard[V any](h func(V)) func(V) struct{} {",
		`"fmt"`,
	} {
		assert.Contains(t, src, want)
	}

	assert.NotContains(t, src, "FlatMap")
}

func TestGenerate_Modes(t *testing.T) {
	src := generate(t, petGraph(t, model.ModeFunction))

	assert.Contains(t, src, "ReturningPet")
	assert.NotContains(t, src, "MatchPet")
	assert.NotContains(t, src, "petDiscard")

	src = generate(t, petGraph(t, 0))
	assert.NotContains(t, src, "ReturningPet")
	assert.NotContains(t, src, "petFuncVisitor")
}

func TestGenerate_Result(t *testing.T) {
	src := generate(t, resultGraph(t))

	for _, want := range []string{
		"type Result[T any] interface {\n\tResultDef[T]\n\tdispatchResult(d resultDispatcher[T])\n}",
		"type ResultVisitor[T any, R any] interface {\n\tOnFailure(v Failure) R\n\tOnSuccess(v Success[T]) R\n}",
		"func AcceptResult[T any, R any](root Result[T], v ResultVisitor[T, R]) R {",
		"type resultFailureWrapper[T any] struct {",
		"func ResultFromFailure[T any](v Failure) Result[T] {",
		"func ResultFromSuccess[T any](v Success[T]) Result[T] {",
		"func FlatMapResult[T any, U any](root Result[T], f func(T) Result[U]) Result[U] {",
		"return AcceptResult[T, Result[U]](root, resultFlatMapVisitor[T, U]{f: f})",
		"return ResultFromSuccess(NewSuccess(f(v)))",
		"return m.f(v.Get())",
		"return ResultFromFailure[U](v)",
		"func ReturningResult[T any, R any]() ResultMatcherStage0[T, R] {",
		"AsFunction() func(Result[T]) R",
		"func MatchResult[T any]() ResultConsumerStage0[T] {",
		"\tAcceptResult[T, struct{}](root, v)",
	} {
		assert.Contains(t, src, want)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(t, resultGraph(t))
	b := generate(t, resultGraph(t))

	assert.Equal(t, a, b)
}

func TestGenerate_NoVariants(t *testing.T) {
	g := petGraph(t, model.ModeBoth)
	g.Visitor.Branches = nil

	_, err := NewGenerator(DefaultGeneratorConfig()).Generate(g)
	require.Error(t, err)
}

func TestGenerate_UnformattedSidecar(t *testing.T) {
	dir := t.TempDir()

	g := petGraph(t, model.ModeBoth)
	g.Package.Dir = dir
	g.Wrappers[0].Delegates[0].Results = []string{"not a type{"}

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(g)
	require.Error(t, err)
	require.NotNil(t, file)

	assert.FileExists(t, filepath.Join(dir, "pet_sealed.unformatted.go"))
	assert.NoFileExists(t, filepath.Join(dir, "pet_sealed.go"))
}

func TestGenerator_Filename(t *testing.T) {
	g := NewGenerator(GeneratorConfig{Suffix: ".gen.go"})

	assert.Equal(t, "http_result.gen.go", g.Filename("HTTPResult"))
	assert.Equal(t, "pet_sealed.go", NewGenerator(GeneratorConfig{}).Filename("Pet"))
}

func TestWriteFilesAndStale(t *testing.T) {
	dir := t.TempDir()
	files := []GeneratedFile{
		{Dir: filepath.Join(dir, "a"), Filename: "pet_sealed.go", Content: []byte("package a\n")},
		{Dir: filepath.Join(dir, "b"), Filename: "result_sealed.go", Content: []byte("package b\n")},
	}

	stale, err := Stale(files)
	require.NoError(t, err)
	assert.Len(t, stale, 2)

	require.NoError(t, WriteFiles(files))

	stale, err = Stale(files)
	require.NoError(t, err)
	assert.Empty(t, stale)

	require.NoError(t, os.WriteFile(files[1].Path(), []byte("package b // edited\n"), 0o644))

	stale, err = Stale(files)
	require.NoError(t, err)
	assert.Equal(t, []string{files[1].Path()}, stale)
}

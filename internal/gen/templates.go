package gen

import "text/template"

var sealedTemplate = template.Must(template.New("sealed").Parse(`// Code generated by sealgen. DO NOT EDIT.

package {{.Package.Name}}
{{if .ImportSet}}
import (
{{range .ImportSet}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
// {{.Root.Name}} is the sealed form of {{.Blueprint}}. Its variants are
// {{.Order}}.
type {{.Root.Name}}{{.Decl}} interface {
	{{.Root.Embeds}}
	{{.Root.Dispatch}}(d {{.Visitor.Dispatcher}}{{.Args}})
}

// {{.Visitor.Name}} has one method per variant of {{.Root.Name}}.
type {{.Visitor.Name}}{{.DeclR}} interface {
{{range .Visitor.Branches}}	{{.Method}}(v {{.Variant.Expr}}) {{$.R}}
{{end}}}

// {{.Root.Accept}} calls the method of v matching the variant held by root.
func {{.Root.Accept}}{{.DeclR}}(root {{.RootRef}}, v {{.Visitor.Name}}{{.ArgsR}}) {{.R}} {
	if root == nil {
		panic("sealgen: {{.Root.Accept}}: root cannot be nil")
	}

	a := &{{.Visitor.Adapter}}{{.ArgsR}}{visitor: v}
	root.{{.Root.Dispatch}}(a)

	return a.result
}

type {{.Visitor.Dispatcher}}{{.Decl}} interface {
{{range .Visitor.Branches}}	{{.Dispatch}}(v {{.Variant.Expr}})
{{end}}}

type {{.Visitor.Adapter}}{{.DeclR}} struct {
	visitor {{.Visitor.Name}}{{.ArgsR}}
	result  {{.R}}
}
{{range .Visitor.Branches}}
func (a *{{$.Visitor.Adapter}}{{$.ArgsR}}) {{.Dispatch}}(v {{.Variant.Expr}}) {
	a.result = a.visitor.{{.Method}}(v)
}
{{end}}{{range .Wrappers}}{{$w := .}}
// {{.Name}} holds a {{.Variant.Expr}} as a {{$.Root.Name}}.
type {{.Name}}{{$.Decl}} struct {
	value {{.Variant.Expr}}
}

func (w {{.Name}}{{$.Args}}) {{$.Root.Dispatch}}(d {{$.Visitor.Dispatcher}}{{$.Args}}) {
	d.{{.Branch}}(w.value)
}
{{range .Delegates}}
func (w {{$w.Name}}{{$.Args}}) {{.Name}}({{.ParamDecl}}){{.ResultDecl}} {
	{{if .Results}}return {{end}}w.value.{{.Name}}({{.CallArgs}})
}
{{end}}{{if .Stringer}}
func (w {{.Name}}{{$.Args}}) String() string {
	return fmt.Sprint(w.value)
}
{{end}}{{if .Unwrap}}
// Unwrap returns the held {{.Variant.Expr}}.
func (w {{.Name}}{{$.Args}}) Unwrap() {{.Variant.Expr}} {
	return w.value
}
{{end}}{{end}}{{range .Factories}}
// {{.Name}} wraps v as a {{$.RootRef}}.
func {{.Name}}{{$.Decl}}(v {{.Variant.Expr}}) {{$.RootRef}} {
{{if .RejectsNil}}	if v == nil {
		panic("sealgen: {{.Name}}: source cannot be nil")
	}

{{end}}	return {{.Wrapper}}{{$.Args}}{value: v}
}
{{end}}{{with .MapData}}
// {{.FlatMap}} applies f to the value held by a {{.Variant.Expr}}. Every other
// variant is passed through unchanged.
func {{.FlatMap}}{{.Decl}}(root {{$.RootRef}}, f func({{.T}}) {{.RootU}}) {{.RootU}} {
	return {{$.Root.Accept}}{{.AcceptArgs}}(root, {{.Visitor}}{{.Args}}{f: f})
}

// {{.Map}} applies f to the value held by a {{.Variant.Expr}} and wraps the
// result with {{.Constructor}}.
func {{.Map}}{{.Decl}}(root {{$.RootRef}}, f func({{.T}}) {{.Target}}) {{.RootU}} {
	return {{.FlatMap}}(root, func(v {{.T}}) {{.RootU}} {
		return {{.Factory}}({{.Constructor}}(f(v)))
	})
}

type {{.Visitor}}{{.Decl}} struct {
	f func({{.T}}) {{.RootU}}
}

func (m {{.Visitor}}{{.Args}}) {{.Branch.Method}}(v {{.Variant.Expr}}) {{.RootU}} {
	return m.f(v.{{.Accessor}}())
}
{{$f := .}}{{range .PassThrough}}
func (m {{$f.Visitor}}{{$f.Args}}) {{.Branch.Method}}(v {{.Branch.Variant.Expr}}) {{$f.RootU}} {
	return {{.Factory}}[{{$f.Target}}](v)
}
{{end}}{{end}}{{if .Visitor.FuncVisitor}}
type {{.Visitor.FuncVisitor}}{{.DeclR}} struct {
{{range .Visitor.Branches}}	{{.Field}} func({{.Variant.Expr}}) {{$.R}}
{{end}}}
{{range .Visitor.Branches}}
func (f {{$.Visitor.FuncVisitor}}{{$.ArgsR}}) {{.Method}}(v {{.Variant.Expr}}) {{$.R}} {
	return f.{{.Field}}(v)
}
{{end}}{{end}}{{range .Protocols}}{{$m := .}}
{{if .Consumer}}// {{.Entry}} starts an exhaustive side-effecting match over {{$.RootRef}}.
{{else}}// {{.Entry}} starts an exhaustive match over {{$.RootRef}} producing {{.Result}}.
{{end}}// Handlers are supplied in the order {{.Order}}.
// The builder is not safe for concurrent use.
func {{.Entry}}{{.Decl}}() {{(index .Stages 0).Name}}{{.Args}} {
	return &{{.Builder}}{{.Args}}{}
}
{{range .Stages}}
// {{.Name}} expects the handler for {{.Handler.Input.Expr}}.
type {{.Name}}{{$m.Decl}} interface {
	{{.Transition}}(f {{.Handler.Expr}}) {{.Next}}{{$m.Args}}
}
{{end}}
// {{.Terminal.Name}} is reached once every variant has a handler.
type {{.Terminal.Name}}{{.Decl}} interface {
	{{.Terminal.Finish}}() {{.Terminal.Callable}}
}

type {{.Builder}}{{.Decl}} struct {
{{range .Stages}}	{{.Field}} {{.Handler.Expr}}
{{end}}}
{{range .Stages}}
func (b *{{$m.Builder}}{{$m.Args}}) {{.Transition}}(f {{.Handler.Expr}}) {{.Next}}{{$m.Args}} {
	if f == nil {
		panic("sealgen: {{.Transition}}: handler cannot be nil")
	}

	b.{{.Field}} = f

	return b
}
{{end}}
func (b *{{.Builder}}{{.Args}}) {{.Terminal.Finish}}() {{.Terminal.Callable}} {
	v := {{$.Visitor.FuncVisitor}}{{.VisitorArgs}}{
{{range .Stages}}		{{.Field}}: {{if $m.Consumer}}{{$m.Adapter}}(b.{{.Field}}){{else}}b.{{.Field}}{{end}},
{{end}}	}

	return func(root {{$.RootRef}}){{if not .Consumer}} {{.Result}}{{end}} {
		{{if not .Consumer}}return {{end}}{{$.Root.Accept}}{{.AcceptArgs}}(root, v)
	}
}
{{if .Consumer}}
func {{.Adapter}}[V any](h func(V)) func(V) struct{} {
	return func(v V) struct{} {
		h(v)

		return struct{}{}
	}
}
{{end}}{{end}}`))

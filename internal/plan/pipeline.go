package plan

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"sealgen/internal/analyze"
	"sealgen/internal/diagnostic"
	"sealgen/internal/errors"
	"sealgen/internal/gen"
	"sealgen/internal/graph"
	"sealgen/internal/logger"
	"sealgen/internal/model"
	"sealgen/internal/synth"
	"sealgen/internal/validate"
)

// Config holds configuration for a pipeline run.
type Config struct {
	// Concurrency bounds how many blueprints are processed at once.
	Concurrency int
	// Strict overrides every blueprint's strict mode when set.
	Strict *bool
	// Generator configures code emission.
	Generator gen.GeneratorConfig
}

// DefaultConfig returns one worker per CPU and the default generator.
func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.GOMAXPROCS(0),
		Generator:   gen.DefaultGeneratorConfig(),
	}
}

// Pipeline validates, synthesizes and renders blueprints.
type Pipeline struct {
	config    Config
	generator *gen.Generator
}

// NewPipeline creates a new Pipeline.
func NewPipeline(config Config) *Pipeline {
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}

	return &Pipeline{
		config:    config,
		generator: gen.NewGenerator(config.Generator),
	}
}

// Run processes units in parallel. Results come back in unit order. A unit
// with failure diagnostics yields a result without a graph or file; only
// rendering problems and cancellation are returned as errors.
func (p *Pipeline) Run(ctx context.Context, units []*analyze.Unit) ([]*Result, error) {
	results := make([]*Result, len(units))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.Concurrency)

	for i, u := range units {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := p.process(u)
			results[i] = res

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

func (p *Pipeline) process(u *analyze.Unit) (*Result, error) {
	res := &Result{Unit: u, Diagnostics: &diagnostic.Diagnostics{}}
	res.Diagnostics.Merge(u.Diagnostics)

	if u.Blueprint == nil {
		logger.Logger.Debugw("skipping unresolved blueprint", "blueprint", u.Name())
		return res, nil
	}

	bp := *u.Blueprint
	if p.config.Strict != nil {
		bp.Options.Strict = *p.config.Strict
	}

	res.Diagnostics.Merge(validate.Validate(&bp, u.Variants, bp.Options.Strict, u.Relation))

	if !res.Diagnostics.IsValid() {
		logger.Logger.Debugw("blueprint failed validation",
			"blueprint", bp.QualifiedName(),
			"failures", len(res.Diagnostics.Errors))

		return res, nil
	}

	tg, advisories := synth.Synthesize(&bp, u.Variants, u.Relation)
	res.Diagnostics.Merge(advisories)
	res.Graph = tg

	file, err := p.generator.Generate(tg)
	if err != nil {
		return res, errors.Wrapf(err, "generating %s", bp.QualifiedName())
	}

	res.File = file

	logger.Logger.Debugw("generated",
		"blueprint", bp.QualifiedName(),
		"root", tg.Root.Name,
		"variants", variantNames(u.Variants),
		"file", file.Path())

	return res, nil
}

func variantNames(variants []*model.Variant) []string {
	out := make([]string, len(variants))
	for i, v := range variants {
		out[i] = v.QualifiedName()
	}

	return out
}

// Result is the outcome for one blueprint.
type Result struct {
	Unit        *analyze.Unit
	Diagnostics *diagnostic.Diagnostics
	// Graph and File are nil when the blueprint failed validation.
	Graph *graph.TypeGraph
	File  *gen.GeneratedFile
}

// Name returns the blueprint name.
func (r *Result) Name() string {
	return r.Unit.Name()
}

// Failed reports whether the blueprint has failure diagnostics.
func (r *Result) Failed() bool {
	return r.Diagnostics.HasErrors()
}

// HasFailures reports whether any result failed.
func HasFailures(results []*Result) bool {
	for _, r := range results {
		if r != nil && r.Failed() {
			return true
		}
	}

	return false
}

// Files collects the generated files of every successful result.
func Files(results []*Result) []gen.GeneratedFile {
	var files []gen.GeneratedFile

	for _, r := range results {
		if r != nil && r.File != nil {
			files = append(files, *r.File)
		}
	}

	return files
}

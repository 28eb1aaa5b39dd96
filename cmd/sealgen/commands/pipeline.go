package commands

import (
	"context"

	"sealgen/internal/analyze"
	"sealgen/internal/config"
	"sealgen/internal/diagnostic"
	"sealgen/internal/gen"
	"sealgen/internal/logger"
	"sealgen/internal/model"
	"sealgen/internal/plan"
)

// defaultPatterns is used when neither patterns nor a manifest are given.
var defaultPatterns = []string{"./..."}

// loadUnits analyzes patterns plus the manifest entries. Manifest problems
// come back as an extra result so they are reported like blueprints.
func (a *app) loadUnits(ctx context.Context, patterns []string) ([]*analyze.Unit, *plan.Result, error) {
	loader := analyze.NewLoader(a.dir)

	var manifestResult *plan.Result

	if path := a.settings.Manifest; path != "" {
		m, err := config.LoadFile(path)
		if err != nil {
			return nil, nil, err
		}

		if diags := config.Validate(m); diags.Len() > 0 {
			manifestResult = &plan.Result{
				Unit:        &analyze.Unit{Declaration: model.Declaration{Interface: m.Source(), Source: m.Source()}},
				Diagnostics: diags,
			}
		}

		for _, g := range m.Declarations() {
			loader.AddDeclarations(g.Package, g.Declarations...)
		}

		logger.Logger.Debugw("loaded manifest", "file", path, "blueprints", len(m.Blueprints))
	} else if len(patterns) == 0 {
		patterns = defaultPatterns
	}

	units, err := loader.Load(ctx, patterns...)
	if err != nil {
		return nil, nil, err
	}

	logger.Logger.Debugw("analyzed packages", "patterns", patterns, "blueprints", len(units))

	return units, manifestResult, nil
}

// run analyzes and processes every blueprint. Results are returned even
// when err is set so they can still be reported.
func (a *app) run(ctx context.Context, patterns []string) ([]*plan.Result, error) {
	units, manifestResult, err := a.loadUnits(ctx, patterns)
	if err != nil {
		return nil, err
	}

	pipeline := plan.NewPipeline(plan.Config{
		Concurrency: a.settings.Concurrency,
		Strict:      a.settings.Strict,
		Generator: gen.GeneratorConfig{
			Suffix:           a.settings.Suffix,
			DebugUnformatted: true,
		},
	})

	results, err := pipeline.Run(ctx, units)

	if manifestResult != nil {
		results = append([]*plan.Result{manifestResult}, results...)
	}

	return results, err
}

// failures counts the failure diagnostics across results.
func failures(results []*plan.Result) int {
	total := &diagnostic.Diagnostics{}

	for _, r := range results {
		if r != nil {
			total.Merge(r.Diagnostics)
		}
	}

	return len(total.Errors)
}

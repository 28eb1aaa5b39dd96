package synth

import (
	"strconv"

	"sealgen/internal/graph"
	"sealgen/internal/model"
)

// matchers builds one staged protocol per enabled mode. Stage i accepts a
// handler for the i-th variant in sorted order and returns stage i+1; the
// last stage returns the terminal.
func (s *synthesizer) matchers(g *graph.TypeGraph) []graph.Matcher {
	var out []graph.Matcher

	if s.bp.Options.Modes.Has(model.ModeFunction) {
		out = append(out, s.matcher(g, graph.FlavorFunction))
	}

	if s.bp.Options.Modes.Has(model.ModeConsumer) {
		out = append(out, s.matcher(g, graph.FlavorConsumer))
	}

	return out
}

func (s *synthesizer) matcher(g *graph.TypeGraph, flavor graph.Flavor) graph.Matcher {
	m := graph.Matcher{Flavor: flavor}

	var kind string

	switch flavor {
	case graph.FlavorConsumer:
		kind = "Consumer"
		m.Entry = "Match" + s.rootName
		m.Builder = s.lower + "ConsumerBuilder"
		m.Adapter = s.lower + "Discard"
		m.Terminal = graph.Terminal{
			Name:     s.rootName + "ConsumerTerminal",
			Finish:   "AsConsumer",
			Callable: "func(" + g.Root.Ref() + ")",
		}
	default:
		kind = "Matcher"
		m.Entry = "Returning" + s.rootName
		m.Result = s.result
		m.Builder = s.lower + "MatcherBuilder"
		m.Terminal = graph.Terminal{
			Name:     s.rootName + "MatcherTerminal",
			Finish:   "AsFunction",
			Callable: "func(" + g.Root.Ref() + ") " + s.result,
		}
	}

	branches := g.Visitor.Branches
	for i, b := range branches {
		next := m.Terminal.Name
		if i+1 < len(branches) {
			next = stageName(s.rootName, kind, i+1)
		}

		handler := graph.Handler{
			Input:         b.Variant,
			InputVariance: graph.Contravariant,
		}

		if flavor == graph.FlavorFunction {
			handler.Output = s.result
			handler.OutputVariance = graph.Covariant
		}

		m.Stages = append(m.Stages, graph.Stage{
			Index:      i,
			Name:       stageName(s.rootName, kind, i),
			Transition: b.Method,
			Field:      b.Field,
			Handler:    handler,
			Next:       next,
		})
	}

	return m
}

func stageName(root, kind string, i int) string {
	return root + kind + "Stage" + strconv.Itoa(i)
}

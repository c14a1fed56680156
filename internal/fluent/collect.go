package fluent

import (
	"github.com/robustls/robustls/internal/buffer"
	"github.com/robustls/robustls/internal/model"
)

// CollectLocaleKeys extracts the localization table from parsed entries:
// every message entry that has a value becomes a LocaleKey, carrying the
// union of variable names referenced anywhere in its pattern, whether
// inline in a placeable or as a select expression's selector, plus those
// in the message's attributes. Term entries are not collected as keys
// (the locale table is message-keyed), and a term reference inside a
// message contributes only the variables in its call arguments: the
// term's own pattern is not walked.
func CollectLocaleKeys(path string, src []byte, entries []Entry) []model.LocaleKey {
	idx := buffer.New(string(src))
	var keys []model.LocaleKey
	for _, e := range entries {
		if e.Kind != EntryMessage || e.Value == nil {
			continue
		}
		vars := map[string]struct{}{}
		collectPatternVars(e.Value, vars)
		for _, attr := range e.Attributes {
			collectPatternVars(attr.Value, vars)
		}
		keys = append(keys, model.LocaleKey{
			Key:       e.ID,
			Variables: vars,
			Definition: model.DefinitionIndex{
				Path:  path,
				Range: spanToRange(idx, e.IDSpan),
			},
			Origin: path,
		})
	}
	return keys
}

func collectPatternVars(p *Pattern, out map[string]struct{}) {
	if p == nil {
		return
	}
	for _, el := range p.Elements {
		if el.Kind == ElementPlaceable {
			collectExprVars(el.Expr, out)
		}
	}
}

func collectExprVars(e Expression, out map[string]struct{}) {
	switch e.Kind {
	case ExprVariableReference:
		out[e.Name] = struct{}{}
	case ExprTermReference, ExprMessageReference, ExprFunctionReference:
		for _, arg := range e.Args {
			collectExprVars(arg.Value, out)
		}
	case ExprSelect:
		if e.Selector != nil {
			collectExprVars(*e.Selector, out)
		}
		for _, v := range e.Variants {
			collectPatternVars(v.Value, out)
		}
	}
}

func spanToRange(idx *buffer.Buffer, s Span) model.Range {
	start := idx.PositionAt(s.Start)
	end := idx.PositionAt(s.End)
	return model.Range{
		Start: model.Position{Line: start.Line, Character: start.Character},
		End:   model.Position{Line: end.Line, Character: end.Character},
	}
}

package query

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/reflect"
)

// InlayHints computes, for every block_sequence_item -> block_node ->
// block_mapping prototype object under the document root whose source
// range intersects rng, a type-name hint for each field key —
// descending into `components` for entity prototypes, or hinting the
// prototype's own fields directly otherwise. Hints are only emitted for
// pairs within rng.
func InlayHints(resolver *reflect.Resolver, root *sitter.Node, src []byte, rng model.Range) []InlayHint {
	var hints []InlayHint
	walkPrototypeItems(root, func(item *sitter.Node) {
		mapping := blockMappingOf(item)
		if mapping == nil {
			return
		}
		protoType := siblingValue(mapping, src, "type")
		class, ok := resolver.ResolvePrototype(protoType)
		if !ok {
			return
		}

		if protoType == "entity" {
			hints = append(hints, componentHints(resolver, mapping, src, rng)...)
			return
		}
		hints = append(hints, fieldHints(resolver.Fields(class), mapping, src, rng, []string{"DataField"})...)
	})
	return hints
}

func walkPrototypeItems(root *sitter.Node, fn func(item *sitter.Node)) {
	seq := topLevelBlockSequence(root)
	if seq == nil {
		return
	}
	for i := 0; i < int(seq.NamedChildCount()); i++ {
		fn(seq.NamedChild(i))
	}
}

func componentHints(resolver *reflect.Resolver, prototypeMapping *sitter.Node, src []byte, rng model.Range) []InlayHint {
	var hints []InlayHint
	for _, pair := range mappingPairs(prototypeMapping) {
		k, v := pairKeyValue(pair)
		if k == nil || text(k, src) != "components" {
			continue
		}
		compSeq := firstNamedChildOf(v)
		if compSeq == nil {
			continue
		}
		for i := 0; i < int(compSeq.NamedChildCount()); i++ {
			compItem := compSeq.NamedChild(i)
			compMapping := blockMappingOf(compItem)
			if compMapping == nil {
				continue
			}
			compType := siblingValue(compMapping, src, "type")
			class, ok := resolver.ResolveComponent(compType)
			if !ok {
				continue
			}
			hints = append(hints, fieldHints(resolver.Fields(class), compMapping, src, rng, []string{"DataField", "IncludeDataField"})...)
		}
	}
	return hints
}

func fieldHints(fields []model.FieldRecord, mapping *sitter.Node, src []byte, rng model.Range, filters []string) []InlayHint {
	var hints []InlayHint
	for _, pair := range mappingPairs(mapping) {
		if !rangeIntersectsRow(nodeRange(pair), rng) {
			continue
		}
		k, _ := pairKeyValue(pair)
		if k == nil {
			continue
		}
		name := text(k, src)
		field, ok := fieldByDataNameLocal(fields, name, filters)
		if !ok {
			continue
		}
		hints = append(hints, InlayHint{Position: nodeRange(k).End, Label: field.TypeName})
	}
	return hints
}

func fieldByDataNameLocal(fields []model.FieldRecord, name string, filters []string) (model.FieldRecord, bool) {
	return reflect.FieldByDataName(fields, name, filters...)
}

func rangeIntersectsRow(a, rng model.Range) bool {
	return a.Start.Line <= rng.End.Line && a.End.Line >= rng.Start.Line
}

// topLevelBlockSequence and blockMappingOf mirror the shapes
// internal/parser/yamlproto relies on, local to the query package so it
// doesn't need to depend on the parser package for plain tree navigation.
func topLevelBlockSequence(root *sitter.Node) *sitter.Node {
	doc := firstNamedChildOf(root)
	block := firstNamedChildOf(doc)
	return firstNamedChildOf(block)
}

func blockMappingOf(item *sitter.Node) *sitter.Node {
	block := firstNamedChildOf(item)
	mapping := firstNamedChildOf(block)
	if mapping == nil || mapping.Type() != "block_mapping" {
		return nil
	}
	return mapping
}

func firstNamedChildOf(n *sitter.Node) *sitter.Node {
	if n == nil || n.NamedChildCount() == 0 {
		return nil
	}
	return n.NamedChild(0)
}

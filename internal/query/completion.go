package query

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/robustls/robustls/internal/fuzzy"
	"github.com/robustls/robustls/internal/index"
	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/reflect"
	"github.com/robustls/robustls/internal/sprite"
	"github.com/robustls/robustls/internal/textutil"
)

const (
	similarityLow  = 0.6
	similarityHigh = 0.8
)

// Completion computes YAML completion candidates at a cursor inside a
// prototype document. root is the document's tree-sitter root node and
// line is the raw text of the cursor's line, used to compute the search
// column window.
func Completion(idx *index.Index, resolver *reflect.Resolver, resourcesRoot string, root *sitter.Node, src []byte, line string, pos model.Position) CompletionList {
	col := searchColumn(line, pos.Character)
	anchor := findNodeAtPosition(root, model.Position{Line: pos.Line, Character: col})
	if anchor == nil {
		return CompletionList{}
	}
	if anchor.Type() == "ERROR" {
		return CompletionList{}
	}
	if isScalarKind(anchor.Type()) {
		anchor = climbNamedParents(anchor, 3)
	}

	switch anchor.Type() {
	case "block_sequence_item":
		if nestingOf(anchor) <= 4 {
			return CompletionList{Items: []CompletionItem{{Label: "type", InsertText: "type: "}}}
		}
	case "block_mapping_pair":
		return completePair(idx, resolver, resourcesRoot, anchor, src)
	case "block_mapping":
		return completeMappingFields(idx, resolver, anchor, src)
	case "flow_sequence", "flow_node":
		return completeFlowParent(idx, anchor, src)
	}
	return CompletionList{}
}

// searchColumn implements the window rule: an empty-after-trim line uses
// the cursor column; a line that is just "-" uses the dash's column;
// otherwise the cursor column itself (the enclosing text span is found by
// tree lookup, not by string slicing).
func searchColumn(line string, cursor int) int {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return cursor
	}
	if trimmed == "-" {
		return strings.IndexByte(line, '-')
	}
	return cursor
}

func isScalarKind(kind string) bool {
	switch kind {
	case "plain_scalar", "single_quote_scalar", "double_quote_scalar", "string_scalar", "flow_node":
		return true
	default:
		return false
	}
}

func completePair(idx *index.Index, resolver *reflect.Resolver, resourcesRoot string, pair *sitter.Node, src []byte) CompletionList {
	keyNode, valueNode := pairKeyValue(pair)
	if keyNode == nil {
		return CompletionList{}
	}
	key := text(keyNode, src)
	nesting := nestingOf(pair)
	inProgress := text(valueNode, src)

	switch {
	case key == "type" && nesting == 2:
		return completePrototypeTypes(resolver)
	case key == "type" && nesting == 4:
		return completeComponentTypes(resolver, inProgress)
	case key == "parent" && nesting == 2:
		return completeParentIDs(idx, pair, valueNode, src, inProgress)
	}

	field, fieldNesting := resolveFieldForPair(resolver, pair, src, key)
	if field == nil {
		return CompletionList{}
	}
	return completeByFieldType(idx, resourcesRoot, *field, inProgress, fieldNesting)
}

func completePrototypeTypes(resolver *reflect.Resolver) CompletionList {
	var items []CompletionItem
	for _, name := range resolver.AllPrototypeDisplayNames() {
		items = append(items, CompletionItem{Label: textutil.LowerCamelCase(name), InsertText: textutil.LowerCamelCase(name)})
	}
	return capItems(items)
}

func completeComponentTypes(resolver *reflect.Resolver, inProgress string) CompletionList {
	names := resolver.AllComponentDisplayNames()
	scored, incomplete := fuzzy.RankFilter(inProgress, names, similarityHigh, completionCap)
	items := make([]CompletionItem, len(scored))
	for i, s := range scored {
		items[i] = CompletionItem{Label: s.Label, InsertText: s.Label, Score: s.Similarity}
	}
	return CompletionList{Items: items, Incomplete: incomplete}
}

func completeParentIDs(idx *index.Index, pair, valueNode *sitter.Node, src []byte, inProgress string) CompletionList {
	mapping := ancestorOfKind(pair.Parent(), "block_mapping")
	if mapping == nil {
		return CompletionList{}
	}
	protoType := siblingValue(mapping, src, "type")
	if protoType == "" {
		return CompletionList{}
	}

	already := alreadyListedParents(valueNode, src)
	var candidates []string
	idx.Prototypes.Each(func(p model.PrototypeRecord) {
		if p.Type == protoType && !already[p.ID] {
			candidates = append(candidates, p.ID)
		}
	})

	if inProgress != "" {
		scored, incomplete := fuzzy.RankFilter(inProgress, candidates, similarityHigh, completionCap)
		items := make([]CompletionItem, len(scored))
		for i, s := range scored {
			items[i] = CompletionItem{Label: s.Label, InsertText: s.Label, Score: s.Similarity}
		}
		return CompletionList{Items: items, Incomplete: incomplete}
	}
	return alphabeticCompletions(candidates)
}

func alphabeticCompletions(candidates []string) CompletionList {
	sorted := append([]string(nil), candidates...)
	sortStrings(sorted)
	items := make([]CompletionItem, len(sorted))
	for i, c := range sorted {
		items[i] = CompletionItem{Label: c, InsertText: c}
	}
	return capItems(items)
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// alreadyListedParents collects the ids already present in a `parent`
// value, whether it is a flow sequence, a block sequence, or a bare
// scalar — mirroring yamlproto's parent-value unwrapping.
func alreadyListedParents(valueNode *sitter.Node, src []byte) map[string]bool {
	out := map[string]bool{}
	if valueNode == nil {
		return out
	}
	seq := valueNode
	if seq.Type() == "block_node" || seq.Type() == "flow_node" {
		if seq.NamedChildCount() == 0 {
			return out
		}
		seq = seq.NamedChild(0)
	}
	switch seq.Type() {
	case "flow_sequence", "block_sequence":
		for i := 0; i < int(seq.NamedChildCount()); i++ {
			item := seq.NamedChild(i)
			if item.NamedChildCount() > 0 {
				out[text(item.NamedChild(0), src)] = true
			}
		}
	default:
		out[text(seq, src)] = true
	}
	return out
}

func siblingValue(mapping *sitter.Node, src []byte, key string) string {
	for _, pair := range mappingPairs(mapping) {
		k, v := pairKeyValue(pair)
		if k != nil && text(k, src) == key {
			return text(v, src)
		}
	}
	return ""
}

// resolveFieldForPair finds the field record matching the pair's key via
// reflection, using nesting to pick the enclosing prototype or component
// class and the attribute filter each level requires.
func resolveFieldForPair(resolver *reflect.Resolver, pair *sitter.Node, src []byte, key string) (*model.FieldRecord, int) {
	nesting := nestingOf(pair)
	var class model.ClassRecord
	var ok bool
	var filters []string

	switch {
	case nesting <= 2:
		mapping := ancestorOfKind(pair.Parent(), "block_mapping")
		protoType := siblingValue(mapping, src, "type")
		class, ok = resolver.ResolvePrototype(protoType)
		filters = []string{"DataField"}
	default:
		mapping := ancestorOfKind(pair.Parent(), "block_mapping")
		compType := siblingValue(mapping, src, "type")
		class, ok = resolver.ResolveComponent(compType)
		filters = []string{"DataField", "IncludeDataField"}
	}
	if !ok {
		return nil, nesting
	}
	field, ok := reflect.FieldByDataName(resolver.Fields(class), key, filters...)
	if !ok {
		return nil, nesting
	}
	return &field, nesting
}

func completeByFieldType(idx *index.Index, resourcesRoot string, field model.FieldRecord, inProgress string, nesting int) CompletionList {
	typeName := strings.TrimSuffix(field.TypeName, "?")

	if isSpriteField(field) {
		candidates, _ := sprite.Candidates(resourcesRoot, inProgress)
		return rankedOrAlphabetic(candidates, inProgress, similarityLow)
	}

	switch {
	case typeName == "bool":
		return CompletionList{Items: []CompletionItem{{Label: "true", InsertText: "true"}, {Label: "false", InsertText: "false"}}}
	case typeName == "EntProtoId":
		return completeProtoIDs(idx, "entity", inProgress)
	case strings.HasPrefix(typeName, "ProtoId<"):
		inner, _ := reflectProtoIDTypeArg(typeName)
		return completeProtoIDs(idx, lowerCamelStripped(inner), inProgress)
	case typeName == "LocId":
		return completeLocaleKeys(idx, inProgress)
	default:
		return CompletionList{}
	}
}

func isSpriteField(field model.FieldRecord) bool {
	t := strings.TrimSuffix(field.TypeName, "?")
	if t == "SpriteSpecifier" {
		return true
	}
	if field.Attributes.Has("IncludeDataField") {
		return true
	}
	name := field.DataFieldName(textutil.LowerCamelCase)
	return name == "sprite" || name == "state"
}

func completeProtoIDs(idx *index.Index, prototypeType, inProgress string) CompletionList {
	var candidates []string
	idx.Prototypes.Each(func(p model.PrototypeRecord) {
		if p.Type == prototypeType {
			candidates = append(candidates, p.ID)
		}
	})
	return rankedOrAlphabetic(candidates, inProgress, similarityLow)
}

func completeLocaleKeys(idx *index.Index, inProgress string) CompletionList {
	var candidates []string
	idx.Locales.Each(func(l model.LocaleKey) { candidates = append(candidates, l.Key) })
	return rankedOrAlphabetic(candidates, inProgress, similarityLow)
}

func rankedOrAlphabetic(candidates []string, inProgress string, threshold float64) CompletionList {
	scored, incomplete := fuzzy.RankFilter(inProgress, candidates, threshold, completionCap)
	items := make([]CompletionItem, len(scored))
	for i, s := range scored {
		items[i] = CompletionItem{Label: s.Label, InsertText: s.Label, Score: s.Similarity}
	}
	return CompletionList{Items: items, Incomplete: incomplete}
}

func lowerCamelStripped(typeName string) string {
	return textutil.LowerCamelCase(textutil.StripSuffix(typeName, "Prototype"))
}

func reflectProtoIDTypeArg(typeName string) (string, bool) {
	return reflect.ProtoIDTypeArg(typeName)
}

// completeMappingFields implements the block_mapping dispatch: nesting <=
// 2 proposes prototype field names (plus a synthetic "id"), nesting > 2
// proposes component field names; both sort "id"/"components" first.
func completeMappingFields(idx *index.Index, resolver *reflect.Resolver, mapping *sitter.Node, src []byte) CompletionList {
	present := map[string]bool{}
	for _, pair := range mappingPairs(mapping) {
		k, _ := pairKeyValue(pair)
		if k != nil {
			present[text(k, src)] = true
		}
	}

	nesting := nestingOf(mapping)
	var class model.ClassRecord
	var ok bool
	var filters []string
	var extra []string

	if nesting <= 2 {
		protoType := siblingValue(mapping, src, "type")
		class, ok = resolver.ResolvePrototype(protoType)
		filters = []string{"DataField"}
		extra = []string{"id", "components"}
	} else {
		compType := siblingValue(mapping, src, "type")
		class, ok = resolver.ResolveComponent(compType)
		filters = []string{"DataField", "IncludeDataField"}
	}
	if !ok {
		return CompletionList{}
	}

	var names []string
	for _, e := range extra {
		if !present[e] {
			names = append(names, e)
		}
	}
	for _, f := range resolver.Fields(class) {
		if !hasAnyAttr(f, filters) {
			continue
		}
		name := f.DataFieldName(textutil.LowerCamelCase)
		if !present[name] {
			names = append(names, name)
		}
	}

	items := make([]CompletionItem, 0, len(names))
	for _, n := range names {
		items = append(items, CompletionItem{Label: n, InsertText: n, Score: priorityScore(n)})
	}
	stableSortByScoreThenLabel(items)
	return capItems(items)
}

func hasAnyAttr(f model.FieldRecord, names []string) bool {
	for _, n := range names {
		if f.Attributes.Has(n) {
			return true
		}
	}
	return false
}

// priorityScore gives "id" and "components" a high sentinel score so they
// sort first, ahead of the alphabetic field-name sort.
func priorityScore(name string) float64 {
	switch name {
	case "id":
		return 2
	case "components":
		return 1
	default:
		return 0
	}
}

func stableSortByScoreThenLabel(items []CompletionItem) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0; j-- {
			a, b := items[j-1], items[j]
			if a.Score > b.Score || (a.Score == b.Score && a.Label <= b.Label) {
				break
			}
			items[j-1], items[j] = items[j], items[j-1]
		}
	}
}

// completeFlowParent handles a cursor inside a `parent: [a, b]` flow
// form rather than on a bare scalar. Candidates are the same ids as
// completeParentIDs offers (same prototype type, minus ids already in the
// sequence), listed alphabetically, but the insertion point is never the cursor: it is
// computed from the sequence's last raw child, so the comma (or lack of
// one) the user already typed is respected instead of duplicated.
func completeFlowParent(idx *index.Index, node *sitter.Node, src []byte) CompletionList {
	mapping := ancestorOfKind(node, "block_mapping")
	if mapping == nil {
		return CompletionList{}
	}
	protoType := siblingValue(mapping, src, "type")
	seq := flowSequenceAncestor(node)
	already := alreadyListedParents(seq, src)
	var candidates []string
	idx.Prototypes.Each(func(p model.PrototypeRecord) {
		if p.Type == protoType && !already[p.ID] {
			candidates = append(candidates, p.ID)
		}
	})
	sorted := append([]string(nil), candidates...)
	sortStrings(sorted)

	at, prefix := flowInsertionPoint(seq)

	items := make([]CompletionItem, len(sorted))
	for i, c := range sorted {
		r := model.Range{Start: at, End: at}
		items[i] = CompletionItem{Label: c, InsertText: prefix + c, InsertRange: &r}
	}
	return capItems(items)
}

// flowSequenceAncestor returns the nearest flow_sequence ancestor of n
// (including n itself).
func flowSequenceAncestor(n *sitter.Node) *sitter.Node {
	return ancestorOfKind(n, "flow_sequence")
}

// flowInsertionPoint finds where a new parent id should land inside a
// `[...]` flow sequence, from its last raw (non-named) child: after a
// trailing `,` it lands right after the comma; after a flow_node (an
// existing id with no trailing comma) it lands right after that node,
// prefixed with ", "; an empty or malformed sequence falls back to just
// past the opening bracket.
func flowInsertionPoint(seq *sitter.Node) (model.Position, string) {
	if seq == nil {
		return model.Position{}, ""
	}
	start := nodeRange(seq).Start
	fallback := model.Position{Line: start.Line, Character: start.Character + 1}

	var last *sitter.Node
	for i := int(seq.ChildCount()) - 1; i >= 0; i-- {
		child := seq.Child(i)
		if child.Type() == "]" {
			continue
		}
		last = child
		break
	}
	if last == nil || last.Type() == "[" {
		return fallback, ""
	}
	if last.Type() == "flow_node" {
		return nodeRange(last).End, ", "
	}
	return nodeRange(last).End, ""
}

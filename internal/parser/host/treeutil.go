package host

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/robustls/robustls/internal/model"
)

// walk performs a depth-first traversal over every named node, calling fn
// for each. fn returns whether to descend into the node's children.
func walk(n *sitter.Node, fn func(*sitter.Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		walk(n.NamedChild(i), fn)
	}
}

// childByFieldOrType returns the first of candidates that resolves to a
// child of n, trying field-name access first and falling back to a
// named-child type scan. Returns nil when none match, so callers can
// short-circuit cleanly.
func childByFieldOrType(n *sitter.Node, candidates ...string) *sitter.Node {
	if n == nil {
		return nil
	}
	for _, c := range candidates {
		if child := n.ChildByFieldName(c); child != nil {
			return child
		}
	}
	for _, c := range candidates {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child.Type() == c {
				return child
			}
		}
	}
	return nil
}

func text(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return n.Content(src)
}

func nodeRange(n *sitter.Node) model.Range {
	start := n.StartPoint()
	end := n.EndPoint()
	return model.Range{
		Start: model.Position{Line: int(start.Row), Character: int(start.Column)},
		End:   model.Position{Line: int(end.Row), Character: int(end.Column)},
	}
}

package query

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/robustls/robustls/internal/model"
)

// nestedContainerKinds are the YAML node kinds whose ancestor count gives
// a position its "nesting" level: nesting 2 is a prototype-object key,
// nesting 4 is a component-object key.
var nestedContainerKinds = map[string]bool{
	"block_mapping":  true,
	"block_sequence": true,
}

// findNodeAtPosition returns the smallest named node whose range covers
// pos, descending from root.
func findNodeAtPosition(root *sitter.Node, pos model.Position) *sitter.Node {
	if root == nil || !pointWithin(root, pos) {
		return nil
	}
	best := root
	for {
		next := namedChildCovering(best, pos)
		if next == nil {
			return best
		}
		best = next
	}
}

func namedChildCovering(n *sitter.Node, pos model.Position) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if pointWithin(child, pos) {
			return child
		}
	}
	return nil
}

func pointWithin(n *sitter.Node, pos model.Position) bool {
	start := n.StartPoint()
	end := n.EndPoint()
	if uint32(pos.Line) < start.Row || uint32(pos.Line) > end.Row {
		return false
	}
	if uint32(pos.Line) == start.Row && uint32(pos.Character) < start.Column {
		return false
	}
	if uint32(pos.Line) == end.Row && uint32(pos.Character) > end.Column {
		return false
	}
	return true
}

// climbNamedParents walks up n's named-parent chain n times, stopping
// early (and returning the highest ancestor reached) if the root is hit
// first.
func climbNamedParents(n *sitter.Node, levels int) *sitter.Node {
	for i := 0; i < levels; i++ {
		parent := n.Parent()
		if parent == nil {
			return n
		}
		n = parent
	}
	return n
}

// ancestorOfKind returns the nearest ancestor (including n itself) whose
// Type() equals kind.
func ancestorOfKind(n *sitter.Node, kind string) *sitter.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Type() == kind {
			return cur
		}
	}
	return nil
}

// nestingOf counts how many block_mapping/block_sequence ancestors
// (including n itself, if it is one) enclose n, root-to-n inclusive. This
// is the "nesting" level the completion and inlay-hint dispatch use.
func nestingOf(n *sitter.Node) int {
	count := 0
	for cur := n; cur != nil; cur = cur.Parent() {
		if nestedContainerKinds[cur.Type()] {
			count++
		}
	}
	return count
}

func nodeRange(n *sitter.Node) model.Range {
	start := n.StartPoint()
	end := n.EndPoint()
	return model.Range{
		Start: model.Position{Line: int(start.Row), Character: int(start.Column)},
		End:   model.Position{Line: int(end.Row), Character: int(end.Column)},
	}
}

func text(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return n.Content(src)
}

// mappingPairs returns the key/value pairs of a block_mapping node.
func mappingPairs(mapping *sitter.Node) []*sitter.Node {
	if mapping == nil {
		return nil
	}
	var out []*sitter.Node
	for i := 0; i < int(mapping.NamedChildCount()); i++ {
		out = append(out, mapping.NamedChild(i))
	}
	return out
}

func pairKeyValue(pair *sitter.Node) (key, value *sitter.Node) {
	return pair.ChildByFieldName("key"), pair.ChildByFieldName("value")
}

package query

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/robustls/robustls/internal/index"
	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/textutil"
)

// References computes host-language references at pos. When the cursor
// sits on a class-declaration identifier, every YAML prototype whose
// prototype-type equals lower-camel-case(name stripped of its
// "Prototype" suffix) is returned.
func References(idx *index.Index, root *sitter.Node, src []byte, pos model.Position) []Location {
	node := findNodeAtPosition(root, pos)
	if node == nil {
		return nil
	}
	decl := ancestorOfAnyKind(node, "class_declaration", "struct_declaration", "record_declaration")
	if decl == nil {
		return nil
	}
	nameNode := childNameNode(decl)
	if nameNode == nil || text(nameNode, src) != text(node, src) {
		return nil
	}

	className := text(nameNode, src)
	prototypeType := textutil.LowerCamelCase(textutil.StripSuffix(className, "Prototype"))

	var out []Location
	idx.Prototypes.Each(func(p model.PrototypeRecord) {
		if p.Type == prototypeType {
			out = append(out, Location{Path: p.Definition.Path, Range: p.Definition.Range})
		}
	})
	return out
}

func ancestorOfAnyKind(n *sitter.Node, kinds ...string) *sitter.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		for _, k := range kinds {
			if cur.Type() == k {
				return cur
			}
		}
	}
	return nil
}

func childNameNode(decl *sitter.Node) *sitter.Node {
	if n := decl.ChildByFieldName("name"); n != nil {
		return n
	}
	for i := 0; i < int(decl.NamedChildCount()); i++ {
		child := decl.NamedChild(i)
		if child.Type() == "identifier" {
			return child
		}
	}
	return nil
}

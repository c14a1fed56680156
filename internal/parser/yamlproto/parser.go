// Package yamlproto implements the YAML prototype parser: the document
// must be a top-level block-sequence, each item a block-mapping
// recognizing the type/id/parent keys, walked over the tree-sitter-yaml
// node kinds the Go binding exposes.
package yamlproto

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/yaml"

	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/treestore"
)

// Parse extracts every prototype instance from a YAML document.
func Parse(ctx context.Context, path string, src []byte, oldTree *sitter.Tree) ([]model.PrototypeRecord, *treestore.Tree, error) {
	sp := sitter.NewParser()
	sp.SetLanguage(yaml.GetLanguage())

	tree, err := sp.ParseCtx(ctx, oldTree, src)
	if err != nil || tree == nil {
		return nil, nil, fmt.Errorf("yamlproto: parsing %s: %w", path, err)
	}

	blockSeq := topLevelBlockSequence(tree.RootNode())
	if blockSeq == nil || blockSeq.Type() != "block_sequence" {
		return nil, nil, fmt.Errorf("yamlproto: %s is not a top-level block sequence", path)
	}

	var out []model.PrototypeRecord
	for i := 0; i < int(blockSeq.NamedChildCount()); i++ {
		item := blockSeq.NamedChild(i)
		if rec, ok := parsePrototypeItem(item, src, path); ok {
			out = append(out, rec)
		}
	}

	return out, &treestore.Tree{Lang: treestore.LangYAML, Sitter: tree}, nil
}

// topLevelBlockSequence descends document -> block_node -> block_sequence,
// mirroring the Rust original's get_block_sequence_node.
func topLevelBlockSequence(root *sitter.Node) *sitter.Node {
	doc := firstNamedChild(root)
	block := firstNamedChild(doc)
	return firstNamedChild(block)
}

// blockMappingOf descends block_sequence_item -> block_node ->
// block_mapping, mirroring get_block_mapping.
func blockMappingOf(item *sitter.Node) *sitter.Node {
	block := firstNamedChild(item)
	mapping := firstNamedChild(block)
	if mapping == nil || mapping.Type() != "block_mapping" {
		return nil
	}
	return mapping
}

func firstNamedChild(n *sitter.Node) *sitter.Node {
	if n == nil || n.NamedChildCount() == 0 {
		return nil
	}
	return n.NamedChild(0)
}

func parsePrototypeItem(item *sitter.Node, src []byte, path string) (model.PrototypeRecord, bool) {
	mapping := blockMappingOf(item)
	if mapping == nil {
		return model.PrototypeRecord{}, false
	}

	var prototypeType, id string
	var idRange model.Range
	var parents []string
	haveType, haveID := false, false

	for i := 0; i < int(mapping.NamedChildCount()); i++ {
		pair := mapping.NamedChild(i)
		keyNode := pair.ChildByFieldName("key")
		valueNode := pair.ChildByFieldName("value")
		if keyNode == nil || valueNode == nil {
			continue
		}
		switch keyNode.Content(src) {
		case "type":
			prototypeType = valueNode.Content(src)
			haveType = true
		case "id":
			id = valueNode.Content(src)
			idRange = nodeRange(valueNode)
			haveID = true
		case "parent":
			parents = parseParentValue(valueNode, src)
		}
	}

	if !haveType || !haveID {
		return model.PrototypeRecord{}, false
	}

	return model.PrototypeRecord{
		PrototypeID: model.PrototypeID{Type: prototypeType, ID: id},
		Parents:     parents,
		Definition:  model.DefinitionIndex{Path: path, Range: idRange},
		Origin:      path,
	}, true
}

// parseParentValue implements the original's parent-value unwrapping: the
// value is a block_node/flow_node wrapper around either a
// flow_sequence/block_sequence (each item's first named child is a parent
// id) or a single bare scalar (push it directly).
func parseParentValue(valueNode *sitter.Node, src []byte) []string {
	switch valueNode.Type() {
	case "block_node", "flow_node":
		seq := firstNamedChild(valueNode)
		if seq == nil {
			return nil
		}
		switch seq.Type() {
		case "flow_sequence", "block_sequence":
			var out []string
			for i := 0; i < int(seq.NamedChildCount()); i++ {
				item := seq.NamedChild(i)
				content := firstNamedChild(item)
				if content == nil {
					continue
				}
				out = append(out, content.Content(src))
			}
			return out
		default:
			return []string{seq.Content(src)}
		}
	default:
		return nil
	}
}

func nodeRange(n *sitter.Node) model.Range {
	start := n.StartPoint()
	end := n.EndPoint()
	return model.Range{
		Start: model.Position{Line: int(start.Row), Character: int(start.Column)},
		End:   model.Position{Line: int(end.Row), Character: int(end.Column)},
	}
}

// Package host implements the host-language parser: a depth-first
// tree-sitter traversal collecting every class- or interface-declaration
// node, their attributes, base lists, and field or property
// declarations.
package host

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/treestore"
)

// declarationKinds are the tree-sitter node types that produce a
// ClassRecord.
var declarationKinds = map[string]bool{
	"class_declaration":     true,
	"interface_declaration": true,
	"struct_declaration":    true,
	"record_declaration":    true,
}

type parser struct {
	path string
	src  []byte
}

// Parse extracts every class/interface/struct/record declaration from
// src. oldTree, if non-nil, is passed to the incremental re-parse as a
// hint. Returns the extracted records and the tree to install in the
// Parsed-File Map, or an error leaving the caller's index untouched.
func Parse(ctx context.Context, path string, src []byte, oldTree *sitter.Tree) ([]model.ClassRecord, *treestore.Tree, error) {
	sp := sitter.NewParser()
	sp.SetLanguage(csharp.GetLanguage())

	tree, err := sp.ParseCtx(ctx, oldTree, src)
	if err != nil || tree == nil {
		return nil, nil, fmt.Errorf("host: parsing %s: %w", path, err)
	}

	p := &parser{path: path, src: src}
	var records []model.ClassRecord
	walk(tree.RootNode(), func(n *sitter.Node) bool {
		if declarationKinds[n.Type()] {
			if rec, ok := p.parseDeclaration(n); ok {
				records = append(records, rec)
			}
		}
		return true
	})

	return records, &treestore.Tree{Lang: treestore.LangHost, Sitter: tree}, nil
}

// parseDeclaration extracts a single ClassRecord from a
// class/interface/struct/record declaration node.
func (p *parser) parseDeclaration(n *sitter.Node) (model.ClassRecord, bool) {
	nameNode := childByFieldOrType(n, "name", "identifier")
	if nameNode == nil {
		return model.ClassRecord{}, false
	}

	rec := model.ClassRecord{
		Name: text(nameNode, p.src),
		Definition: model.DefinitionIndex{
			Path:  p.path,
			Range: nodeRange(nameNode),
		},
	}

	if baseList := childByFieldOrType(n, "bases", "base_list"); baseList != nil {
		rec.Base = p.parseBaseList(baseList)
	}

	rec.Attributes = p.parseAttributeLists(attributeListsPrecedingSibling(n), p.src)

	if body := childByFieldOrType(n, "body", "declaration_list"); body != nil {
		rec.Fields = p.parseFields(body)
	}

	return rec, true
}

// parseBaseList collects every named type in a base_list in declaration
// order, preserving generic forms as written (the base name comparisons
// done by the Reflection Resolver use exact text, e.g. "IPrototype").
func (p *parser) parseBaseList(baseList *sitter.Node) []string {
	var out []string
	for i := 0; i < int(baseList.NamedChildCount()); i++ {
		out = append(out, text(baseList.NamedChild(i), p.src))
	}
	return out
}

// attributeListsPrecedingSibling collects every attribute_list sibling
// immediately preceding n, so multiple attribute groups on one
// declaration flatten into a single set.
func attributeListsPrecedingSibling(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	cur := n.PrevNamedSibling()
	for cur != nil && cur.Type() == "attribute_list" {
		out = append([]*sitter.Node{cur}, out...)
		cur = cur.PrevNamedSibling()
	}
	if len(out) > 0 {
		return out
	}
	// Some grammars nest the attribute_list as the declaration's own
	// first named child(ren).
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "attribute_list" {
			break
		}
		out = append(out, child)
	}
	return out
}

// parseFields extracts every field_declaration and property_declaration
// directly inside a declaration body.
func (p *parser) parseFields(body *sitter.Node) []model.FieldRecord {
	var out []model.FieldRecord
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		switch member.Type() {
		case "field_declaration":
			out = append(out, p.parseFieldDeclaration(member)...)
		case "property_declaration":
			if f, ok := p.parsePropertyDeclaration(member); ok {
				out = append(out, f)
			}
		}
	}
	return out
}

// parseFieldDeclaration handles `[Attr] modifiers Type name1, name2;` —
// one field_declaration may declare multiple variable_declarators, each
// becoming its own FieldRecord sharing the type and attributes.
func (p *parser) parseFieldDeclaration(member *sitter.Node) []model.FieldRecord {
	attrs := p.parseAttributeLists(attributeListsPrecedingSibling(member), p.src)

	varDecl := childByFieldOrType(member, "declaration", "variable_declaration")
	if varDecl == nil {
		return nil
	}
	typeNode := childByFieldOrType(varDecl, "type")
	typeName := ""
	if typeNode != nil {
		typeName = text(typeNode, p.src)
	}

	var out []model.FieldRecord
	for i := 0; i < int(varDecl.NamedChildCount()); i++ {
		declarator := varDecl.NamedChild(i)
		if declarator.Type() != "variable_declarator" {
			continue
		}
		nameNode := childByFieldOrType(declarator, "name", "identifier")
		if nameNode == nil {
			continue
		}
		out = append(out, model.FieldRecord{
			Name:       text(nameNode, p.src),
			TypeName:   typeName,
			Attributes: attrs,
			Definition: model.DefinitionIndex{Path: p.path, Range: nodeRange(nameNode)},
		})
	}
	return out
}

// parsePropertyDeclaration handles `[Attr] modifiers Type Name { get; set; }`.
func (p *parser) parsePropertyDeclaration(member *sitter.Node) (model.FieldRecord, bool) {
	nameNode := childByFieldOrType(member, "name", "identifier")
	if nameNode == nil {
		return model.FieldRecord{}, false
	}
	typeNode := childByFieldOrType(member, "type")
	typeName := ""
	if typeNode != nil {
		typeName = text(typeNode, p.src)
	}
	attrs := p.parseAttributeLists(attributeListsPrecedingSibling(member), p.src)

	return model.FieldRecord{
		Name:       text(nameNode, p.src),
		TypeName:   typeName,
		Attributes: attrs,
		Definition: model.DefinitionIndex{Path: p.path, Range: nodeRange(nameNode)},
	}, true
}

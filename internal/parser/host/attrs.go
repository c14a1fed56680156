package host

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/textutil"
)

// quirkBareIdentifier and quirkRenamedArgument implement the
// ProtoName-to-audioMetadata rename:
// an unexplained but preserved quirk where a bare positional identifier
// argument literally named "ProtoName" is stored under the key
// "audioMetadata" instead of whatever positional slot it would otherwise
// claim.
const (
	quirkBareIdentifier  = "ProtoName"
	quirkRenamedArgument = "audioMetadata"
)

// parseAttributeLists walks every attribute_list sibling preceding a
// declaration and flattens their attribute entries into one AttributeSet.
func (p *parser) parseAttributeLists(nodes []*sitter.Node, src []byte) model.AttributeSet {
	var out model.AttributeSet
	for _, list := range nodes {
		out = append(out, p.parseAttributeList(list, src)...)
	}
	return out
}

func (p *parser) parseAttributeList(list *sitter.Node, src []byte) model.AttributeSet {
	var out model.AttributeSet
	for i := 0; i < int(list.NamedChildCount()); i++ {
		n := list.NamedChild(i)
		if n.Type() != "attribute" {
			continue
		}
		out = append(out, p.parseAttribute(n, src))
	}
	return out
}

func (p *parser) parseAttribute(n *sitter.Node, src []byte) model.Attribute {
	name := attributeName(n, src)
	attr := model.Attribute{Name: name, Args: make(map[string]model.ArgValue)}

	argList := childByFieldOrType(n, "arg_list", "attribute_argument_list")
	if argList == nil {
		return attr
	}

	positionalIndex := 0
	for i := 0; i < int(argList.NamedChildCount()); i++ {
		argNode := argList.NamedChild(i)
		if argNode.Type() != "attribute_argument" {
			continue
		}
		p.applyAttributeArgument(&attr, argNode, src, &positionalIndex)
	}
	return attr
}

// applyAttributeArgument resolves a single attribute_argument node into
// the attribute's Args map, honoring named-argument precedence and the
// per-attribute positional schema.
func (p *parser) applyAttributeArgument(attr *model.Attribute, argNode *sitter.Node, src []byte, positionalIndex *int) {
	nameNode := childByFieldOrType(argNode, "name", "name_equals", "name_colon")
	valueNode := childByFieldOrType(argNode, "value", "expression")
	if valueNode == nil {
		// Fall back to the last named child when the grammar doesn't
		// expose a "value" field directly.
		if n := argNode.NamedChildCount(); n > 0 {
			valueNode = argNode.NamedChild(int(n) - 1)
		}
	}
	if valueNode == nil {
		return
	}

	value := parseArgValue(valueNode, src)

	if nameNode != nil {
		argName := text(nameNode, src)
		argName = strings.TrimSuffix(strings.TrimSuffix(argName, ":"), "=")
		attr.Args[argName] = value
		return
	}

	// Positional argument. The ProtoName quirk fires only for a bare
	// identifier-valued positional argument.
	if value.Kind == model.ArgString && valueNode.Type() == "identifier" && text(valueNode, src) == quirkBareIdentifier {
		if _, taken := attr.Args[quirkRenamedArgument]; !taken {
			attr.Args[quirkRenamedArgument] = value
		}
		return
	}

	slot := model.NamePositional(attr.Name, *positionalIndex)
	*positionalIndex++
	if slot == "" {
		return
	}
	if _, taken := attr.Args[slot]; taken {
		return
	}
	attr.Args[slot] = value
}

// parseArgValue classifies a single attribute-argument expression node
// into the ArgValue tagged variant.
func parseArgValue(n *sitter.Node, src []byte) model.ArgValue {
	switch n.Type() {
	case "string_literal", "interpolated_string_expression":
		return model.ArgValue{Kind: model.ArgString, Str: textutil.StripQuotes(text(n, src))}
	case "true", "false", "boolean_literal":
		t := text(n, src)
		return model.ArgValue{Kind: model.ArgBool, Bool: t == "true"}
	case "integer_literal":
		v, _ := strconv.ParseInt(text(n, src), 10, 64)
		return model.ArgValue{Kind: model.ArgInt, Int: v}
	case "real_literal":
		v, _ := strconv.ParseFloat(text(n, src), 64)
		return model.ArgValue{Kind: model.ArgReal, Real: v}
	case "prefix_unary_expression":
		return parseUnaryNumeric(n, src)
	case "typeof_expression":
		inner := innerTypeOfArgument(n, src)
		wrapped := model.ArgValue{Kind: model.ArgString, Str: inner}
		return model.ArgValue{Kind: model.ArgTypeOf, Inner: &wrapped}
	case "identifier", "qualified_name", "member_access_expression":
		return model.ArgValue{Kind: model.ArgString, Str: text(n, src)}
	default:
		return model.ArgValue{Kind: model.ArgString, Str: text(n, src)}
	}
}

// parseUnaryNumeric handles a unary-minus numeric literal, e.g. "-1" or
// "-0.5".
func parseUnaryNumeric(n *sitter.Node, src []byte) model.ArgValue {
	op := childByFieldOrType(n, "operator")
	operand := childByFieldOrType(n, "operand")
	if operand == nil && n.NamedChildCount() > 0 {
		operand = n.NamedChild(int(n.NamedChildCount()) - 1)
	}
	sign := ""
	if op != nil {
		sign = text(op, src)
	} else {
		raw := text(n, src)
		if strings.HasPrefix(raw, "-") {
			sign = "-"
		}
	}
	if operand == nil {
		return model.ArgValue{Kind: model.ArgInt, Int: 0}
	}
	base := parseArgValue(operand, src)
	if sign != "-" {
		return base
	}
	switch base.Kind {
	case model.ArgInt:
		base.Int = -base.Int
	case model.ArgReal:
		base.Real = -base.Real
	}
	return base
}

func innerTypeOfArgument(n *sitter.Node, src []byte) string {
	// typeof_expression wraps a "(" type ")"; the type is the first named
	// child in grammars without a dedicated field, or the "type" field
	// when present.
	if t := childByFieldOrType(n, "type"); t != nil {
		return text(t, src)
	}
	if n.NamedChildCount() > 0 {
		return text(n.NamedChild(0), src)
	}
	return ""
}

func attributeName(n *sitter.Node, src []byte) string {
	if nameNode := childByFieldOrType(n, "name"); nameNode != nil {
		return text(nameNode, src)
	}
	if n.NamedChildCount() > 0 {
		return text(n.NamedChild(0), src)
	}
	return ""
}

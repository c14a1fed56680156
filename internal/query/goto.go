package query

import (
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/robustls/robustls/internal/index"
	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/reflect"
)

// Definition computes YAML go-to-definition at pos. root is the
// document's tree.
func Definition(idx *index.Index, resolver *reflect.Resolver, resourcesRoot string, root *sitter.Node, src []byte, pos model.Position) (LocationLink, bool) {
	node := findNodeAtPosition(root, pos)
	if node == nil {
		return LocationLink{}, false
	}
	pair := ancestorOfKind(node, "block_mapping_pair")
	if pair == nil {
		return LocationLink{}, false
	}
	keyNode, valueNode := pairKeyValue(pair)
	if keyNode == nil || valueNode == nil {
		return LocationLink{}, false
	}
	key := text(keyNode, src)
	value := text(valueNode, src)
	nesting := nestingOf(pair)
	origin := nodeRange(valueNode)

	switch {
	case key == "type" && nesting == 2:
		class, ok := resolver.ResolvePrototype(value)
		if !ok {
			return LocationLink{}, false
		}
		return linkTo(origin, class.Definition), true

	case key == "parent" && nesting == 2:
		mapping := ancestorOfKind(pair.Parent(), "block_mapping")
		protoType := siblingValue(mapping, src, "type")
		proto, ok := idx.Prototypes.Get(model.PrototypeID{Type: protoType, ID: value})
		if !ok {
			return LocationLink{}, false
		}
		return linkTo(origin, proto.Definition), true

	default:
		field, fieldNesting := resolveFieldForPair(resolver, pair, src, key)
		if field == nil {
			return LocationLink{}, false
		}
		if link, ok := definitionForFieldValue(idx, resolver, resourcesRoot, *field, value, origin, fieldNesting); ok {
			return link, true
		}
		return linkTo(origin, field.Definition), true
	}
}

func definitionForFieldValue(idx *index.Index, resolver *reflect.Resolver, resourcesRoot string, field model.FieldRecord, value string, origin model.Range, nesting int) (LocationLink, bool) {
	typeName := strings.TrimSuffix(field.TypeName, "?")

	switch {
	case typeName == "LocId":
		key, ok := idx.Locales.Get(value)
		if !ok {
			return LocationLink{}, false
		}
		return linkTo(origin, key.Definition), true

	case strings.HasPrefix(typeName, "ProtoId<"):
		inner, _ := reflect.ProtoIDTypeArg(typeName)
		protoType := lowerCamelStripped(inner)
		proto, ok := idx.Prototypes.Get(model.PrototypeID{Type: protoType, ID: value})
		if !ok {
			return LocationLink{}, false
		}
		return linkTo(origin, proto.Definition), true

	case nesting > 2 && isSpriteField(field):
		return LocationLink{
			OriginSelection: origin,
			TargetPath:      filepath.Join(resourcesRoot, "Resources", "Textures", filepath.FromSlash(value), "meta.json"),
			TargetRange:     model.Range{},
			TargetSelection: model.Range{},
		}, true

	default:
		return LocationLink{}, false
	}
}

func linkTo(origin model.Range, def model.DefinitionIndex) LocationLink {
	return LocationLink{
		OriginSelection: origin,
		TargetPath:      def.Path,
		TargetRange:     def.Range,
		TargetSelection: def.Range,
	}
}

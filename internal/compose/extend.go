package compose

import (
	"github.com/venlo/commercegraph/internal/language"
	"github.com/venlo/commercegraph/internal/schema"
)

// applyExtensions folds plugin extension documents into the schema in
// registration order. Each extension may declare new types or extend
// existing ones; extension N+1 observes the effects of extension N. Only
// extensions whose surface filter matches the composed surface are applied.
func applyExtensions(s *schema.Schema, surface Surface, extensions []Extension) (*schema.Schema, error) {
	out := s.Clone()
	declaredBy := map[string]string{}
	for _, ext := range extensions {
		if !ext.Surfaces.Matches(surface) {
			continue
		}
		doc, err := language.ParseSchema(language.NewSource(ext.PluginID, ext.SDL))
		if err != nil {
			return nil, parseError("plugin "+ext.PluginID, err)
		}
		for _, node := range doc.Definitions {
			if out.HasType(node.Name) {
				first, ok := declaredBy[node.Name]
				if !ok {
					first = "base schema"
				}
				return nil, &DuplicateTypeDefinitionError{Name: node.Name, First: first, Second: "plugin " + ext.PluginID}
			}
			declaredBy[node.Name] = "plugin " + ext.PluginID
			out.AddType(buildType(node))
		}
		for _, node := range doc.Extensions {
			if err := extendType(out, "plugin "+ext.PluginID, node); err != nil {
				return nil, err
			}
		}
	}
	linkImplementations(out)
	return out, nil
}

// extendType folds a single `extend` block into the schema. The target type
// must already exist: extension application is single-pass with no forward
// resolution.
func extendType(s *schema.Schema, source string, node *language.Definition) error {
	target := s.Types[node.Name]
	if target == nil {
		return &UndefinedTypeReferenceError{Source: source, Type: node.Name}
	}

	switch node.Kind {
	case language.Object, language.Interface:
		for _, iface := range node.Interfaces {
			if !target.Implements(iface) {
				target.AddInterface(iface)
			}
		}
		for _, f := range node.Fields {
			if target.HasField(f.Name) {
				return &NameCollisionError{Source: source, Type: target.Name, Field: f.Name}
			}
			target.AddField(buildField(f))
		}
	case language.InputObject:
		for _, f := range node.Fields {
			if target.HasField(f.Name) {
				return &NameCollisionError{Source: source, Type: target.Name, Field: f.Name}
			}
			target.AddInputField(buildInputValue(f))
		}
	case language.Enum:
		for _, v := range node.EnumValues {
			if target.HasEnumValue(v.Name) {
				return &DuplicateTypeDefinitionError{Name: target.Name, Member: v.Name, First: "base schema", Second: source}
			}
			target.AddEnumValue(buildEnumValue(v))
		}
	case language.Union:
		for _, member := range node.Types {
			if target.HasPossibleType(member) {
				return &DuplicateTypeDefinitionError{Name: target.Name, Member: member, First: "base schema", Second: source}
			}
			target.AddPossibleType(member)
		}
	default:
		return &UndefinedTypeReferenceError{Source: source, Type: node.Name}
	}
	return nil
}

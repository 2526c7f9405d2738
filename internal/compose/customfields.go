package compose

import (
	"github.com/venlo/commercegraph/internal/schema"
)

const customFieldsFieldName = "customFields"

// kindTypeRef resolves a custom-field kind to its concrete field type via
// the fixed kind→type mapping table, applying the definition's list and
// nullable flags.
func kindTypeRef(entity string, def CustomFieldDefinition) (*schema.TypeRef, error) {
	var named string
	switch def.Kind {
	case KindString, KindLocaleString:
		named = "String"
	case KindInt:
		named = "Int"
	case KindFloat:
		named = "Float"
	case KindBoolean:
		named = "Boolean"
	case KindDateTime:
		named = "DateTime"
	case KindRelation:
		if def.RelatesTo == "" {
			return nil, &InvalidFieldKindError{Entity: entity, Field: def.Name, Kind: string(def.Kind) + " (missing relatesTo)"}
		}
		named = def.RelatesTo
	default:
		return nil, &InvalidFieldKindError{Entity: entity, Field: def.Name, Kind: string(def.Kind)}
	}

	ref := schema.NamedType(named)
	if def.List {
		ref = schema.ListType(schema.NonNullType(ref))
	}
	if !def.IsNullable() {
		ref = schema.NonNullType(ref)
	}
	return ref, nil
}

// visibleFields filters an entity's custom-field definitions for the
// composed surface: the admin surface exposes all, the shop surface only
// those marked public.
func visibleFields(e EntityCustomFields, surface Surface) []CustomFieldDefinition {
	if surface == SurfaceAdmin {
		return e.Fields
	}
	var out []CustomFieldDefinition
	for _, def := range e.Fields {
		if def.Public {
			out = append(out, def)
		}
	}
	return out
}

// injectCustomFields appends configuration-defined fields to each entity's
// custom-fields container type and attaches the container to the entity.
// Entities are processed in configuration order; within an entity, fields
// are appended in configuration order.
func injectCustomFields(s *schema.Schema, surface Surface, entities []EntityCustomFields) (*schema.Schema, error) {
	out := s.Clone()
	for _, e := range entities {
		fields := visibleFields(e, surface)
		if len(fields) == 0 {
			continue
		}
		entityType := out.Types[e.Entity]
		if entityType == nil {
			return nil, &UndefinedTypeReferenceError{Source: "custom-field injection", Type: e.Entity}
		}

		containerName := e.Entity + "CustomFields"
		if out.HasType(containerName) {
			return nil, &DuplicateTypeDefinitionError{Name: containerName, First: "base schema", Second: "custom-field injection"}
		}
		container := schema.NewType(containerName, schema.TypeKindObject, "")
		for _, def := range fields {
			if container.HasField(def.Name) {
				return nil, &NameCollisionError{Source: "custom-field injection", Type: containerName, Field: def.Name}
			}
			ref, err := kindTypeRef(e.Entity, def)
			if err != nil {
				return nil, err
			}
			container.AddField(schema.NewField(def.Name, "", ref))
		}
		out.AddType(container)

		if entityType.HasField(customFieldsFieldName) {
			return nil, &NameCollisionError{Source: "custom-field injection", Type: e.Entity, Field: customFieldsFieldName}
		}
		entityType.AddField(schema.NewField(customFieldsFieldName, "", schema.NamedType(containerName)))
	}
	return out, nil
}

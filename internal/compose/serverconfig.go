package compose

import (
	"github.com/iancoleman/strcase"

	"github.com/venlo/commercegraph/internal/schema"
)

const (
	customFieldConfigInterface = "CustomFieldConfig"
	customFieldsConfigType     = "CustomFields"
	serverConfigType           = "ServerConfig"
)

// customFieldConfigKinds fixes the concrete config type per field kind; the
// type resolution registry dispatches CustomFieldConfig values over the same
// table.
var customFieldConfigKinds = []FieldKind{
	KindString,
	KindLocaleString,
	KindInt,
	KindFloat,
	KindBoolean,
	KindDateTime,
	KindRelation,
}

// ConfigTypeForKind returns the concrete CustomFieldConfig implementation
// name for a field kind ("string" → "StringCustomFieldConfig").
func ConfigTypeForKind(kind FieldKind) string {
	if kind == KindDateTime {
		return "DateTimeCustomFieldConfig"
	}
	return strcase.ToCamel(string(kind)) + "CustomFieldConfig"
}

// generateServerConfigMetadata exposes the full custom-field definition set
// as introspectable configuration types. Admin surface only.
func generateServerConfigMetadata(s *schema.Schema, entities []EntityCustomFields) (*schema.Schema, error) {
	var withFields []EntityCustomFields
	for _, e := range entities {
		if len(e.Fields) > 0 {
			withFields = append(withFields, e)
		}
	}
	if len(withFields) == 0 {
		return s, nil
	}

	out := s.Clone()
	iface := schema.NewType(customFieldConfigInterface, schema.TypeKindInterface, "").
		AddField(schema.NewField("name", "", schema.NonNullType(schema.NamedType("String")))).
		AddField(schema.NewField("type", "", schema.NonNullType(schema.NamedType("String")))).
		AddField(schema.NewField("list", "", schema.NonNullType(schema.NamedType("Boolean")))).
		AddField(schema.NewField("nullable", "", schema.NonNullType(schema.NamedType("Boolean")))).
		AddField(schema.NewField("public", "", schema.NonNullType(schema.NamedType("Boolean"))))
	if out.HasType(iface.Name) {
		return nil, &DuplicateTypeDefinitionError{Name: iface.Name, First: "base schema", Second: "server-config generator"}
	}
	out.AddType(iface)

	for _, kind := range customFieldConfigKinds {
		concrete := schema.NewType(ConfigTypeForKind(kind), schema.TypeKindObject, "").
			AddInterface(customFieldConfigInterface)
		for _, f := range iface.Fields {
			concrete.AddField(schema.NewField(f.Name, "", f.Type))
		}
		switch kind {
		case KindString, KindLocaleString:
			concrete.AddField(schema.NewField("options", "", schema.ListType(schema.NonNullType(schema.NamedType("String")))))
		case KindRelation:
			concrete.AddField(schema.NewField("entity", "", schema.NonNullType(schema.NamedType("String"))))
		}
		if out.HasType(concrete.Name) {
			return nil, &DuplicateTypeDefinitionError{Name: concrete.Name, First: "base schema", Second: "server-config generator"}
		}
		out.AddType(concrete)
		iface.AddPossibleType(concrete.Name)
	}

	fieldsType := schema.NewType(customFieldsConfigType, schema.TypeKindObject, "")
	for _, e := range withFields {
		fieldsType.AddField(schema.NewField(
			strcase.ToLowerCamel(e.Entity), "",
			schema.NonNullType(schema.ListType(schema.NonNullType(schema.NamedType(customFieldConfigInterface)))),
		))
	}
	if out.HasType(fieldsType.Name) {
		return nil, &DuplicateTypeDefinitionError{Name: fieldsType.Name, First: "base schema", Second: "server-config generator"}
	}
	out.AddType(fieldsType)

	serverConfig := out.Types[serverConfigType]
	if serverConfig == nil {
		serverConfig = schema.NewType(serverConfigType, schema.TypeKindObject, "")
		out.AddType(serverConfig)
	}
	if serverConfig.HasField("customFieldConfig") {
		return nil, &NameCollisionError{Source: "server-config generator", Type: serverConfigType, Field: "customFieldConfig"}
	}
	serverConfig.AddField(schema.NewField("customFieldConfig", "", schema.NonNullType(schema.NamedType(customFieldsConfigType))))
	return out, nil
}

package compose

import (
	"github.com/venlo/commercegraph/internal/schema"
)

// Operator input types referenced by generated filter parameters. They are
// synthesized once, on first use, in this declaration order.
var operatorInputs = []struct {
	name   string
	fields []struct{ name, typ string }
}{
	{"IDOperators", []struct{ name, typ string }{
		{"eq", "ID"}, {"notEq", "ID"}, {"in", "[ID!]"}, {"notIn", "[ID!]"},
	}},
	{"StringOperators", []struct{ name, typ string }{
		{"eq", "String"}, {"notEq", "String"}, {"contains", "String"},
		{"notContains", "String"}, {"in", "[String!]"}, {"notIn", "[String!]"}, {"regex", "String"},
	}},
	{"NumberOperators", []struct{ name, typ string }{
		{"eq", "Float"}, {"lt", "Float"}, {"lte", "Float"}, {"gt", "Float"}, {"gte", "Float"},
	}},
	{"BooleanOperators", []struct{ name, typ string }{
		{"eq", "Boolean"},
	}},
	{"DateOperators", []struct{ name, typ string }{
		{"eq", "DateTime"}, {"before", "DateTime"}, {"after", "DateTime"},
	}},
}

// operatorForScalar maps a scalar type name to the operator input used in
// filter parameters. Non-scalar and list fields are not filterable.
func operatorForScalar(name string) string {
	switch name {
	case "ID":
		return "IDOperators"
	case "String":
		return "StringOperators"
	case "Int", "Float":
		return "NumberOperators"
	case "Boolean":
		return "BooleanOperators"
	case "DateTime":
		return "DateOperators"
	}
	return ""
}

// sortable reports whether a scalar type participates in sort parameters.
func sortable(name string) bool {
	switch name {
	case "ID", "String", "Int", "Float", "DateTime":
		return true
	}
	return false
}

// generateListOptions synthesizes <Entity>FilterParameter and
// <Entity>SortParameter input types for every entity exposing list queries.
// Generated fields mirror the entity's filterable/sortable fields, including
// custom fields injected earlier in the pipeline.
func generateListOptions(s *schema.Schema, surface Surface, entities []EntityCustomFields) (*schema.Schema, error) {
	out := s.Clone()
	for _, e := range entities {
		if !e.List {
			continue
		}
		entityType := out.Types[e.Entity]
		if entityType == nil {
			return nil, &UndefinedTypeReferenceError{Source: "list-options generation", Type: e.Entity}
		}

		mirror := entityType.Fields
		if container := out.Types[e.Entity+"CustomFields"]; container != nil {
			mirror = append(append([]*schema.Field(nil), mirror...), container.Fields...)
		}

		filter := schema.NewType(e.Entity+"FilterParameter", schema.TypeKindInputObject, "")
		sortParam := schema.NewType(e.Entity+"SortParameter", schema.TypeKindInputObject, "")
		for _, f := range mirror {
			if f.Name == customFieldsFieldName || f.Type.IsList() {
				continue
			}
			named := f.Type.GetNamedType()
			if op := operatorForScalar(named); op != "" {
				ensureOperatorInput(out, op)
				if filter.HasField(f.Name) {
					return nil, &NameCollisionError{Source: "list-options generation", Type: filter.Name, Field: f.Name}
				}
				filter.AddInputField(schema.NewInputValue(f.Name, "", schema.NamedType(op)))
			}
			if sortable(named) {
				ensureSortOrderEnum(out)
				sortParam.AddInputField(schema.NewInputValue(f.Name, "", schema.NamedType("SortOrder")))
			}
		}

		for _, t := range []*schema.Type{filter, sortParam} {
			if out.HasType(t.Name) {
				return nil, &DuplicateTypeDefinitionError{Name: t.Name, First: "base schema", Second: "list-options generation"}
			}
			out.AddType(t)
		}
	}
	return out, nil
}

func ensureOperatorInput(s *schema.Schema, name string) {
	if s.HasType(name) {
		return
	}
	for _, op := range operatorInputs {
		if op.name != name {
			continue
		}
		t := schema.NewType(op.name, schema.TypeKindInputObject, "")
		for _, f := range op.fields {
			t.AddInputField(schema.NewInputValue(f.name, "", parseTypeShorthand(f.typ)))
		}
		s.AddType(t)
		return
	}
}

func ensureSortOrderEnum(s *schema.Schema) {
	if s.HasType("SortOrder") {
		return
	}
	s.AddType(schema.NewType("SortOrder", schema.TypeKindEnum, "").
		AddEnumValue(schema.NewEnumValue("ASC", "")).
		AddEnumValue(schema.NewEnumValue("DESC", "")))
}

// parseTypeShorthand expands the compact notation used in the fixed operator
// tables ("ID", "[ID!]") into a TypeRef.
func parseTypeShorthand(t string) *schema.TypeRef {
	if len(t) > 1 && t[0] == '[' {
		inner := t[1 : len(t)-1]
		if len(inner) > 0 && inner[len(inner)-1] == '!' {
			return schema.ListType(schema.NonNullType(schema.NamedType(inner[:len(inner)-1])))
		}
		return schema.ListType(schema.NamedType(inner))
	}
	if len(t) > 0 && t[len(t)-1] == '!' {
		return schema.NonNullType(schema.NamedType(t[:len(t)-1]))
	}
	return schema.NamedType(t)
}

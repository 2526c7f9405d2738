package compose

import (
	"strconv"

	"github.com/venlo/commercegraph/internal/fragment"
	"github.com/venlo/commercegraph/internal/language"
	"github.com/venlo/commercegraph/internal/schema"
)

// parseBase parses the merged fragment set into the base schema. Fragments
// are parsed individually so syntax errors carry the offending fragment's
// identity. Definitions from all fragments are registered first (uniqueness
// enforced), then fragment-level `extend` blocks are folded in fragment
// order.
func parseBase(merged *fragment.Merged) (*schema.Schema, error) {
	type sourcedDoc struct {
		fragmentName string
		doc          *language.SchemaDocument
	}
	var docs []sourcedDoc
	for _, src := range merged.Sources {
		doc, err := language.ParseSchema(src)
		if err != nil {
			return nil, parseError(src.Name, err)
		}
		docs = append(docs, sourcedDoc{fragmentName: src.Name, doc: doc})
	}

	s := schema.NewSchema()
	declaredIn := map[string]string{}
	for _, d := range docs {
		for _, node := range d.doc.Definitions {
			if first, ok := declaredIn[node.Name]; ok {
				return nil, &DuplicateTypeDefinitionError{Name: node.Name, First: first, Second: d.fragmentName}
			}
			if s.HasType(node.Name) {
				// Builtin scalars cannot be redeclared.
				return nil, &DuplicateTypeDefinitionError{Name: node.Name, First: "builtin", Second: d.fragmentName}
			}
			declaredIn[node.Name] = d.fragmentName
			s.AddType(buildType(node))
		}
	}

	for _, d := range docs {
		for _, node := range d.doc.Extensions {
			if err := extendType(s, d.fragmentName, node); err != nil {
				return nil, err
			}
		}
		for _, node := range d.doc.Schema {
			for _, op := range node.OperationTypes {
				switch op.Operation {
				case "query":
					s.QueryType = op.Type
				case "mutation":
					s.MutationType = op.Type
				}
			}
		}
	}
	if s.QueryType == "" && s.HasType("Query") {
		s.QueryType = "Query"
	}
	if s.MutationType == "" && s.HasType("Mutation") {
		s.MutationType = "Mutation"
	}

	linkImplementations(s)
	return s, nil
}

func parseError(fragmentName string, err error) error {
	perr := &SchemaParseError{Fragment: fragmentName, Message: err.Error()}
	if gqlErr := language.AsGQLError(err); gqlErr != nil {
		perr.Message = gqlErr.Message
		if len(gqlErr.Locations) > 0 {
			perr.Line = gqlErr.Locations[0].Line
			perr.Column = gqlErr.Locations[0].Column
		}
	}
	return perr
}

func buildType(node *language.Definition) *schema.Type {
	switch node.Kind {
	case language.Object:
		return buildCompositeType(node, schema.TypeKindObject)
	case language.Interface:
		return buildCompositeType(node, schema.TypeKindInterface)
	case language.Union:
		t := schema.NewType(node.Name, schema.TypeKindUnion, node.Description)
		for _, member := range node.Types {
			t.AddPossibleType(member)
		}
		return t
	case language.Enum:
		t := schema.NewType(node.Name, schema.TypeKindEnum, node.Description)
		for _, v := range node.EnumValues {
			t.AddEnumValue(buildEnumValue(v))
		}
		return t
	case language.InputObject:
		t := schema.NewType(node.Name, schema.TypeKindInputObject, node.Description)
		t.SetOneOf(node.Directives.ForName("oneOf") != nil)
		for _, f := range node.Fields {
			t.AddInputField(buildInputValue(f))
		}
		return t
	case language.Scalar:
		return schema.NewType(node.Name, schema.TypeKindScalar, node.Description)
	}
	panic("unreachable")
}

func buildCompositeType(node *language.Definition, kind schema.TypeKind) *schema.Type {
	t := schema.NewType(node.Name, kind, node.Description)
	for _, iface := range node.Interfaces {
		t.AddInterface(iface)
	}
	for _, f := range node.Fields {
		t.AddField(buildField(f))
	}
	return t
}

func buildField(node *language.FieldDefinition) *schema.Field {
	f := schema.NewField(node.Name, node.Description, buildTypeRef(node.Type))
	for _, arg := range node.Arguments {
		in := schema.NewInputValue(arg.Name, arg.Description, buildTypeRef(arg.Type))
		if arg.DefaultValue != nil {
			in.SetDefault(convertValue(arg.DefaultValue))
		}
		f.AddArgument(in)
	}
	if d := node.Directives.ForName("deprecated"); d != nil {
		f.Deprecate(deprecationReason(d))
	}
	return f
}

func buildInputValue(node *language.FieldDefinition) *schema.InputValue {
	in := schema.NewInputValue(node.Name, node.Description, buildTypeRef(node.Type))
	if node.DefaultValue != nil {
		in.SetDefault(convertValue(node.DefaultValue))
	}
	return in
}

func buildEnumValue(node *language.EnumValueDefinition) *schema.EnumValue {
	v := schema.NewEnumValue(node.Name, node.Description)
	if d := node.Directives.ForName("deprecated"); d != nil {
		v.Deprecate(deprecationReason(d))
	}
	return v
}

func deprecationReason(d *language.Directive) string {
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		return arg.Value.Raw
	}
	return ""
}

func buildTypeRef(t *language.Type) *schema.TypeRef {
	if t == nil {
		return nil
	}
	var ref *schema.TypeRef
	if t.Elem != nil {
		ref = schema.ListType(buildTypeRef(t.Elem))
	} else {
		ref = schema.NamedType(t.NamedType)
	}
	if t.NonNull {
		ref = schema.NonNullType(ref)
	}
	return ref
}

func convertValue(v *language.Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case language.IntValue:
		n, _ := strconv.ParseInt(v.Raw, 10, 64)
		return n
	case language.FloatValue:
		f, _ := strconv.ParseFloat(v.Raw, 64)
		return f
	case language.StringValue, language.BlockValue:
		return v.Raw
	case language.BooleanValue:
		return v.Raw == "true"
	case language.EnumValue:
		return schema.EnumLiteral(v.Raw)
	case language.NullValue:
		return nil
	case language.ListValue:
		var out []any
		for _, c := range v.Children {
			out = append(out, convertValue(c.Value))
		}
		return out
	case language.ObjectValue:
		m := map[string]any{}
		for _, c := range v.Children {
			m[c.Name] = convertValue(c.Value)
		}
		return m
	}
	return nil
}

// linkImplementations recomputes interface possible-type lists from the
// objects declaring them. Runs after every stage that can add object types
// or interface declarations.
func linkImplementations(s *schema.Schema) {
	for _, name := range s.Order {
		t := s.Types[name]
		if t.Kind == schema.TypeKindInterface {
			t.PossibleTypes = nil
		}
	}
	for _, name := range s.Order {
		t := s.Types[name]
		if t.Kind != schema.TypeKindObject {
			continue
		}
		for _, ifaceName := range t.Interfaces {
			iface := s.Types[ifaceName]
			if iface != nil && iface.Kind == schema.TypeKindInterface {
				iface.AddPossibleType(t.Name)
			}
		}
	}
}

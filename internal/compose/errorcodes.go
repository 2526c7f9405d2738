package compose

import (
	"github.com/iancoleman/strcase"

	"github.com/venlo/commercegraph/internal/schema"
)

const (
	errorCodeEnumName    = "ErrorCode"
	errorResultInterface = "ErrorResult"
)

// generateErrorCodeEnum derives one ErrorCode member per object type
// implementing the ErrorResult interface, in declaration order. The returned
// mapping (type name → code) is consumed by the error-translation
// collaborator; the mapping is one-to-one by construction.
func generateErrorCodeEnum(s *schema.Schema) (*schema.Schema, map[string]string, error) {
	out := s.Clone()
	if out.HasType(errorCodeEnumName) {
		return nil, nil, &DuplicateTypeDefinitionError{Name: errorCodeEnumName, First: "base schema", Second: "error-code generator"}
	}

	enum := schema.NewType(errorCodeEnumName, schema.TypeKindEnum, "")
	codes := map[string]string{}
	memberOf := map[string]string{}
	for _, name := range out.Order {
		t := out.Types[name]
		if t.Kind != schema.TypeKindObject || !t.Implements(errorResultInterface) {
			continue
		}
		code := strcase.ToScreamingSnake(t.Name)
		if first, ok := memberOf[code]; ok {
			return nil, nil, &DuplicateTypeDefinitionError{Name: errorCodeEnumName, Member: code, First: first, Second: t.Name}
		}
		memberOf[code] = t.Name
		codes[t.Name] = code
		enum.AddEnumValue(schema.NewEnumValue(code, ""))
	}
	if len(codes) == 0 {
		return out, codes, nil
	}
	out.AddType(enum)
	return out, codes, nil
}

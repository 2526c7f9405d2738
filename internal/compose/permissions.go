package compose

import (
	"github.com/venlo/commercegraph/internal/schema"
)

const permissionEnumName = "Permission"

// BuiltinPermissions is the fixed builtin permission set. Declaration order
// here is the member order in the generated enum; custom permissions follow
// in registration order.
var BuiltinPermissions = []string{
	"Authenticated",
	"SuperAdmin",
	"Owner",
	"Public",
	"CreateCatalog",
	"ReadCatalog",
	"UpdateCatalog",
	"DeleteCatalog",
	"CreateProduct",
	"ReadProduct",
	"UpdateProduct",
	"DeleteProduct",
	"CreateOrder",
	"ReadOrder",
	"UpdateOrder",
	"DeleteOrder",
	"CreateCustomer",
	"ReadCustomer",
	"UpdateCustomer",
	"DeleteCustomer",
	"CreateSettings",
	"ReadSettings",
	"UpdateSettings",
	"DeleteSettings",
}

// generatePermissionEnum merges the builtin permission set with configured
// custom permission names into the Permission enum. Duplicate names are
// rejected case-sensitively.
func generatePermissionEnum(s *schema.Schema, builtins, customs []string) (*schema.Schema, error) {
	out := s.Clone()
	if out.HasType(permissionEnumName) {
		return nil, &DuplicateTypeDefinitionError{Name: permissionEnumName, First: "base schema", Second: "permission generator"}
	}

	enum := schema.NewType(permissionEnumName, schema.TypeKindEnum, "Permissions for administrators and customers.")
	origin := map[string]string{}
	add := func(name, source string) error {
		if first, ok := origin[name]; ok {
			return &DuplicateTypeDefinitionError{Name: permissionEnumName, Member: name, First: first, Second: source}
		}
		origin[name] = source
		enum.AddEnumValue(schema.NewEnumValue(name, ""))
		return nil
	}
	for _, name := range builtins {
		if err := add(name, "builtin"); err != nil {
			return nil, err
		}
	}
	for _, name := range customs {
		if err := add(name, "configuration"); err != nil {
			return nil, err
		}
	}
	out.AddType(enum)
	return out, nil
}

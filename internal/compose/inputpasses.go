package compose

import (
	"github.com/venlo/commercegraph/internal/schema"
)

// Mutation input types that receive entity custom fields, per surface.
// Order-line modification inputs take OrderLine custom fields; the customer
// registration input takes Customer custom fields.
var inputPassTargets = map[Surface]map[string][]string{
	SurfaceShop: {
		"OrderLine": {"AddItemToOrderInput", "AdjustOrderLineInput"},
		"Customer":  {"RegisterCustomerInput"},
	},
	SurfaceAdmin: {
		"OrderLine": {"AddItemToDraftOrderInput", "AdjustDraftOrderLineInput"},
	},
}

// applyInputPasses appends a customFields input to the order-line
// modification and customer registration inputs. The shop surface exposes
// only public definitions; the admin surface exposes all.
func applyInputPasses(s *schema.Schema, surface Surface, entities []EntityCustomFields) (*schema.Schema, error) {
	targetsByEntity := inputPassTargets[surface]
	out := s.Clone()
	for _, e := range entities {
		targets := targetsByEntity[e.Entity]
		if len(targets) == 0 {
			continue
		}
		fields := visibleFields(e, surface)
		if len(fields) == 0 {
			continue
		}

		inputName := e.Entity + "CustomFieldsInput"
		if out.HasType(inputName) {
			return nil, &DuplicateTypeDefinitionError{Name: inputName, First: "base schema", Second: "custom-field input pass"}
		}
		input := schema.NewType(inputName, schema.TypeKindInputObject, "")
		for _, def := range fields {
			ref, err := kindTypeRef(e.Entity, def)
			if err != nil {
				return nil, err
			}
			if def.Kind == KindRelation {
				// Relations are referenced by id on input.
				ref = schema.NamedType("ID")
				if def.List {
					ref = schema.ListType(schema.NonNullType(ref))
				}
			}
			input.AddInputField(schema.NewInputValue(def.Name, "", ref))
		}
		out.AddType(input)

		for _, targetName := range targets {
			target := out.Types[targetName]
			if target == nil || target.Kind != schema.TypeKindInputObject {
				return nil, &UndefinedTypeReferenceError{Source: "custom-field input pass", Type: targetName}
			}
			if target.HasField(customFieldsFieldName) {
				return nil, &NameCollisionError{Source: "custom-field input pass", Type: targetName, Field: customFieldsFieldName}
			}
			target.AddInputField(schema.NewInputValue(customFieldsFieldName, "", schema.NamedType(inputName)))
		}
	}
	return out, nil
}

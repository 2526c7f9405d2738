package compose

import (
	"github.com/iancoleman/strcase"

	"github.com/venlo/commercegraph/internal/schema"
)

const (
	authInputName     = "AuthenticationInput"
	loginMutationName = "authenticate"
)

// generateAuthInputs builds one credential input type per authentication
// strategy applicable to the surface and collects them into the
// AuthenticationInput tagged union (a oneOf input keyed by strategy name),
// wiring it into the login mutation's accepted input set.
func generateAuthInputs(s *schema.Schema, surface Surface, strategies []AuthStrategy) (*schema.Schema, error) {
	var applicable []AuthStrategy
	for _, strat := range strategies {
		if strat.Surfaces.Matches(surface) {
			applicable = append(applicable, strat)
		}
	}
	if len(applicable) == 0 {
		return s, nil
	}

	out := s.Clone()
	union := schema.NewType(authInputName, schema.TypeKindInputObject, "").SetOneOf(true)
	if out.HasType(authInputName) {
		return nil, &DuplicateTypeDefinitionError{Name: authInputName, First: "base schema", Second: "auth generator"}
	}

	seen := map[string]string{}
	for _, strat := range applicable {
		inputName := strcase.ToCamel(strat.Name) + "AuthInput"
		if first, ok := seen[strat.Name]; ok {
			return nil, &DuplicateTypeDefinitionError{Name: authInputName, Member: strat.Name, First: first, Second: "auth strategy " + strat.Name}
		}
		seen[strat.Name] = "auth strategy " + strat.Name
		if out.HasType(inputName) {
			return nil, &DuplicateTypeDefinitionError{Name: inputName, First: "base schema", Second: "auth strategy " + strat.Name}
		}

		input := schema.NewType(inputName, schema.TypeKindInputObject, "")
		for _, cred := range strat.Credentials {
			if !out.HasType(cred.Type) {
				return nil, &UndefinedTypeReferenceError{Source: "auth strategy " + strat.Name, Type: cred.Type}
			}
			ref := schema.NamedType(cred.Type)
			if cred.Required {
				ref = schema.NonNullType(ref)
			}
			input.AddInputField(schema.NewInputValue(cred.Name, "", ref))
		}
		out.AddType(input)

		// oneOf members must be nullable; exactly one is set per request.
		union.AddInputField(schema.NewInputValue(strcase.ToLowerCamel(strat.Name), "", schema.NamedType(inputName)))
	}
	out.AddType(union)

	if mutation := out.GetMutationType(); mutation != nil {
		if login := mutation.Field(loginMutationName); login != nil && len(login.Arguments) == 0 {
			login.AddArgument(schema.NewInputValue("input", "", schema.NonNullType(schema.NamedType(authInputName))))
		}
	}
	return out, nil
}

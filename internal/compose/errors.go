package compose

import "fmt"

// Composition errors are fatal: any of them aborts the surface's composition
// and is reported to the operator with enough identity (fragment, plugin,
// field) to fix the offending configuration. Nothing is retried and no stage
// substitutes a default type to continue.

// DuplicateTypeDefinitionError reports a type, or an enum member, declared
// more than once without an extension marker.
type DuplicateTypeDefinitionError struct {
	Name   string // type name
	Member string // enum member, empty when the whole type is duplicated
	First  string // fragment/plugin/generator contributing the first declaration
	Second string // source of the conflicting declaration
}

func (e *DuplicateTypeDefinitionError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("duplicate member %q on %q (declared in %s, redeclared in %s)",
			e.Member, e.Name, e.First, e.Second)
	}
	return fmt.Sprintf("type %q declared in %s is redeclared in %s", e.Name, e.First, e.Second)
}

// UndefinedTypeReferenceError reports an extension or custom-field pass
// targeting a type absent from the schema.
type UndefinedTypeReferenceError struct {
	Source string // plugin id, fragment name or pass name
	Type   string
}

func (e *UndefinedTypeReferenceError) Error() string {
	return fmt.Sprintf("%s targets undefined type %q", e.Source, e.Type)
}

// InvalidFieldKindError reports a custom-field definition naming an
// unsupported kind.
type InvalidFieldKindError struct {
	Entity string
	Field  string
	Kind   string
}

func (e *InvalidFieldKindError) Error() string {
	return fmt.Sprintf("custom field %s.%s has unsupported kind %q", e.Entity, e.Field, e.Kind)
}

// NameCollisionError reports an injected or extended field colliding with an
// existing field on the target type.
type NameCollisionError struct {
	Source string // plugin id, fragment name or pass name
	Type   string
	Field  string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("%s adds field %q which already exists on type %q", e.Source, e.Field, e.Type)
}

// SchemaParseError reports malformed fragment text.
type SchemaParseError struct {
	Fragment string
	Line     int
	Column   int
	Message  string
}

func (e *SchemaParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Fragment, e.Line, e.Column, e.Message)
}

package schema

// Schema is the canonical in-memory representation of one API surface.
// Types are keyed by name; Order preserves declaration order, which is
// observable in rendered output. A Schema value is never mutated by a
// composition pass: each pass clones, modifies the clone and returns it.
type Schema struct {
	QueryType    string
	MutationType string
	Order        []string
	Types        map[string]*Type
}

// NewSchema returns an empty schema preloaded with the builtin scalars.
func NewSchema() *Schema {
	s := &Schema{Types: make(map[string]*Type)}
	s.AddType(stringType).
		AddType(intType).
		AddType(floatType).
		AddType(booleanType).
		AddType(idType)
	return s
}

// AddType registers t, appending it to the declaration order. Re-registering
// an existing name replaces the type in place without reordering; callers
// enforce uniqueness before adding.
func (s *Schema) AddType(t *Type) *Schema {
	if _, ok := s.Types[t.Name]; !ok {
		s.Order = append(s.Order, t.Name)
	}
	s.Types[t.Name] = t
	return s
}

// HasType reports whether a type with the given name is declared.
func (s *Schema) HasType(name string) bool {
	_, ok := s.Types[name]
	return ok
}

// GetQueryType returns the root query type (may be nil if absent).
func (s *Schema) GetQueryType() *Type { return s.Types[s.QueryType] }

// GetMutationType returns the root mutation type (may be nil if absent).
func (s *Schema) GetMutationType() *Type { return s.Types[s.MutationType] }

// AbstractTypes returns the interface and union types in declaration order.
func (s *Schema) AbstractTypes() []*Type {
	var out []*Type
	for _, name := range s.Order {
		t := s.Types[name]
		if t.Kind == TypeKindInterface || t.Kind == TypeKindUnion {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a deep copy. Builtin scalar types are shared; they carry no
// mutable state.
func (s *Schema) Clone() *Schema {
	c := &Schema{
		QueryType:    s.QueryType,
		MutationType: s.MutationType,
		Order:        append([]string(nil), s.Order...),
		Types:        make(map[string]*Type, len(s.Types)),
	}
	for name, t := range s.Types {
		if isBuiltin(t) {
			c.Types[name] = t
			continue
		}
		c.Types[name] = t.clone()
	}
	return c
}

// Type is a named GraphQL type (object, interface, union, scalar, enum, input).
type Type struct {
	Name          string
	Kind          TypeKind
	Description   string
	Fields        []*Field      // for OBJECT and INTERFACE
	Interfaces    []string      // for OBJECT and INTERFACE (implemented)
	PossibleTypes []string      // for INTERFACE and UNION
	EnumValues    []*EnumValue  // for ENUM
	InputFields   []*InputValue // for INPUT_OBJECT
	OneOf         bool
}

// NewType creates a type of the given kind.
func NewType(name string, kind TypeKind, description string) *Type {
	return &Type{Name: name, Kind: kind, Description: description}
}

func (t *Type) AddField(f *Field) *Type        { t.Fields = append(t.Fields, f); return t }
func (t *Type) AddInterface(name string) *Type { t.Interfaces = append(t.Interfaces, name); return t }
func (t *Type) AddPossibleType(name string) *Type {
	t.PossibleTypes = append(t.PossibleTypes, name)
	return t
}
func (t *Type) AddEnumValue(v *EnumValue) *Type   { t.EnumValues = append(t.EnumValues, v); return t }
func (t *Type) AddInputField(v *InputValue) *Type { t.InputFields = append(t.InputFields, v); return t }
func (t *Type) SetOneOf(oneOf bool) *Type         { t.OneOf = oneOf; return t }

// HasField reports whether an output field or input field with the given
// name exists on the type.
func (t *Type) HasField(name string) bool {
	for _, f := range t.Fields {
		if f.Name == name {
			return true
		}
	}
	for _, f := range t.InputFields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// HasEnumValue reports whether the enum declares the given member name.
// Comparison is case-sensitive.
func (t *Type) HasEnumValue(name string) bool {
	for _, v := range t.EnumValues {
		if v.Name == name {
			return true
		}
	}
	return false
}

// HasPossibleType reports whether the union or interface already lists the
// given concrete member.
func (t *Type) HasPossibleType(name string) bool {
	for _, n := range t.PossibleTypes {
		if n == name {
			return true
		}
	}
	return false
}

// Field returns the named output field, or nil.
func (t *Type) Field(name string) *Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Implements reports whether the type declares the given interface.
func (t *Type) Implements(ifaceName string) bool {
	for _, name := range t.Interfaces {
		if name == ifaceName {
			return true
		}
	}
	return false
}

func (t *Type) clone() *Type {
	c := &Type{
		Name:          t.Name,
		Kind:          t.Kind,
		Description:   t.Description,
		Interfaces:    append([]string(nil), t.Interfaces...),
		PossibleTypes: append([]string(nil), t.PossibleTypes...),
		OneOf:         t.OneOf,
	}
	for _, f := range t.Fields {
		c.Fields = append(c.Fields, f.clone())
	}
	for _, v := range t.EnumValues {
		ev := *v
		c.EnumValues = append(c.EnumValues, &ev)
	}
	for _, v := range t.InputFields {
		c.InputFields = append(c.InputFields, v.clone())
	}
	return c
}

// TypeKind represents the kind of GraphQL type.
type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
)

// Field represents a field on an object or interface.
type Field struct {
	Name              string
	Description       string
	Type              *TypeRef
	Arguments         []*InputValue
	IsDeprecated      bool
	DeprecationReason string
}

// NewField creates an output field.
func NewField(name, description string, typeRef *TypeRef) *Field {
	return &Field{Name: name, Description: description, Type: typeRef}
}

func (f *Field) AddArgument(v *InputValue) *Field { f.Arguments = append(f.Arguments, v); return f }

func (f *Field) Deprecate(reason string) *Field {
	f.IsDeprecated = true
	f.DeprecationReason = reason
	return f
}

func (f *Field) clone() *Field {
	c := *f
	c.Arguments = nil
	for _, a := range f.Arguments {
		c.Arguments = append(c.Arguments, a.clone())
	}
	return &c
}

// EnumValue is one member of an enum type.
type EnumValue struct {
	Name              string
	Description       string
	IsDeprecated      bool
	DeprecationReason string
}

// NewEnumValue creates an enum member.
func NewEnumValue(name, description string) *EnumValue {
	return &EnumValue{Name: name, Description: description}
}

func (v *EnumValue) Deprecate(reason string) *EnumValue {
	v.IsDeprecated = true
	v.DeprecationReason = reason
	return v
}

// EnumLiteral is a default value that renders as a bare enum member rather
// than a quoted string.
type EnumLiteral string

// InputValue is an input field or an argument.
type InputValue struct {
	Name         string
	Description  string
	Type         *TypeRef
	DefaultValue any
}

// NewInputValue creates an input field or argument.
func NewInputValue(name, description string, typeRef *TypeRef) *InputValue {
	return &InputValue{Name: name, Description: description, Type: typeRef}
}

func (v *InputValue) SetDefault(value any) *InputValue { v.DefaultValue = value; return v }

func (v *InputValue) clone() *InputValue {
	c := *v
	return &c
}

// TypeRef represents a reference to a type (possibly wrapped).
type TypeRef struct {
	Kind   TypeRefKind
	OfType *TypeRef // for LIST and NON_NULL
	Named  string   // for NAMED
}

type TypeRefKind string

const (
	TypeRefKindNamed   TypeRefKind = "NAMED"
	TypeRefKindList    TypeRefKind = "LIST"
	TypeRefKindNonNull TypeRefKind = "NON_NULL"
)

func NonNullType(t *TypeRef) *TypeRef { return &TypeRef{Kind: TypeRefKindNonNull, OfType: t} }
func ListType(t *TypeRef) *TypeRef    { return &TypeRef{Kind: TypeRefKindList, OfType: t} }
func NamedType(name string) *TypeRef  { return &TypeRef{Kind: TypeRefKindNamed, Named: name} }

// IsNonNull reports whether the type is wrapped with Non-Null.
func (t *TypeRef) IsNonNull() bool {
	return t != nil && t.Kind == TypeRefKindNonNull
}

// IsList reports whether the type is (or is wrapped by) a list type.
func (t *TypeRef) IsList() bool {
	if t.Kind == TypeRefKindList {
		return true
	}
	if t.Kind == TypeRefKindNonNull && t.OfType != nil {
		return t.OfType.Kind == TypeRefKindList
	}
	return false
}

// Unwrap removes one layer of Non-Null or List wrapping.
func (t *TypeRef) Unwrap() *TypeRef {
	if t.Kind == TypeRefKindNonNull || t.Kind == TypeRefKindList {
		return t.OfType
	}
	return t
}

// GetNamedType returns the innermost named type for the given reference.
func (t *TypeRef) GetNamedType() string {
	current := t
	for current != nil {
		if current.Named != "" {
			return current.Named
		}
		current = current.OfType
	}
	return ""
}

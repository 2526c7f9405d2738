package compose

// Surface identifies one of the two independently composed API surfaces.
type Surface string

const (
	// SurfaceAdmin is the primary surface: full custom-field visibility,
	// server-config metadata.
	SurfaceAdmin Surface = "admin"
	// SurfaceShop is the restricted surface: only public custom fields are
	// exposed on shop-facing input types.
	SurfaceShop Surface = "shop"
)

// SurfaceFilter selects which surfaces an extension or auth strategy
// applies to.
type SurfaceFilter string

const (
	FilterAdmin SurfaceFilter = "admin"
	FilterShop  SurfaceFilter = "shop"
	FilterBoth  SurfaceFilter = "both"
)

// Matches reports whether the filter selects the given surface.
// An empty filter means both.
func (f SurfaceFilter) Matches(s Surface) bool {
	switch f {
	case FilterAdmin:
		return s == SurfaceAdmin
	case FilterShop:
		return s == SurfaceShop
	default:
		return true
	}
}

// Extension is a plugin-contributed schema addition. Extensions apply
// strictly in registration order: each one observes the effects of all
// preceding ones.
type Extension struct {
	PluginID string        `yaml:"plugin"`
	Surfaces SurfaceFilter `yaml:"surfaces"`
	SDL      string        `yaml:"sdl"`
}

// FieldKind is the configuration-level kind of a custom field, resolved to a
// GraphQL type via a fixed mapping table.
type FieldKind string

const (
	KindString       FieldKind = "string"
	KindLocaleString FieldKind = "localeString"
	KindInt          FieldKind = "int"
	KindFloat        FieldKind = "float"
	KindBoolean      FieldKind = "boolean"
	KindDateTime     FieldKind = "datetime"
	KindRelation     FieldKind = "relation"
)

// CustomFieldDefinition is one configuration-defined field injected into an
// entity type and its derived input/filter/sort types.
type CustomFieldDefinition struct {
	Name      string    `yaml:"name"`
	Kind      FieldKind `yaml:"kind"`
	List      bool      `yaml:"list"`
	Nullable  *bool     `yaml:"nullable"`
	Public    bool      `yaml:"public"`
	Options   []string  `yaml:"options"`
	RelatesTo string    `yaml:"relatesTo"` // target entity for relation kind
}

// IsNullable reports the nullability flag; fields are nullable unless
// configured otherwise.
func (d CustomFieldDefinition) IsNullable() bool {
	return d.Nullable == nil || *d.Nullable
}

// EntityCustomFields is the ordered custom-field configuration of one entity.
// Entities are processed in configuration order; within an entity, fields are
// appended in configuration order.
type EntityCustomFields struct {
	Entity string                  `yaml:"entity"`
	List   bool                    `yaml:"list"` // entity exposes list queries (filter/sort types)
	Fields []CustomFieldDefinition `yaml:"fields"`
}

// AuthStrategy describes one authentication strategy contributing a
// credential input type to the surface's login mutation.
type AuthStrategy struct {
	Name        string            `yaml:"name"`
	Surfaces    SurfaceFilter     `yaml:"surfaces"`
	Credentials []CredentialField `yaml:"credentials"`
}

// CredentialField is one field of a strategy's credential shape.
type CredentialField struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"` // named GraphQL type, e.g. "String"
	Required bool   `yaml:"required"`
}

package language

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
)

// NewSource wraps raw SDL text under the given name so positions in parse
// errors and definitions point back at the originating fragment.
func NewSource(name, input string) *Source {
	return &ast.Source{Name: name, Input: input}
}

// ParseSchema parses one or more SDL sources into a single document.
// Definition order across sources follows the order of the source arguments.
func ParseSchema(sources ...*Source) (*SchemaDocument, error) {
	doc, err := parser.ParseSchemas(sources...)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// AsGQLError returns the location-carrying form of a parser error,
// or nil when err carries no location information.
func AsGQLError(err error) *gqlerror.Error {
	var gqlErr *gqlerror.Error
	if e, ok := err.(*gqlerror.Error); ok {
		gqlErr = e
	}
	return gqlErr
}

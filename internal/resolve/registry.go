// Package resolve builds the dispatch table substituting for native dynamic
// dispatch at request time: for every abstract (interface or union) schema
// type it holds one function computing the concrete type name for a runtime
// value.
package resolve

import (
	"fmt"

	"github.com/venlo/commercegraph/internal/schema"
)

// Resolver computes the concrete type name for a runtime value of one
// abstract type. A resolver never silently reports "no match": values it
// cannot classify yield an UnresolvedAbstractTypeError.
type Resolver func(value any) (string, error)

// Registry holds exactly one resolver per abstract type declared in the
// schema. It is populated once during composition and immutable afterwards.
type Registry struct {
	order     []string
	resolvers map[string]Resolver
}

// UnresolvedAbstractTypeError reports an abstract type without a dispatch
// function, or a dispatch function given a value it cannot classify.
type UnresolvedAbstractTypeError struct {
	Type   string
	Reason string
}

func (e *UnresolvedAbstractTypeError) Error() string {
	return fmt.Sprintf("cannot resolve concrete type for %q: %s", e.Type, e.Reason)
}

// AbstractTypes returns the registered abstract type names in schema
// declaration order.
func (r *Registry) AbstractTypes() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Resolver returns the dispatch function for an abstract type.
func (r *Registry) Resolver(abstractType string) (Resolver, bool) {
	res, ok := r.resolvers[abstractType]
	return res, ok
}

// Resolve classifies value as a concrete member of the given abstract type.
func (r *Registry) Resolve(abstractType string, value any) (string, error) {
	res, ok := r.resolvers[abstractType]
	if !ok {
		return "", &UnresolvedAbstractTypeError{Type: abstractType, Reason: "no dispatch function registered"}
	}
	return res(value)
}

// Build assigns a dispatch strategy to every abstract type in the schema, in
// priority order: discriminant-tag tables, structural probes, then identity
// dispatch for error-result types. An abstract type no strategy covers fails
// composition; the registry handed to the executor is always exhaustive.
func Build(s *schema.Schema) (*Registry, error) {
	r := &Registry{resolvers: make(map[string]Resolver)}
	for _, t := range s.AbstractTypes() {
		resolver, err := resolverFor(s, t)
		if err != nil {
			return nil, err
		}
		r.order = append(r.order, t.Name)
		r.resolvers[t.Name] = resolver
	}
	return r, nil
}

func resolverFor(s *schema.Schema, t *schema.Type) (Resolver, error) {
	if table, ok := tagTables[t.Name]; ok {
		for tag, concrete := range table.mapping {
			if !s.HasType(concrete) {
				return nil, &UnresolvedAbstractTypeError{
					Type:   t.Name,
					Reason: fmt.Sprintf("dispatch table maps tag %q to undeclared type %q", tag, concrete),
				}
			}
		}
		return tagResolver(t.Name, table), nil
	}
	if probe, ok := structuralProbes[t.Name]; ok {
		for _, concrete := range probe.targets() {
			if !s.HasType(concrete) {
				return nil, &UnresolvedAbstractTypeError{
					Type:   t.Name,
					Reason: fmt.Sprintf("structural probe targets undeclared type %q", concrete),
				}
			}
		}
		return probeResolver(t.Name, probe), nil
	}
	if isErrorResult(s, t) {
		return identityResolver(t.Name, t.PossibleTypes), nil
	}
	return nil, &UnresolvedAbstractTypeError{Type: t.Name, Reason: "no dispatch strategy applies"}
}

// isErrorResult reports whether the abstract type carries its concrete type
// name on the value: the ErrorResult interface itself, or a union whose
// members all implement ErrorResult.
func isErrorResult(s *schema.Schema, t *schema.Type) bool {
	if t.Name == "ErrorResult" && t.Kind == schema.TypeKindInterface {
		return true
	}
	if t.Kind != schema.TypeKindUnion || len(t.PossibleTypes) == 0 {
		return false
	}
	errorMembers := 0
	for _, member := range t.PossibleTypes {
		mt := s.Types[member]
		if mt != nil && mt.Implements("ErrorResult") {
			errorMembers++
		}
	}
	// A result union mixes one success type with error results.
	return errorMembers >= len(t.PossibleTypes)-1 && errorMembers > 0
}

func asObject(abstractType string, value any) (map[string]any, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &UnresolvedAbstractTypeError{
			Type:   abstractType,
			Reason: fmt.Sprintf("value of type %T carries no inspectable fields", value),
		}
	}
	return obj, nil
}

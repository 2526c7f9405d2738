// Package compose assembles one API surface's schema at process startup:
// fragment merge, parse, plugin extensions, custom-field injection, synthetic
// type generation, type-resolution registry construction and canonical
// rendering. Stages are strictly sequential pure Schema→Schema functions; a
// failure at any stage aborts the surface's composition.
package compose

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/venlo/commercegraph/internal/fragment"
	"github.com/venlo/commercegraph/internal/resolve"
	"github.com/venlo/commercegraph/internal/schema"
)

// Options carries the fully resolved inputs for one surface's composition.
// Slice order is semantic throughout: fragments merge in position order,
// extensions apply in registration order, custom fields and permissions are
// generated in configuration order.
type Options struct {
	Surface           Surface
	Fragments         []fragment.Fragment
	Extensions        []Extension
	CustomFields      []EntityCustomFields
	CustomPermissions []string
	AuthStrategies    []AuthStrategy
}

// Result is the composed surface handed to the request executor and other
// collaborators.
type Result struct {
	Surface    Surface
	Schema     *schema.Schema
	SDL        string
	Registry   *resolve.Registry
	ErrorCodes map[string]string // error-result type name → ErrorCode member
}

// Compose runs the full pipeline for one surface. It is deterministic over
// its inputs and performs no I/O; fragment retrieval happens before this
// call.
func Compose(ctx context.Context, opts Options) (*Result, error) {
	tracer := otel.Tracer("commercegraph/compose")
	ctx, span := tracer.Start(ctx, "compose",
		trace.WithAttributes(attribute.String("surface", string(opts.Surface))))
	defer span.End()

	res := &Result{Surface: opts.Surface}

	stage := func(name string, fn func(*schema.Schema) (*schema.Schema, error)) error {
		_, stageSpan := tracer.Start(ctx, name,
			trace.WithAttributes(attribute.String("surface", string(opts.Surface))))
		defer stageSpan.End()
		next, err := fn(res.Schema)
		if err != nil {
			stageSpan.RecordError(err)
			return fmt.Errorf("%s surface, %s: %w", opts.Surface, name, err)
		}
		res.Schema = next
		return nil
	}

	merged := fragment.Merge(opts.Fragments)

	steps := []struct {
		name string
		fn   func(*schema.Schema) (*schema.Schema, error)
	}{
		{"parse", func(*schema.Schema) (*schema.Schema, error) {
			return parseBase(merged)
		}},
		{"extensions", func(s *schema.Schema) (*schema.Schema, error) {
			return applyExtensions(s, opts.Surface, opts.Extensions)
		}},
		{"custom-fields", func(s *schema.Schema) (*schema.Schema, error) {
			return injectCustomFields(s, opts.Surface, opts.CustomFields)
		}},
		{"list-options", func(s *schema.Schema) (*schema.Schema, error) {
			return generateListOptions(s, opts.Surface, opts.CustomFields)
		}},
		{"input-passes", func(s *schema.Schema) (*schema.Schema, error) {
			return applyInputPasses(s, opts.Surface, opts.CustomFields)
		}},
		{"permissions", func(s *schema.Schema) (*schema.Schema, error) {
			return generatePermissionEnum(s, BuiltinPermissions, opts.CustomPermissions)
		}},
		{"error-codes", func(s *schema.Schema) (*schema.Schema, error) {
			next, codes, err := generateErrorCodeEnum(s)
			res.ErrorCodes = codes
			return next, err
		}},
		{"auth", func(s *schema.Schema) (*schema.Schema, error) {
			return generateAuthInputs(s, opts.Surface, opts.AuthStrategies)
		}},
	}
	for _, step := range steps {
		if err := stage(step.name, step.fn); err != nil {
			return nil, err
		}
	}
	if opts.Surface == SurfaceAdmin {
		err := stage("server-config", func(s *schema.Schema) (*schema.Schema, error) {
			return generateServerConfigMetadata(s, opts.CustomFields)
		})
		if err != nil {
			return nil, err
		}
	}

	registry, err := resolve.Build(res.Schema)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%s surface, registry: %w", opts.Surface, err)
	}
	res.Registry = registry

	res.SDL = schema.Render(res.Schema)
	return res, nil
}

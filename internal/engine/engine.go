// Package engine applies a mapping spec to decoded JSON input,
// producing a freshly built output document.
package engine

import (
	"fmt"
	"log/slog"

	"jsonremap/internal/diagnostic"
	"jsonremap/internal/mapping"
	"jsonremap/internal/path"
	"jsonremap/internal/transform"
)

// Interpreter applies mapping specs. It is stateless across calls; the
// registry and logger are fixed at construction.
type Interpreter struct {
	registry *transform.Registry
	logger   *slog.Logger
}

// New creates an interpreter. A nil registry means the built-in
// transforms; a nil logger means slog's default.
func New(registry *transform.Registry, logger *slog.Logger) *Interpreter {
	if registry == nil {
		registry = transform.Builtin()
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Interpreter{registry: registry, logger: logger}
}

// Transform is the convenience form of Interpreter.Transform with the
// built-in registry and default logger.
func Transform(input any, spec *mapping.Spec) (any, *diagnostic.Diagnostics) {
	return New(nil, nil).Transform(input, spec)
}

// Transform applies spec to input. An array input is lifted: every
// element is mapped independently and the results are returned as a
// same-length array in input order. Anything that fails to resolve is
// omitted rather than failing the pass; the returned diagnostics carry
// the warnings surfaced along the way.
func (it *Interpreter) Transform(input any, spec *mapping.Spec) (any, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	if items, ok := input.([]any); ok {
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = it.transformOne(item, spec, diags)
		}

		return out, diags
	}

	return it.transformOne(input, spec, diags), diags
}

// transformOne maps a single record. The output record starts empty and
// every entry writes into it additively; entries never read it back,
// all resolution happens against the original input.
func (it *Interpreter) transformOne(input any, spec *mapping.Spec, diags *diagnostic.Diagnostics) map[string]any {
	out := map[string]any{}

	for _, entry := range spec.Entries {
		switch entry.Value.Kind {
		case mapping.EntrySkip:
			continue

		case mapping.EntryTransform:
			if v, ok := it.invoke(input, entry, diags); ok {
				path.Write(out, entry.Target, v)
			}

		default:
			if v, ok := mapping.Resolve(input, entry.Value); ok {
				path.Write(out, entry.Target, v)
			}
		}
	}

	return out
}

// invoke resolves a transform directive's arguments, runs the function,
// and contains any panic to this one entry.
func (it *Interpreter) invoke(input any, entry mapping.SpecEntry, diags *diagnostic.Diagnostics) (v any, ok bool) {
	d := entry.Value.Transform

	fn := it.registry.Get(d.Name)
	if fn == nil {
		msg := fmt.Sprintf("unknown transform %q", d.Name)
		diags.AddWarning("unknown-transform", msg, entry.Target)
		it.logger.Warn("skipping mapping entry",
			slog.String("target", entry.Target),
			slog.String("transform", d.Name),
			slog.String("reason", "unknown transform"),
		)

		return nil, false
	}

	var args []any

	if d.HasArgs {
		args = make([]any, 0, len(d.Args))
		for _, a := range d.Args {
			av, _ := mapping.Resolve(input, a)
			args = append(args, av)
		}
	} else {
		av, _ := mapping.Resolve(input, mapping.Classify(d.Path))
		args = []any{av}
	}

	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("transform %q failed: %v", d.Name, r)
			diags.AddWarning("transform-failed", msg, entry.Target)
			it.logger.Warn("skipping mapping entry",
				slog.String("target", entry.Target),
				slog.String("transform", d.Name),
				slog.Any("error", r),
			)

			v, ok = nil, false
		}
	}()

	return fn(args)
}

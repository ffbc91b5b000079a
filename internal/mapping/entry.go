// Package mapping defines the mapping-spec model: the ordered spec
// loaded from a JSON or YAML file, the classification of each entry
// value into its variant, and resolution of classified entries against
// an input document.
package mapping

import (
	"strings"

	"jsonremap/internal/path"
)

// Reserved keys recognized inside mapping entry objects.
const (
	keyTransform = "$transform"
	keyLiteral   = "$literal"
	keyPath      = "$path"
	keyArgs      = "$args"
)

// EntryKind discriminates the variants of a classified entry value.
type EntryKind int

const (
	// EntrySkip marks entries that produce nothing (null or "").
	EntrySkip EntryKind = iota
	// EntryLiteral carries a verbatim value.
	EntryLiteral
	// EntryPath references a location in the input document.
	EntryPath
	// EntryTransform invokes a registered transform function.
	EntryTransform
)

// Entry is the classified form of one mapping entry value. Exactly the
// fields relevant to its Kind are populated.
type Entry struct {
	Kind      EntryKind
	Literal   any
	Path      string
	Transform *Directive
}

// Directive is a $transform invocation with its still-unresolved
// arguments. HasArgs distinguishes an explicit empty $args list from
// the single-argument $path form.
type Directive struct {
	Name    string
	Path    string
	Args    []Entry
	HasArgs bool
}

// Classify maps a raw mapping entry value onto the Entry variant it
// denotes. Classification order, first match wins:
//
//  1. null or empty string: skip
//  2. object with $transform: transform directive
//  3. object with $literal: the wrapped value, verbatim
//  4. any other non-string value: verbatim
//  5. string with a leading "=": literal string, one "=" stripped
//  6. any other string: source path
func Classify(value any) Entry {
	return classify(value, true)
}

// classify implements Classify. Transform directives are only
// recognized at the top level of an entry; inside $args an object with
// a $transform key is an ordinary literal.
func classify(value any, allowDirective bool) Entry {
	switch v := value.(type) {
	case nil:
		return Entry{Kind: EntrySkip}

	case string:
		if v == "" {
			return Entry{Kind: EntrySkip}
		}

		if rest, ok := strings.CutPrefix(v, "="); ok {
			return Entry{Kind: EntryLiteral, Literal: rest}
		}

		return Entry{Kind: EntryPath, Path: v}

	case map[string]any:
		if allowDirective {
			if _, ok := v[keyTransform]; ok {
				return classifyDirective(v)
			}
		}

		if lit, ok := v[keyLiteral]; ok {
			return Entry{Kind: EntryLiteral, Literal: lit}
		}

		return Entry{Kind: EntryLiteral, Literal: v}

	default:
		return Entry{Kind: EntryLiteral, Literal: value}
	}
}

func classifyDirective(obj map[string]any) Entry {
	d := &Directive{}

	if name, ok := obj[keyTransform].(string); ok {
		d.Name = name
	}

	if p, ok := obj[keyPath].(string); ok {
		d.Path = p
	}

	if args, ok := obj[keyArgs].([]any); ok {
		d.HasArgs = true
		d.Args = make([]Entry, 0, len(args))

		for _, a := range args {
			d.Args = append(d.Args, classify(a, false))
		}
	}

	return Entry{Kind: EntryTransform, Transform: d}
}

// Resolve evaluates a classified entry against the input document. The
// boolean reports whether the entry produced a value at all; skip
// entries and unresolved path reads return false. Transform directives
// are not resolved here, they need a registry and are the
// interpreter's business.
func Resolve(input any, e Entry) (any, bool) {
	switch e.Kind {
	case EntryLiteral:
		return e.Literal, true
	case EntryPath:
		return path.Get(input, e.Path)
	default:
		return nil, false
	}
}

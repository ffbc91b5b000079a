package engine

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonremap/internal/mapping"
	"jsonremap/internal/transform"
)

func mustSpec(t *testing.T, data string) *mapping.Spec {
	t.Helper()

	spec, err := mapping.Parse([]byte(data))
	require.NoError(t, err)

	return spec
}

func TestTransform_FlatToNested(t *testing.T) {
	input := map[string]any{
		"id":        "123",
		"firstName": "John",
		"lastName":  "Doe",
	}

	spec := mustSpec(t, `{
    "id": "id",
    "personalInformation.forename": "firstName",
    "personalInformation.surname": "lastName"
  }`)

	out, diags := Transform(input, spec)
	assert.False(t, diags.HasWarnings())

	assert.Equal(t, map[string]any{
		"id": "123",
		"personalInformation": map[string]any{
			"forename": "John",
			"surname":  "Doe",
		},
	}, out)
}

func TestTransform_ArrayRootLifts(t *testing.T) {
	input := []any{
		map[string]any{"id": "1", "firstName": "John"},
		map[string]any{"id": "2", "firstName": "Jane"},
	}

	spec := mustSpec(t, `{"id": "id", "name.first": "firstName"}`)

	out, _ := Transform(input, spec)

	results, ok := out.([]any)
	require.True(t, ok, "array input must produce an array: %s", spew.Sdump(out))
	require.Len(t, results, 2)

	assert.Equal(t, map[string]any{
		"id":   "1",
		"name": map[string]any{"first": "John"},
	}, results[0])
	assert.Equal(t, map[string]any{
		"id":   "2",
		"name": map[string]any{"first": "Jane"},
	}, results[1])
}

func TestTransform_MissingSourceOmitsKey(t *testing.T) {
	input := map[string]any{"id": "123"}

	spec := mustSpec(t, `{"id": "id", "email": "contact.email"}`)

	out, diags := Transform(input, spec)
	assert.False(t, diags.HasWarnings())

	record := out.(map[string]any)
	assert.Equal(t, "123", record["id"])
	_, present := record["email"]
	assert.False(t, present, "unresolved entries must not write a key")
}

func TestTransform_LiteralsAndSkips(t *testing.T) {
	spec := mustSpec(t, `{
    "currency": "=GBP",
    "weird": "==lead",
    "active": true,
    "limit": 10,
    "nothing": null,
    "alsoNothing": "",
    "shape": {"$literal": {"kind": "custom"}}
  }`)

	out, _ := Transform(map[string]any{}, spec)

	assert.Equal(t, map[string]any{
		"currency": "GBP",
		"weird":    "=lead",
		"active":   true,
		"limit":    10,
		"shape":    map[string]any{"kind": "custom"},
	}, out)
}

func TestTransform_WildcardFanOutIntoCarrier(t *testing.T) {
	input := map[string]any{
		"contacts": []any{
			map[string]any{"email": "a@b.com", "primary": true},
			map[string]any{"email": "c@d.com", "primary": false},
		},
	}

	spec := mustSpec(t, `{
    "emails[]": "contacts[].email",
    "main[].address": "contacts[0].email",
    "main[].verified": true
  }`)

	out, _ := Transform(input, spec)

	assert.Equal(t, map[string]any{
		"emails": []any{"a@b.com", "c@d.com"},
		"main": []any{
			map[string]any{"address": "a@b.com", "verified": true},
		},
	}, out)
}

func TestTransform_Directive(t *testing.T) {
	input := map[string]any{
		"person": map[string]any{"nationality": "GB"},
	}

	spec := mustSpec(t, `{
    "country": {"$transform": "countryFromISO", "$path": "person.nationality"}
  }`)

	out, diags := Transform(input, spec)
	assert.False(t, diags.HasWarnings())

	assert.Equal(t, map[string]any{"country": "United Kingdom"}, out)
}

func TestTransform_DirectiveWithArgs(t *testing.T) {
	input := map[string]any{"first": "John", "last": "Doe"}

	spec := mustSpec(t, `{
    "display": {"$transform": "concat", "$args": ["first", "= ", "last"]}
  }`)

	out, _ := Transform(input, spec)

	assert.Equal(t, map[string]any{"display": "John Doe"}, out)
}

func TestTransform_UnknownTransformWarnsAndContinues(t *testing.T) {
	spec := mustSpec(t, `{
    "a": {"$transform": "doesNotExist", "$path": "x"},
    "b": "=kept"
  }`)

	out, diags := Transform(map[string]any{"x": 1}, spec)

	require.True(t, diags.HasWarnings())
	assert.Equal(t, "unknown-transform", diags.Warnings[0].Code)
	assert.Equal(t, "a", diags.Warnings[0].TargetPath)

	assert.Equal(t, map[string]any{"b": "kept"}, out)
}

func TestTransform_PanickingTransformIsContained(t *testing.T) {
	registry := transform.Builtin()
	registry.Add("explode", func(args []any) (any, bool) {
		panic("boom")
	})

	it := New(registry, nil)

	spec := mustSpec(t, `{
    "a": {"$transform": "explode", "$path": "x"},
    "b": "x"
  }`)

	out, diags := it.Transform(map[string]any{"x": 7}, spec)

	require.True(t, diags.HasWarnings())
	assert.Equal(t, "transform-failed", diags.Warnings[0].Code)
	assert.Contains(t, diags.Warnings[0].Message, "explode")
	assert.Contains(t, diags.Warnings[0].Message, "boom")

	assert.Equal(t, map[string]any{"b": 7}, out)
}

func TestTransform_TransformProducingNothingOmits(t *testing.T) {
	spec := mustSpec(t, `{
    "country": {"$transform": "countryFromISO", "$path": "missing.code"}
  }`)

	out, diags := Transform(map[string]any{}, spec)

	assert.False(t, diags.HasWarnings())
	assert.Equal(t, map[string]any{}, out)
}

func TestTransform_FalsyValuesAreWritten(t *testing.T) {
	input := map[string]any{
		"zero":  float64(0),
		"no":    false,
		"blank": "",
		"null":  nil,
	}

	spec := mustSpec(t, `{
    "out.zero": "zero",
    "out.no": "no",
    "out.null": "null"
  }`)

	out, _ := Transform(input, spec)

	assert.Equal(t, map[string]any{
		"out": map[string]any{
			"zero": float64(0),
			"no":   false,
			"null": nil,
		},
	}, out)
}

func TestTransform_EntriesComposeInOrder(t *testing.T) {
	input := map[string]any{"a": "first", "b": "second"}

	spec := mustSpec(t, `{
    "nested.one": "a",
    "nested.two": "b",
    "nested.one2": "a"
  }`)

	out, _ := Transform(input, spec)

	assert.Equal(t, map[string]any{
		"nested": map[string]any{
			"one":  "first",
			"two":  "second",
			"one2": "first",
		},
	}, out)
}

func TestTransform_RecordsAreIndependent(t *testing.T) {
	input := []any{
		map[string]any{"tag": "x"},
		map[string]any{},
	}

	spec := mustSpec(t, `{"tags[]": "tag"}`)

	out, _ := Transform(input, spec)
	results := out.([]any)

	assert.Equal(t, map[string]any{"tags": []any{"x"}}, results[0])
	assert.Equal(t, map[string]any{}, results[1], "no carry-over between records")
}

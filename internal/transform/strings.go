package transform

import (
	"fmt"
	"strconv"
	"strings"
)

// Concat joins the string forms of all arguments, skipping unresolved
// ones. With no resolvable arguments it still produces the empty
// string.
func Concat(args []any) (any, bool) {
	var b strings.Builder

	for _, a := range args {
		if a == nil {
			continue
		}

		b.WriteString(stringify(a))
	}

	return b.String(), true
}

// Uppercase maps its first argument to upper case.
func Uppercase(args []any) (any, bool) {
	s, ok := firstString(args)
	if !ok {
		return nil, false
	}

	return strings.ToUpper(s), true
}

// Lowercase maps its first argument to lower case.
func Lowercase(args []any) (any, bool) {
	s, ok := firstString(args)
	if !ok {
		return nil, false
	}

	return strings.ToLower(s), true
}

// Trim strips leading and trailing whitespace from its first argument.
func Trim(args []any) (any, bool) {
	s, ok := firstString(args)
	if !ok {
		return nil, false
	}

	return strings.TrimSpace(s), true
}

func firstString(args []any) (string, bool) {
	if len(args) == 0 || args[0] == nil {
		return "", false
	}

	return stringify(args[0]), true
}

// stringify renders a JSON scalar the way it would appear in output,
// notably keeping whole-number floats free of an exponent or trailing
// decimals.
func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprint(v)
	}
}

package path

// Read resolves a parsed path against a decoded JSON value. The boolean
// reports whether the path resolved at all: missing keys, index access
// on non-arrays, out-of-range indices, and dereferences through null
// all yield (nil, false) rather than an error, so partial input data
// never aborts a mapping pass.
//
// Traversal runs in scalar state until the first wildcard segment.
// From that point on the current value is a flat sequence and every
// remaining segment is mapped over its elements, flattening one level
// per wildcard.
func Read(root any, p Path) (any, bool) {
	if len(p.Segments) == 0 {
		return nil, false
	}

	cur := root

	for i, seg := range p.Segments {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}

		switch seg.Mode {
		case ModePlain:
			v, ok := obj[seg.Key]
			if !ok {
				return nil, false
			}

			cur = v

		case ModeIndex:
			arr, ok := obj[seg.Key].([]any)
			if !ok || seg.Index >= len(arr) {
				return nil, false
			}

			cur = arr[seg.Index]

		case ModeWildcard:
			var flow []any

			switch c := obj[seg.Key].(type) {
			case nil:
				flow = []any{}
			case []any:
				flow = c
			default:
				// Non-array values fan out as a singleton.
				flow = []any{c}
			}

			return readFlow(flow, p.Segments[i+1:]), true
		}
	}

	return cur, true
}

// Get is the string-path convenience form of Read.
func Get(root any, path string) (any, bool) {
	return Read(root, Parse(path))
}

// readFlow maps the remaining segments over an already-produced
// sequence. Null elements contribute nothing; a plain or indexed
// segment contributes one value per surviving element (null when the
// element cannot satisfy it), and a wildcard segment flattens
// array-valued keys one level.
func readFlow(flow []any, rest []Segment) []any {
	for _, seg := range rest {
		out := make([]any, 0, len(flow))

		for _, el := range flow {
			if el == nil {
				continue
			}

			var v any
			if m, ok := el.(map[string]any); ok {
				v = m[seg.Key]
			}

			switch seg.Mode {
			case ModePlain:
				out = append(out, v)

			case ModeIndex:
				if arr, ok := v.([]any); ok && seg.Index < len(arr) {
					out = append(out, arr[seg.Index])
				} else {
					out = append(out, nil)
				}

			case ModeWildcard:
				switch vv := v.(type) {
				case nil:
				case []any:
					out = append(out, vv...)
				default:
					out = append(out, vv)
				}
			}
		}

		flow = out
	}

	return flow
}

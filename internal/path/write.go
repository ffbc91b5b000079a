package path

import "strings"

// Write assigns value at path inside target, materializing intermediate
// containers as it walks. The write grammar is deliberately narrower
// than the read grammar: only a trailing "[]" marker per segment is
// recognized, numeric indices are not supported on the write side.
//
// A non-terminal "key[]" segment descends into element 0 of the array
// at key, creating both the array and the element object as needed.
// Successive writes through the same "key[]" prefix therefore
// accumulate fields on one shared synthesized element.
//
// A terminal "key[]" segment switches on the runtime type of value: an
// array replaces the target array wholesale (shallow copy), any other
// value is appended. Mapping authors who want an array appended as a
// single element cannot express that; the type-driven switch is part of
// the observed contract.
//
// Callers are responsible for skipping unresolved values; Write always
// assigns what it is given.
func Write(target map[string]any, path string, value any) {
	cur := target

	segments := strings.Split(path, ".")
	for i, seg := range segments {
		last := i == len(segments)-1

		key, wantsArray := strings.CutSuffix(seg, "[]")
		if !wantsArray {
			if last {
				cur[key] = value
				return
			}

			child, ok := cur[key].(map[string]any)
			if !ok {
				child = map[string]any{}
				cur[key] = child
			}

			cur = child

			continue
		}

		if last {
			if arr, ok := value.([]any); ok {
				cur[key] = append([]any(nil), arr...)
			} else {
				existing, _ := cur[key].([]any)
				cur[key] = append(existing, value)
			}

			return
		}

		arr, _ := cur[key].([]any)

		var carrier map[string]any

		if len(arr) == 0 {
			carrier = map[string]any{}
			arr = append(arr, carrier)
		} else {
			carrier, _ = arr[0].(map[string]any)
			if carrier == nil {
				carrier = map[string]any{}
				arr[0] = carrier
			}
		}

		cur[key] = arr
		cur = carrier
	}
}

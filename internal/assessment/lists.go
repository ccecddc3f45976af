package assessment

import "slices"

// Toggle returns a new list with v removed if present, or appended if not.
// Order of the remaining values is preserved.
func Toggle(list []string, v string) []string {
	if slices.Contains(list, v) {
		return Without(list, v)
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v)
}

// Without returns a new list without any occurrence of v.
func Without(list []string, v string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

// ToggleValue returns a mutation toggling v in a multi-select field.
func ToggleValue[S Record](f Field[S, []string], v string) Mutation {
	m := Update(f.section, func(r S) S {
		p := f.ptr(&r)
		*p = Toggle(*p, v)
		return r
	})
	m.field = f.key
	return m
}

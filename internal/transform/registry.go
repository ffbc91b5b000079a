// Package transform provides the closed registry of named transform
// functions available to mapping specs.
package transform

// Func is a pure transform invoked with already-resolved arguments.
// Unresolved arguments arrive as nil. The boolean reports whether the
// function produced a value; entries whose transform produces nothing
// are omitted from the output, so false here is "omit", not an error.
type Func func(args []any) (any, bool)

// Registry maps transform names to functions. It is built once at
// startup and passed by reference into the interpreter.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Builtin returns a registry preloaded with the built-in transforms.
func Builtin() *Registry {
	r := NewRegistry()
	r.Add("countryFromISO", CountryFromISO)
	r.Add("concat", Concat)
	r.Add("uppercase", Uppercase)
	r.Add("lowercase", Lowercase)
	r.Add("trim", Trim)

	return r
}

// Add registers a transform under the given name, replacing any
// previous registration.
func (r *Registry) Add(name string, fn Func) {
	r.funcs[name] = fn
}

// Get returns the transform registered under name, or nil.
func (r *Registry) Get(name string) Func {
	return r.funcs[name]
}

// Has returns true if a transform with the given name exists.
func (r *Registry) Has(name string) bool {
	_, exists := r.funcs[name]
	return exists
}

// Names returns all registered transform names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}

	return names
}

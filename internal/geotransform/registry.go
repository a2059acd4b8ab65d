package geotransform

import "sort"

// Constructor creates a new instance of a strategy
type Constructor func() Strategy

// Registry maps strategy names to their constructors.
//
// A Registry is not safe for concurrent use: concurrent Register/Build calls
// must be serialized by the caller.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{constructors: map[string]Constructor{}}
}

// NewDefaultRegistry creates a registry with all the built-in models registered with their names
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, m := range ModelValues() {
		r.Register(m.String(), m.constructor())
	}
	return r
}

// Register adds the constructor with the given name.
// If the name is already registered, the previous constructor is replaced.
func (r *Registry) Register(name string, ctor Constructor) {
	if r.constructors == nil {
		r.constructors = map[string]Constructor{}
	}
	r.constructors[name] = ctor
}

// Unregister removes the constructor registered with the given name (if any)
func (r *Registry) Unregister(name string) {
	delete(r.constructors, name)
}

// Clear removes all the constructors
func (r *Registry) Clear() {
	r.constructors = map[string]Constructor{}
}

// IsRegistered returns true if a constructor is registered with the given name
func (r *Registry) IsRegistered(name string) bool {
	_, ok := r.constructors[name]
	return ok
}

// Build creates a new strategy using the constructor registered with the given name.
// It returns an UnknownStrategy error if the name is not registered.
func (r *Registry) Build(name string) (Strategy, error) {
	ctor, ok := r.constructors[name]
	if !ok || ctor == nil {
		return nil, NewUnknownStrategy(name)
	}
	return ctor(), nil
}

// Names returns the sorted list of the registered names
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

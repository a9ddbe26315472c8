/*
File    : Tupa/natives/registry.go
*/
package natives

import "github.com/Mathewsz/Tupa/values"

// Registry is the fixed name -> module-exports table `usar` reads from.
// It is intentionally a single closed map rather than a general,
// dynamically extensible module system: there is a fixed, known set of
// modules, so every module gets one entry here and one exports function.
type Registry struct {
	modules map[string]map[string]values.Value
}

// NewRegistry builds the registry with every known module. Adding a
// module means adding one entry here and one exports function alongside
// Matematica.
func NewRegistry() *Registry {
	return &Registry{
		modules: map[string]map[string]values.Value{
			"matematica": Matematica(),
		},
	}
}

// Lookup returns the export table for a module name, or false if the
// module is unknown.
func (r *Registry) Lookup(name string) (map[string]values.Value, bool) {
	m, ok := r.modules[name]
	return m, ok
}

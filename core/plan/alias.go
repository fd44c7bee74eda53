package plan

import "github.com/planweave/planweave/core/model"

// AliasMap maps canonical full names to short display aliases. Lookup is an
// exact string match; unresolved names pass through unchanged.
type AliasMap map[string]string

// Resolve returns the configured alias for name, or name itself on a miss.
func (m AliasMap) Resolve(name string) string {
	if alias, ok := m[name]; ok {
		return alias
	}
	return name
}

// ResolveTasks rewrites resource and customer names on a fresh slice,
// applying each map exactly once per field so a value is never substituted
// twice in one run.
func ResolveTasks(tasks []model.Task, resources, customers AliasMap) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		t.Resource = resources.Resolve(t.Resource)
		t.Customer = customers.Resolve(t.Customer)
		out[i] = t
	}
	return out
}

// Package idx issues unique identifiers: strictly increasing per-name
// counters for stable ids scoped to a namespace, and opaque trace ids for
// cross-cutting correlation.
package idx

import (
	"sync"

	"github.com/google/uuid"
)

// Registry issues strictly increasing integer ids per name. Counters start
// at 1 on the first call for a name, never reset, and are independent
// across names. The registry is owned by whoever constructs it; there is
// no package-level instance.
type Registry struct {
	mu       sync.Mutex
	counters map[string]int
}

// NewRegistry creates an empty id registry.
func NewRegistry() *Registry {
	return &Registry{counters: make(map[string]int)}
}

// Next returns the next id for name: 1, 2, 3, ... Safe for concurrent use;
// concurrent callers for the same name each get a distinct id with no gaps.
func (r *Registry) Next(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[name]++
	return r.counters[name]
}

// Peek returns the last id issued for name without consuming one, or 0 if
// the name has never been seen.
func (r *Registry) Peek(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[name]
}

// TraceID returns a process-unique opaque id for correlating related
// operations, where a per-name counter is the wrong shape.
func TraceID() string {
	return uuid.NewString()
}

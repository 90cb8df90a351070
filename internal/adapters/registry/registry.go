// Package registry implements ports.GroupRepository as an explicit, in-process
// registration table. It serves embedders that compile their group modules in
// rather than describing them in a modules directory.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"go.trai.ch/crew/internal/core/domain"
	"go.trai.ch/zerr"
)

// Registry is a static table of group modules.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]domain.ModuleFunc
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{modules: make(map[string]domain.ModuleFunc)}
}

// Register adds a group module under a name. Registering the same name twice
// is a programming error and panics, mirroring database/sql driver
// registration.
func (r *Registry) Register(name string, module domain.ModuleFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.modules[name]; exists {
		panic(fmt.Sprintf("group module %q already registered", name))
	}
	r.modules[name] = module
}

// ListAvailableGroups returns the registered group names, sorted.
func (r *Registry) ListAvailableGroups() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// LoadGroupModule returns the module registered under name, or
// domain.ErrGroupNotFound.
func (r *Registry) LoadGroupModule(name string) (domain.ModuleFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	module, ok := r.modules[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrGroupNotFound, "group not registered"), "group", name)
	}
	return module, nil
}

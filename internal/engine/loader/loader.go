// Package loader implements the group loader: a discovery and caching layer
// that hands out task groups by name, instantiating them lazily from a group
// repository.
package loader

import (
	"go.trai.ch/crew/internal/core/domain"
	"go.trai.ch/crew/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader memoizes task groups per name. Groups enter the cache on first
// access and are never evicted; the cache lives for the loader's lifetime.
type Loader struct {
	host   domain.Registrar
	policy *domain.NamingPolicy
	repo   ports.GroupRepository

	loaded []string
	cache  map[string]*domain.TaskGroup
}

// New creates a Loader. The policy is passed by reference into every group
// the loader instantiates, so all of them share it.
func New(host domain.Registrar, policy *domain.NamingPolicy, repo ports.GroupRepository) *Loader {
	return &Loader{
		host:   host,
		policy: policy,
		repo:   repo,
		cache:  make(map[string]*domain.TaskGroup),
	}
}

// Group returns the task group for a name, loading and caching it on first
// access. Groups are instantiated lazily: the module runs its setup but does
// not register anything with the host until the caller loads actions.
// A name without a matching module fails with domain.ErrGroupNotFound.
func (l *Loader) Group(name string) (*domain.TaskGroup, error) {
	if group, ok := l.cache[name]; ok {
		return group, nil
	}

	module, err := l.repo.LoadGroupModule(name)
	if err != nil {
		return nil, err
	}
	group, err := module(l.host, domain.ModuleOptions{
		Policy:   l.policy,
		LazyLoad: true,
	})
	if err != nil {
		return nil, zerr.With(err, "group", name)
	}

	l.loaded = append(l.loaded, name)
	l.cache[name] = group
	return group, nil
}

// LoadedGroups returns the names already cached, in load order. It never
// triggers loading.
func (l *Loader) LoadedGroups() []string {
	names := make([]string, len(l.loaded))
	copy(names, l.loaded)
	return names
}

// AvailableGroups lists every group the repository can serve. The repository
// re-reads its backing source on each call; nothing is loaded or cached here.
func (l *Loader) AvailableGroups() ([]string, error) {
	return l.repo.ListAvailableGroups()
}

// LoadAllAvailable materializes a point-in-time snapshot: it lists the
// currently available groups and loads each through the cache. Groups that
// appear after the listing are not picked up by this call.
func (l *Loader) LoadAllAvailable() ([]*domain.TaskGroup, error) {
	names, err := l.AvailableGroups()
	if err != nil {
		return nil, err
	}

	groups := make([]*domain.TaskGroup, 0, len(names))
	for _, name := range names {
		group, err := l.Group(name)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

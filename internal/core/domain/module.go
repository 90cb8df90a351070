package domain

// ModuleOptions carries the optional inputs of a group module invocation.
type ModuleOptions struct {
	// GroupName overrides the module's default group name when non-empty.
	GroupName string

	// Policy overrides the shared process-wide policy when non-nil.
	Policy *NamingPolicy

	// LazyLoad suppresses the automatic LoadAll after setup, leaving the
	// returned group inert for the caller to materialize piecemeal.
	LazyLoad bool
}

// ModuleFunc is the contract every group-definition module exports: given the
// host handle and options, it produces a TaskGroup. Whether the group comes
// back already registered with the host or inert is decided by
// ModuleOptions.LazyLoad.
type ModuleFunc func(host Registrar, opts ModuleOptions) (*TaskGroup, error)

// NewModule builds a ModuleFunc from a default group name and a setup
// callback that populates the group's actions. The returned function runs the
// define-then-optionally-materialize protocol: construct the group with the
// override-or-default name and the override-or-shared policy, run setup, and
// unless LazyLoad is set, immediately LoadAll against the host.
func NewModule(defaultName string, setup func(*TaskGroup)) ModuleFunc {
	return func(host Registrar, opts ModuleOptions) (*TaskGroup, error) {
		name := opts.GroupName
		if name == "" {
			name = defaultName
		}
		policy := opts.Policy
		if policy == nil {
			policy = SharedPolicy()
		}

		group := NewTaskGroup(name, policy)
		if setup != nil {
			setup(group)
		}

		if !opts.LazyLoad {
			if _, err := group.LoadAll(host); err != nil {
				return nil, err
			}
		}
		return group, nil
	}
}

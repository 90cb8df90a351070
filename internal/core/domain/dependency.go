package domain

// DependencyRef is a reference to an action that may live in the same group
// as the referring action or in a different one. It is a weak reference: the
// referent's existence is not checked here, only by the host build tool once
// the task graph executes.
//
// The zero value is not useful; construct refs with LocalDep or ExternalDep,
// or via TaskGroup.Dependency.
type DependencyRef struct {
	group  string
	action string
}

// LocalDep references an action in whatever group the ref is resolved against.
func LocalDep(action string) DependencyRef {
	return DependencyRef{action: action}
}

// ExternalDep references an action in an explicitly named group.
func ExternalDep(group, action string) DependencyRef {
	return DependencyRef{group: group, action: action}
}

// GroupName returns the target group name, empty for local refs.
func (d DependencyRef) GroupName() string { return d.group }

// ActionName returns the target action name.
func (d DependencyRef) ActionName() string { return d.action }

// IsExternalTo reports whether the ref targets a group other than contextGroup.
// A ref with no group name is never external.
func (d DependencyRef) IsExternalTo(contextGroup string) bool {
	return d.group != "" && d.group != contextGroup
}

// Resolve produces the task identifier the ref points at, as seen from
// contextGroup under the given policy. External refs resolve against their own
// target group name; local refs (and refs naming the context group itself)
// resolve exactly as the context group would name the action. Resolution is
// late-bound: the policy's settings at call time decide the result.
func (d DependencyRef) Resolve(contextGroup string, policy *NamingPolicy) string {
	if d.IsExternalTo(contextGroup) {
		return policy.TaskName(d.group, d.action)
	}
	return policy.TaskName(contextGroup, d.action)
}

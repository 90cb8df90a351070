// Package domain contains the core domain model for task groups: naming
// policy, dependency references, and the group registry itself.
package domain

import "strings"

// Separator is the literal delimiter between task identifier components.
// It is part of the observable contract: callers consume returned identifiers
// rather than reconstructing them, but the format is stable.
const Separator = ":"

// NamingPolicy controls how group and action names combine into a task
// identifier. A single policy is typically shared by reference across every
// TaskGroup in a session; mutating a field is observable by all holders on
// their next name generation. The core is single-threaded, so no
// synchronization is provided.
type NamingPolicy struct {
	// GroupBeforeAction orders the core pair as group:action when true,
	// action:group when false.
	GroupBeforeAction bool

	// DefaultPrefix is prepended (with a separator) to every generated
	// identifier when non-empty and no explicit prefix is given.
	DefaultPrefix string
}

var sharedPolicy = &NamingPolicy{GroupBeforeAction: true}

// SharedPolicy returns the process-wide default policy used by group modules
// invoked without an explicit policy. The pointer is shared: mutations are
// visible to every group that fell back to it.
func SharedPolicy() *NamingPolicy {
	return sharedPolicy
}

// Snapshot returns an isolated copy of the policy. Groups constructed with a
// snapshot are unaffected by later mutations of the original.
func (p *NamingPolicy) Snapshot() *NamingPolicy {
	cp := *p
	return &cp
}

// TaskName combines a group name and an action name into a task identifier
// using the policy's current settings. Empty inputs pass through literally;
// keeping names non-empty is the caller's responsibility.
func (p *NamingPolicy) TaskName(group, action string) string {
	return p.TaskNameWithPrefix(group, action, "")
}

// TaskNameWithPrefix is TaskName with an explicit namespace prefix. The
// explicit prefix wins when non-empty, otherwise DefaultPrefix applies; an
// empty effective prefix is omitted entirely.
func (p *NamingPolicy) TaskNameWithPrefix(group, action, prefix string) string {
	pair := group + Separator + action
	if !p.GroupBeforeAction {
		pair = action + Separator + group
	}

	effective := prefix
	if effective == "" {
		effective = p.DefaultPrefix
	}
	if effective == "" {
		return pair
	}
	return effective + Separator + pair
}

// SplitTaskName decomposes an identifier produced by TaskNameWithPrefix back
// into its ordered components.
func SplitTaskName(id string) []string {
	return strings.Split(id, Separator)
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownAction is returned when loading an action that was never added to the group.
	ErrUnknownAction = zerr.New("unknown action")

	// ErrGroupNotFound is returned when no group module exists for a requested group name.
	ErrGroupNotFound = zerr.New("group not found")

	// ErrMissingDependency is returned when a registered task references a dependency
	// identifier that no registered task provides.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the registered task identifiers form a dependency cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrNilBody is returned by the host runner when a task is executed whose body is nil.
	ErrNilBody = zerr.New("task body is nil")
)

package domain

import (
	"context"

	"go.trai.ch/zerr"
)

// TaskBody is the unit of work the host build tool ultimately invokes for a
// registered task. The group layer never calls it; it is passed through to the
// host opaquely.
type TaskBody func(ctx context.Context) error

// Registrar is the single capability the group layer needs from the host
// build tool: registering a task under a concrete identifier together with
// the identifiers it depends on.
type Registrar interface {
	Register(id string, deps []string, body TaskBody) error
}

// RecordState tracks where an action registration is in its lifecycle.
type RecordState string

const (
	// StateDefined indicates the action holds declarative data only; nothing
	// has been registered with the host.
	StateDefined RecordState = "Defined"
	// StateMaterialized indicates the action has been registered with the
	// host under a concrete task identifier at least once.
	StateMaterialized RecordState = "Materialized"
)

// unknownAction builds an ErrUnknownAction with group and action metadata.
// The sentinel is wrapped, not cloned, so errors.Is keeps matching it.
func unknownAction(group, action string) error {
	err := zerr.Wrap(ErrUnknownAction, "action lookup failed")
	return zerr.With(zerr.With(err, "group", group), "action", action)
}

// actionRecord is the declarative registration for one action. It stays in
// StateDefined until LoadAction computes its identifier and hands it to the
// host.
type actionRecord struct {
	deps  []DependencyRef
	body  TaskBody
	state RecordState
}

// TaskGroup is a named, insertion-ordered collection of actions sharing a
// naming policy. Defining actions is cheap and has no external effect;
// identifiers are generated and tasks registered with the host only on load.
type TaskGroup struct {
	name    string
	policy  *NamingPolicy
	prefix  string
	order   []string
	records map[string]*actionRecord
}

// NewTaskGroup creates an empty group. The policy is held by reference, not
// copied: many groups typically share one policy, and later mutations of it
// affect every subsequently generated name. Pass policy.Snapshot() to opt out.
// A nil policy falls back to SharedPolicy.
func NewTaskGroup(name string, policy *NamingPolicy) *TaskGroup {
	if policy == nil {
		policy = SharedPolicy()
	}
	return &TaskGroup{
		name:    name,
		policy:  policy,
		records: make(map[string]*actionRecord),
	}
}

// Name returns the group's identity, fixed at construction.
func (g *TaskGroup) Name() string { return g.name }

// Policy returns the naming policy the group resolves names against.
func (g *TaskGroup) Policy() *NamingPolicy { return g.policy }

// SetPrefix installs an explicit namespace prefix for this group's
// identifiers. It wins over the policy's DefaultPrefix; empty reverts to the
// policy's behavior.
func (g *TaskGroup) SetPrefix(prefix string) { g.prefix = prefix }

// AddAction stores the registration record for an action. Re-adding an
// existing name silently replaces the prior record (last-write-wins); the
// returned flag is the only overwrite diagnostic, for callers that want to
// surface one. The body is not validated here; a nil body only fails once the
// host executes the task.
func (g *TaskGroup) AddAction(name string, deps []DependencyRef, body TaskBody) (replaced bool) {
	if _, replaced = g.records[name]; !replaced {
		g.order = append(g.order, name)
	}
	g.records[name] = &actionRecord{deps: deps, body: body, state: StateDefined}
	return replaced
}

// ActionNames returns the registered action names in insertion order.
func (g *TaskGroup) ActionNames() []string {
	names := make([]string, len(g.order))
	copy(names, g.order)
	return names
}

// HasAction reports whether an action is registered under the given name.
func (g *TaskGroup) HasAction(name string) bool {
	_, ok := g.records[name]
	return ok
}

// ActionState returns the lifecycle state of an action's record, or
// ErrUnknownAction if no such action exists.
func (g *TaskGroup) ActionState(name string) (RecordState, error) {
	rec, ok := g.records[name]
	if !ok {
		return "", unknownAction(g.name, name)
	}
	return rec.state, nil
}

// Dependency returns an external ref rooted at this group, for use by other
// groups that want to depend on one of this group's actions.
func (g *TaskGroup) Dependency(action string) DependencyRef {
	return ExternalDep(g.name, action)
}

// TaskName generates the task identifier for an action of this group. The
// policy is consulted fresh on every call, so policy mutations retroactively
// change all names generated afterwards.
func (g *TaskGroup) TaskName(action string) string {
	return g.policy.TaskNameWithPrefix(g.name, action, g.prefix)
}

// ResolveDependencyNames maps each ref to its task identifier as seen from
// this group. Local refs go through the group's own TaskName so they pick up
// the group's prefix; external refs resolve against their target group under
// the shared policy.
func (g *TaskGroup) ResolveDependencyNames(deps []DependencyRef) []string {
	if len(deps) == 0 {
		return nil
	}
	resolved := make([]string, len(deps))
	for i, dep := range deps {
		if dep.IsExternalTo(g.name) {
			resolved[i] = dep.Resolve(g.name, g.policy)
		} else {
			resolved[i] = g.TaskName(dep.ActionName())
		}
	}
	return resolved
}

// LoadAction materializes a single action: it computes the task identifier,
// resolves the dependency list, registers the task with the host, and returns
// the identifier. Unknown action names fail with ErrUnknownAction. Loading the
// same action again re-registers it with the host; no deduplication happens
// at this layer.
func (g *TaskGroup) LoadAction(name string, host Registrar) (string, error) {
	rec, ok := g.records[name]
	if !ok {
		return "", unknownAction(g.name, name)
	}

	id := g.TaskName(name)
	if err := host.Register(id, g.ResolveDependencyNames(rec.deps), rec.body); err != nil {
		return "", err
	}
	rec.state = StateMaterialized
	return id, nil
}

// LoadAll materializes every action in insertion order and returns the
// generated identifiers. The first host registration failure aborts the loop
// and propagates.
func (g *TaskGroup) LoadAll(host Registrar) ([]string, error) {
	ids := make([]string, 0, len(g.order))
	for _, name := range g.order {
		id, err := g.LoadAction(name, host)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

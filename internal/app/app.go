// Package app implements the application layer for crew.
package app

import (
	"context"
	"errors"
	"runtime"

	"go.trai.ch/crew/internal/adapters/modfile" //nolint:depguard // Wired in app layer
	"go.trai.ch/crew/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/crew/internal/core/domain"
	"go.trai.ch/crew/internal/core/ports"
	"go.trai.ch/crew/internal/engine/loader"
	"go.trai.ch/zerr"
)

// App exposes the task-group facade the CLI consumes: every method is a thin
// delegation to the group loader and the loaded groups.
type App struct {
	host   ports.Host
	logger ports.Logger
	tracer ports.Tracer
	sh     *shell.Runner
	policy *domain.NamingPolicy
	loader *loader.Loader
}

// New creates an App over the default modules directory and the process-wide
// shared naming policy.
func New(host ports.Host, logger ports.Logger, tracer ports.Tracer, sh *shell.Runner) *App {
	a := &App{
		host:   host,
		logger: logger,
		tracer: tracer,
		sh:     sh,
		policy: domain.SharedPolicy(),
	}
	a.UseModulesDir(modfile.DefaultDir)
	return a
}

// UseModulesDir points the app at a different modules directory. The group
// cache starts over; call this before loading anything.
func (a *App) UseModulesDir(dir string) {
	a.UseRepository(modfile.NewRepository(dir, a.logger, a.sh))
}

// UseRepository swaps the module source entirely, e.g. for a static
// registration table. The group cache starts over.
func (a *App) UseRepository(repo ports.GroupRepository) {
	a.loader = loader.New(a.host, a.policy, repo)
}

// ConfigurePolicy mutates the shared naming policy. The change is live: every
// group holding the policy generates names with the new settings from now on.
func (a *App) ConfigurePolicy(groupBeforeAction bool, prefix string) {
	a.policy.GroupBeforeAction = groupBeforeAction
	a.policy.DefaultPrefix = prefix
}

// AddTask loads a single action of a group into the host and returns its task
// identifier.
func (a *App) AddTask(group, action string) (string, error) {
	g, err := a.loader.Group(group)
	if err != nil {
		return "", err
	}
	return g.LoadAction(action, a.host)
}

// AddTasks loads every action of a group into the host and returns the task
// identifiers.
func (a *App) AddTasks(group string) ([]string, error) {
	g, err := a.loader.Group(group)
	if err != nil {
		return nil, err
	}
	return g.LoadAll(a.host)
}

// ListGroups returns the names of every group a module is available for.
func (a *App) ListGroups() ([]string, error) {
	return a.loader.AvailableGroups()
}

// ListLoadedGroups returns the names already instantiated and cached.
func (a *App) ListLoadedGroups() []string {
	return a.loader.LoadedGroups()
}

// ListGroupActions returns the action names of a group, loading the group on
// first access.
func (a *App) ListGroupActions(group string) ([]string, error) {
	g, err := a.loader.Group(group)
	if err != nil {
		return nil, err
	}
	return g.ActionNames(), nil
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Jobs bounds concurrent task execution; zero means NumCPU.
	Jobs int
}

// Run loads the named groups (every available group when none are named),
// registers all their actions, and executes the host's task graph. The tracer
// is closed on every exit path so recorded progress is flushed even when the
// run fails.
func (a *App) Run(ctx context.Context, groups []string, opts RunOptions) (err error) {
	defer func() {
		if cerr := a.tracer.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	if len(groups) == 0 {
		var err error
		if groups, err = a.loader.AvailableGroups(); err != nil {
			return err
		}
	}
	for _, group := range groups {
		if _, err := a.AddTasks(group); err != nil {
			return zerr.Wrap(err, "failed to load group")
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if err := a.host.Run(ctx, jobs); err != nil {
		return zerr.Wrap(err, "build execution failed")
	}
	return nil
}

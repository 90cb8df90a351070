// Package hostrunner implements a reference host build tool. It accepts task
// registrations from the group layer, validates the resulting dependency
// graph, and executes task bodies in dependency order.
package hostrunner

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/crew/internal/core/domain"
	"go.trai.ch/crew/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// task is one registered entry in the runner's table.
type task struct {
	id   domain.InternedString
	deps []domain.InternedString
	body domain.TaskBody
}

// Runner implements ports.Host. Registering the same identifier again
// replaces the prior entry: the group layer re-registers on re-load and the
// host keeps the latest body, so only the last registration executes.
type Runner struct {
	logger ports.Logger
	tracer ports.Tracer

	mu    sync.Mutex
	order []domain.InternedString
	tasks map[domain.InternedString]task
}

// New creates an empty Runner.
func New(logger ports.Logger, tracer ports.Tracer) *Runner {
	return &Runner{
		logger: logger,
		tracer: tracer,
		tasks:  make(map[domain.InternedString]task),
	}
}

// Register adds a task under the given identifier. A duplicate identifier
// replaces the previous registration in place, keeping its original position,
// and is surfaced as a warning.
func (r *Runner) Register(id string, deps []string, body domain.TaskBody) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.Intern(id)
	if _, exists := r.tasks[key]; exists {
		r.logger.Warn(fmt.Sprintf("task %q re-registered, replacing previous registration", id))
	} else {
		r.order = append(r.order, key)
	}
	r.tasks[key] = task{id: key, deps: domain.InternAll(deps), body: body}
	return nil
}

// TaskIDs returns the registered identifiers in registration order.
func (r *Runner) TaskIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, len(r.order))
	for i, id := range r.order {
		ids[i] = id.String()
	}
	return ids
}

// Run validates the dependency graph and executes every task body. Tasks in
// the same dependency level run concurrently, bounded by parallelism; a level
// starts only after the previous one completed. The first failure cancels the
// remaining work in its level and aborts the run.
func (r *Runner) Run(ctx context.Context, parallelism int) error {
	r.mu.Lock()
	levels, err := r.validate()
	snapshot := r.tasks
	r.mu.Unlock()
	if err != nil {
		return err
	}
	if parallelism < 1 {
		parallelism = 1
	}

	r.tracer.EmitPlan(ctx, r.TaskIDs())

	for _, lvl := range levels {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(parallelism)
		for _, id := range lvl {
			t := snapshot[id]
			eg.Go(func() error {
				return r.execute(egCtx, t)
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
	}
	return nil
}

// execute runs one task body inside a telemetry span.
func (r *Runner) execute(ctx context.Context, t task) error {
	ctx, span := r.tracer.Start(ctx, t.id.String())
	defer span.End()

	r.logger.Info("running task " + t.id.String())

	if t.body == nil {
		err := zerr.With(zerr.Wrap(domain.ErrNilBody, "task execution failed"), "task", t.id.String())
		span.RecordError(err)
		return err
	}
	if err := t.body(ctx); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "task execution failed"), "task", t.id.String())
		span.RecordError(wrapped)
		return wrapped
	}
	return nil
}

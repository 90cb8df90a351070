// Package shell turns command lines from group-definition files into
// executable task bodies.
package shell

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/crew/internal/core/domain"
	"go.trai.ch/crew/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner builds task bodies that execute commands via os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Body wraps an argv into a domain.TaskBody. An empty argv yields a body that
// succeeds without doing anything, so groups can declare pure ordering
// actions.
func (r *Runner) Body(argv []string) domain.TaskBody {
	return func(ctx context.Context) error {
		if len(argv) == 0 {
			return nil
		}
		return r.run(ctx, argv)
	}
}

// run executes argv with the process environment, capturing combined output.
func (r *Runner) run(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // command comes from the user's group definition
	cmd.Env = os.Environ()

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if output := strings.TrimRight(out.String(), "\n"); output != "" {
		r.logger.Info(output)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "command failed"), "command", strings.Join(argv, " "))
	}
	return nil
}

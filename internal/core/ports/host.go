// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/crew/internal/core/domain"
)

// Host is the host build tool handle: the registrar the group layer feeds,
// plus the execution surface the CLI drives once registration is done.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Host interface {
	domain.Registrar

	// TaskIDs returns the identifiers currently registered, in registration order.
	TaskIDs() []string

	// Run validates the registered dependency graph and executes every task
	// body with at most parallelism tasks in flight.
	Run(ctx context.Context, parallelism int) error
}

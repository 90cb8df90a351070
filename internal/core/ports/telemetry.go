package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer records the execution of registered tasks.
type Tracer interface {
	// Start opens a span for one task execution.
	Start(ctx context.Context, name string) (context.Context, Span)
	// EmitPlan signals the set of task identifiers about to run.
	EmitPlan(ctx context.Context, taskIDs []string)
	// Close flushes and ends the recording session.
	Close() error
}

// Span represents one task execution. Task body output may be streamed into
// it via the Writer.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records a failure for the span.
	RecordError(err error)
}

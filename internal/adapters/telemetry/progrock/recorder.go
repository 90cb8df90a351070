// Package progrock provides the Progrock implementation of the telemetry
// adapter.
package progrock

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/crew/internal/core/ports"
)

// Recorder implements ports.Tracer using the progrock library. Every task
// execution becomes a vertex on the tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start opens a vertex for one task execution.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// EmitPlan records the planned task identifiers as a dedicated vertex.
func (r *Recorder) EmitPlan(_ context.Context, taskIDs []string) {
	v := r.rec.Vertex(digest.FromString("plan"), "plan")
	for _, id := range taskIDs {
		_, _ = fmt.Fprintln(v.Stdout(), id)
	}
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write streams task body output to the vertex's stdout.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError marks the failure the vertex will complete with.
func (s *Span) RecordError(err error) {
	s.err = err
}

// End completes the vertex, carrying any recorded error.
func (s *Span) End() {
	s.vertex.Done(s.err)
}

package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crew/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_SpanLifecycle(t *testing.T) {
	recorder := progrock.New()

	ctx, span := recorder.Start(context.Background(), "less:build")
	assert.NotNil(t, ctx)

	_, err := span.Write([]byte("compiling\n"))
	require.NoError(t, err)
	span.End()

	recorder.EmitPlan(ctx, []string{"less:build", "fonts:copy"})
	assert.NoError(t, recorder.Close())
}

func TestRecorder_SpanError(t *testing.T) {
	recorder := progrock.New()

	_, span := recorder.Start(context.Background(), "less:build")
	span.RecordError(assert.AnError)
	span.End()

	assert.NoError(t, recorder.Close())
}

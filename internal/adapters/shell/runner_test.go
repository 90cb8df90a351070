package shell_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crew/internal/adapters/shell"
	"go.trai.ch/crew/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX utilities")
	}
}

func TestRunner_Body_EmptyArgv(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	r := shell.NewRunner(log)
	// No command: the body is a no-op and must not touch the logger.
	require.NoError(t, r.Body(nil)(context.Background()))
}

func TestRunner_Body_Success(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("hello").Times(1)

	r := shell.NewRunner(log)
	require.NoError(t, r.Body([]string{"echo", "hello"})(context.Background()))
}

func TestRunner_Body_Failure(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	r := shell.NewRunner(log)
	err := r.Body([]string{"false"})(context.Background())
	assert.Error(t, err)
}

func TestRunner_Body_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	r := shell.NewRunner(log)
	err := r.Body([]string{"definitely-not-a-real-command-xyz"})(context.Background())
	assert.Error(t, err)
}

func TestRunner_Body_ContextCancellation(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := shell.NewRunner(log)
	err := r.Body([]string{"sleep", "10"})(ctx)
	assert.Error(t, err)
}

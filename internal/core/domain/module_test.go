package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crew/internal/core/domain"
)

func newTestModule() domain.ModuleFunc {
	return domain.NewModule("less", func(g *domain.TaskGroup) {
		g.AddAction("build", nil, func(context.Context) error { return nil })
		g.AddAction("hint", nil, func(context.Context) error { return nil })
	})
}

func TestNewModule_AutoLoad(t *testing.T) {
	host := &recordingHost{}
	policy := &domain.NamingPolicy{GroupBeforeAction: true}

	group, err := newTestModule()(host, domain.ModuleOptions{Policy: policy})
	require.NoError(t, err)

	// Without LazyLoad the module materializes everything immediately.
	assert.Equal(t, "less", group.Name())
	require.Len(t, host.registrations, 2)
	assert.Equal(t, "less:build", host.registrations[0].id)
	assert.Equal(t, "less:hint", host.registrations[1].id)
}

func TestNewModule_LazyLoad(t *testing.T) {
	host := &recordingHost{}
	policy := &domain.NamingPolicy{GroupBeforeAction: true}

	group, err := newTestModule()(host, domain.ModuleOptions{Policy: policy, LazyLoad: true})
	require.NoError(t, err)

	// Lazy invocation leaves the group inert.
	assert.Empty(t, host.registrations)
	assert.Equal(t, []string{"build", "hint"}, group.ActionNames())

	// The caller materializes piecemeal later.
	id, err := group.LoadAction("hint", host)
	require.NoError(t, err)
	assert.Equal(t, "less:hint", id)
}

func TestNewModule_GroupNameOverride(t *testing.T) {
	host := &recordingHost{}
	policy := &domain.NamingPolicy{GroupBeforeAction: true}

	group, err := newTestModule()(host, domain.ModuleOptions{
		GroupName: "styles",
		Policy:    policy,
		LazyLoad:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "styles", group.Name())
	assert.Equal(t, "styles:build", group.TaskName("build"))
}

func TestNewModule_SharedPolicyFallback(t *testing.T) {
	host := &recordingHost{}

	group, err := newTestModule()(host, domain.ModuleOptions{LazyLoad: true})
	require.NoError(t, err)
	assert.Same(t, domain.SharedPolicy(), group.Policy())
}

func TestNewModule_NilSetup(t *testing.T) {
	host := &recordingHost{}
	module := domain.NewModule("empty", nil)

	group, err := module(host, domain.ModuleOptions{})
	require.NoError(t, err)
	assert.Empty(t, group.ActionNames())
	assert.Empty(t, host.registrations)
}

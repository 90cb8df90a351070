package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/crew/internal/core/domain"
)

func TestDependencyRef_IsExternalTo(t *testing.T) {
	tests := []struct {
		name    string
		ref     domain.DependencyRef
		context string
		want    bool
	}{
		{
			name:    "Different Group Is External",
			ref:     domain.ExternalDep("g2", "a2"),
			context: "g1",
			want:    true,
		},
		{
			name:    "Same Group Is Not External",
			ref:     domain.ExternalDep("g1", "a2"),
			context: "g1",
			want:    false,
		},
		{
			name:    "Local Ref Is Never External",
			ref:     domain.LocalDep("a2"),
			context: "g1",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ref.IsExternalTo(tt.context))
		})
	}
}

func TestDependencyRef_Resolve(t *testing.T) {
	policy := &domain.NamingPolicy{GroupBeforeAction: true}

	// External resolution always uses the dependency's target group, never
	// the context group.
	ref := domain.ExternalDep("g2", "a2")
	assert.Equal(t, "g2:a2", ref.Resolve("g1", policy))

	// Local refs resolve exactly as the context group names the action.
	local := domain.LocalDep("a2")
	assert.Equal(t, policy.TaskName("g1", "a2"), local.Resolve("g1", policy))

	// A ref naming the context group behaves like a local ref.
	same := domain.ExternalDep("g1", "a2")
	assert.Equal(t, "g1:a2", same.Resolve("g1", policy))
}

func TestDependencyRef_Resolve_LateBound(t *testing.T) {
	policy := &domain.NamingPolicy{GroupBeforeAction: true}
	ref := domain.ExternalDep("fonts", "copy")
	assert.Equal(t, "fonts:copy", ref.Resolve("less", policy))

	// Policy changes made after declaration are honored at resolution time.
	policy.DefaultPrefix = "app"
	assert.Equal(t, "app:fonts:copy", ref.Resolve("less", policy))
}

func TestDependencyRef_Accessors(t *testing.T) {
	ref := domain.ExternalDep("fonts", "copy")
	assert.Equal(t, "fonts", ref.GroupName())
	assert.Equal(t, "copy", ref.ActionName())

	local := domain.LocalDep("clean")
	assert.Empty(t, local.GroupName())
	assert.Equal(t, "clean", local.ActionName())
}

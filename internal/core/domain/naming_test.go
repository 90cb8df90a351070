package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/crew/internal/core/domain"
)

func TestNamingPolicy_TaskName(t *testing.T) {
	tests := []struct {
		name   string
		policy domain.NamingPolicy
		group  string
		action string
		want   string
	}{
		{
			name:   "Group First No Prefix",
			policy: domain.NamingPolicy{GroupBeforeAction: true},
			group:  "g",
			action: "a",
			want:   "g:a",
		},
		{
			name:   "Action First No Prefix",
			policy: domain.NamingPolicy{GroupBeforeAction: false},
			group:  "g",
			action: "a",
			want:   "a:g",
		},
		{
			name:   "Group First With Default Prefix",
			policy: domain.NamingPolicy{GroupBeforeAction: true, DefaultPrefix: "p"},
			group:  "g",
			action: "a",
			want:   "p:g:a",
		},
		{
			name:   "Action First With Default Prefix",
			policy: domain.NamingPolicy{GroupBeforeAction: false, DefaultPrefix: "p"},
			group:  "g",
			action: "a",
			want:   "p:a:g",
		},
		{
			name:   "Empty Names Pass Through",
			policy: domain.NamingPolicy{GroupBeforeAction: true},
			group:  "",
			action: "a",
			want:   ":a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.TaskName(tt.group, tt.action)
			assert.Equal(t, tt.want, got)
			// Pure and deterministic: a second call with unchanged policy
			// yields the identical result.
			assert.Equal(t, got, tt.policy.TaskName(tt.group, tt.action))
		})
	}
}

func TestNamingPolicy_TaskNameWithPrefix(t *testing.T) {
	policy := domain.NamingPolicy{GroupBeforeAction: true, DefaultPrefix: "default"}

	assert.Equal(t, "explicit:g:a", policy.TaskNameWithPrefix("g", "a", "explicit"))
	assert.Equal(t, "default:g:a", policy.TaskNameWithPrefix("g", "a", ""))

	policy.DefaultPrefix = ""
	assert.Equal(t, "g:a", policy.TaskNameWithPrefix("g", "a", ""))
}

func TestNamingPolicy_LiveMutation(t *testing.T) {
	policy := &domain.NamingPolicy{GroupBeforeAction: true}
	assert.Equal(t, "g:a", policy.TaskName("g", "a"))

	policy.GroupBeforeAction = false
	policy.DefaultPrefix = "p"
	assert.Equal(t, "p:a:g", policy.TaskName("g", "a"))
}

func TestNamingPolicy_Snapshot(t *testing.T) {
	policy := &domain.NamingPolicy{GroupBeforeAction: true, DefaultPrefix: "p"}
	snap := policy.Snapshot()

	policy.DefaultPrefix = "q"
	policy.GroupBeforeAction = false

	assert.Equal(t, "p:g:a", snap.TaskName("g", "a"))
	assert.Equal(t, "q:a:g", policy.TaskName("g", "a"))
}

func TestSplitTaskName_RoundTrip(t *testing.T) {
	policy := domain.NamingPolicy{GroupBeforeAction: true, DefaultPrefix: "p"}
	id := policy.TaskName("fonts", "copy")
	assert.Equal(t, []string{"p", "fonts", "copy"}, domain.SplitTaskName(id))

	policy = domain.NamingPolicy{GroupBeforeAction: false}
	id = policy.TaskName("fonts", "copy")
	assert.Equal(t, []string{"copy", "fonts"}, domain.SplitTaskName(id))
}

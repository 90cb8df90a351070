package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crew/internal/core/domain"
	"go.trai.ch/crew/internal/core/ports/mocks"
	"go.trai.ch/crew/internal/engine/loader"
	"go.uber.org/mock/gomock"
)

func stubModule(t *testing.T, name string) domain.ModuleFunc {
	t.Helper()
	return domain.NewModule(name, func(g *domain.TaskGroup) {
		g.AddAction("build", nil, nil)
	})
}

func TestLoader_Group_CachesPerName(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	repo := mocks.NewMockGroupRepository(ctrl)

	// The module must be resolved exactly once; later lookups hit the cache.
	repo.EXPECT().LoadGroupModule("less").Return(stubModule(t, "less"), nil).Times(1)

	l := loader.New(host, &domain.NamingPolicy{GroupBeforeAction: true}, repo)

	first, err := l.Group("less")
	require.NoError(t, err)
	second, err := l.Group("less")
	require.NoError(t, err)
	assert.Same(t, first, second)

	assert.Equal(t, []string{"less"}, l.LoadedGroups())
}

func TestLoader_Group_LazyInstantiation(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	repo := mocks.NewMockGroupRepository(ctrl)

	repo.EXPECT().LoadGroupModule("less").Return(stubModule(t, "less"), nil)

	l := loader.New(host, &domain.NamingPolicy{GroupBeforeAction: true}, repo)

	// No Register expectation on the host: instantiating a group must not
	// materialize anything.
	group, err := l.Group("less")
	require.NoError(t, err)
	assert.Equal(t, []string{"build"}, group.ActionNames())
}

func TestLoader_Group_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	repo := mocks.NewMockGroupRepository(ctrl)

	repo.EXPECT().LoadGroupModule("ghost").Return(nil, domain.ErrGroupNotFound)

	l := loader.New(host, &domain.NamingPolicy{}, repo)

	_, err := l.Group("ghost")
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
	assert.Empty(t, l.LoadedGroups())
}

func TestLoader_AvailableGroups_DelegatesEveryCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	repo := mocks.NewMockGroupRepository(ctrl)

	// Availability is a fresh read each time, never cached.
	repo.EXPECT().ListAvailableGroups().Return([]string{"fonts", "less"}, nil).Times(2)

	l := loader.New(host, &domain.NamingPolicy{}, repo)

	names, err := l.AvailableGroups()
	require.NoError(t, err)
	assert.Equal(t, []string{"fonts", "less"}, names)

	_, err = l.AvailableGroups()
	require.NoError(t, err)
}

func TestLoader_LoadAllAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	repo := mocks.NewMockGroupRepository(ctrl)

	repo.EXPECT().ListAvailableGroups().Return([]string{"fonts", "less"}, nil)
	repo.EXPECT().LoadGroupModule("fonts").Return(stubModule(t, "fonts"), nil)
	repo.EXPECT().LoadGroupModule("less").Return(stubModule(t, "less"), nil)

	l := loader.New(host, &domain.NamingPolicy{GroupBeforeAction: true}, repo)

	groups, err := l.LoadAllAvailable()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "fonts", groups[0].Name())
	assert.Equal(t, "less", groups[1].Name())
	assert.Equal(t, []string{"fonts", "less"}, l.LoadedGroups())
}

func TestLoader_LoadAllAvailable_PropagatesLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	repo := mocks.NewMockGroupRepository(ctrl)

	repo.EXPECT().ListAvailableGroups().Return([]string{"fonts"}, nil)
	repo.EXPECT().LoadGroupModule("fonts").Return(nil, domain.ErrGroupNotFound)

	l := loader.New(host, &domain.NamingPolicy{}, repo)

	_, err := l.LoadAllAvailable()
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
}

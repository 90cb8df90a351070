package ports

import "go.trai.ch/crew/internal/core/domain"

// GroupRepository abstracts where group-definition modules come from. The
// loader and everything above it have no knowledge of the backing mechanism;
// implementations scan a modules directory or serve a static registration
// table.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type GroupRepository interface {
	// ListAvailableGroups returns the names of every group a module exists
	// for. The result is a fresh read on every call; nothing is loaded or
	// cached.
	ListAvailableGroups() ([]string, error)

	// LoadGroupModule returns the module function for a group name, or
	// domain.ErrGroupNotFound when no module exists for it.
	LoadGroupModule(name string) (domain.ModuleFunc, error)
}

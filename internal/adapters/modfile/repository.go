// Package modfile implements ports.GroupRepository on top of a modules
// directory: every file named <group>-tasks.yaml defines one task group.
package modfile

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/crew/internal/adapters/shell"
	"go.trai.ch/crew/internal/core/domain"
	"go.trai.ch/crew/internal/core/ports"
	"go.trai.ch/zerr"
)

// moduleFilePattern is the naming convention for group-definition files.
// Capture group 1 is the group name.
var moduleFilePattern = regexp.MustCompile(`^(\w+)-tasks\.yaml$`)

// Repository scans a modules directory for group-definition files.
type Repository struct {
	dir    string
	logger ports.Logger
	shell  *shell.Runner

	// digests remembers the content hash of each module file at last load so
	// a changed redefinition can be called out.
	digests map[string]uint64
}

// NewRepository creates a Repository over the given modules directory.
func NewRepository(dir string, logger ports.Logger, sh *shell.Runner) *Repository {
	return &Repository{
		dir:     dir,
		logger:  logger,
		shell:   sh,
		digests: make(map[string]uint64),
	}
}

// ModulePath returns the path a group's definition file must live at.
func (r *Repository) ModulePath(group string) string {
	return filepath.Join(r.dir, group+"-tasks.yaml")
}

// ListAvailableGroups re-scans the directory on every call and returns the
// group names extracted from matching filenames. Nothing is loaded or cached.
func (r *Repository) ListAvailableGroups() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to scan modules directory"), "dir", r.dir)
	}

	var groups []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if m := moduleFilePattern.FindStringSubmatch(entry.Name()); m != nil {
			groups = append(groups, m[1])
		}
	}
	return groups, nil
}

// LoadGroupModule reads and parses the group's definition file and returns a
// module function whose setup installs the declared actions with shell-runner
// bodies. A missing file is domain.ErrGroupNotFound.
func (r *Repository) LoadGroupModule(name string) (domain.ModuleFunc, error) {
	path := r.ModulePath(name)
	data, err := os.ReadFile(path) //nolint:gosec // path derives from the configured modules directory
	if err != nil {
		if os.IsNotExist(err) {
			notFound := zerr.Wrap(domain.ErrGroupNotFound, "no module file")
			return nil, zerr.With(zerr.With(notFound, "group", name), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read module file"), "path", path)
	}

	digest := xxhash.Sum64(data)
	if prev, seen := r.digests[name]; seen && prev != digest {
		r.logger.Warn(fmt.Sprintf("module %q changed since last load (digest %x -> %x)", name, prev, digest))
	}
	r.digests[name] = digest

	declaredName, prefix, actions, err := parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	defaultName := declaredName
	if defaultName == "" {
		defaultName = name
	}

	return domain.NewModule(defaultName, func(g *domain.TaskGroup) {
		if prefix != "" {
			g.SetPrefix(prefix)
		}
		for _, a := range actions {
			if g.AddAction(a.name, parseDeps(a.dto.Deps), r.shell.Body(a.dto.Cmd)) {
				r.logger.Warn(fmt.Sprintf("group %q redefines action %q, keeping the later definition", g.Name(), a.name))
			}
		}
	}), nil
}

package modfile

import (
	"strings"

	"go.trai.ch/crew/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// moduleFile is the structure of a <group>-tasks.yaml file.
type moduleFile struct {
	// Group optionally overrides the group name derived from the filename.
	Group string `yaml:"group"`
	// Prefix optionally namespaces every identifier the group generates.
	Prefix string `yaml:"prefix"`
	// Actions is kept as a raw node so the file's declaration order survives
	// decoding; yaml maps would lose it.
	Actions yaml.Node `yaml:"actions"`
}

// actionDTO is one action entry in a module file.
type actionDTO struct {
	Deps []string `yaml:"deps"`
	Cmd  []string `yaml:"cmd"`
}

// parse decodes a module file and returns the declared group name and prefix
// (either may be empty) and the actions in declaration order.
func parse(data []byte) (string, string, []namedAction, error) {
	var mf moduleFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return "", "", nil, zerr.Wrap(err, "failed to parse module file")
	}

	var actions []namedAction
	if mf.Actions.Kind == yaml.MappingNode {
		// Mapping node content alternates key, value.
		for i := 0; i+1 < len(mf.Actions.Content); i += 2 {
			var dto actionDTO
			if err := mf.Actions.Content[i+1].Decode(&dto); err != nil {
				return "", "", nil, zerr.With(zerr.Wrap(err, "failed to parse action"), "action", mf.Actions.Content[i].Value)
			}
			actions = append(actions, namedAction{name: mf.Actions.Content[i].Value, dto: dto})
		}
	}
	return mf.Group, mf.Prefix, actions, nil
}

// namedAction pairs an action name with its decoded entry.
type namedAction struct {
	name string
	dto  actionDTO
}

// parseDeps maps dep strings to refs: "action" is local, "group:action" is
// external.
func parseDeps(deps []string) []domain.DependencyRef {
	if len(deps) == 0 {
		return nil
	}
	refs := make([]domain.DependencyRef, len(deps))
	for i, dep := range deps {
		if group, action, found := strings.Cut(dep, domain.Separator); found {
			refs[i] = domain.ExternalDep(group, action)
		} else {
			refs[i] = domain.LocalDep(dep)
		}
	}
	return refs
}

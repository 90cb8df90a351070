package hostrunner

import (
	"go.trai.ch/crew/internal/core/domain"
	"go.trai.ch/zerr"
)

// validate checks the registered task table for unknown dependency
// identifiers and cycles, and returns execution levels: each level contains
// tasks whose dependencies all live in earlier levels, so a level can run in
// parallel once its predecessors finished.
func (r *Runner) validate() ([][]domain.InternedString, error) {
	visited := make(map[domain.InternedString]int, len(r.order)) // 0 unvisited, 1 visiting, 2 done
	level := make(map[domain.InternedString]int, len(r.order))
	var path []domain.InternedString

	var visit func(u domain.InternedString) error
	visit = func(u domain.InternedString) error {
		visited[u] = 1
		path = append(path, u)

		t, exists := r.tasks[u]
		if !exists {
			return zerr.With(zerr.Wrap(domain.ErrMissingDependency, "task graph validation failed"), "dependency", u.String())
		}

		depth := 0
		for _, dep := range t.deps {
			if visited[dep] == 1 {
				return cycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
			if level[dep]+1 > depth {
				depth = level[dep] + 1
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		level[u] = depth
		return nil
	}

	// Registration order makes the traversal, and therefore level contents,
	// deterministic.
	for _, id := range r.order {
		if visited[id] == 0 {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}

	maxLevel := -1
	for _, l := range level {
		if l > maxLevel {
			maxLevel = l
		}
	}
	levels := make([][]domain.InternedString, maxLevel+1)
	for _, id := range r.order {
		l := level[id]
		levels[l] = append(levels[l], id)
	}
	return levels, nil
}

// cycleError constructs an error carrying the cycle path as metadata.
func cycleError(path []domain.InternedString, dep domain.InternedString) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}
	cyclePath := ""
	for i := start; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(zerr.Wrap(domain.ErrCycleDetected, "task graph validation failed"), "cycle", cyclePath)
}

package catalog

import (
	"context"
	"fmt"
	"slices"
)

// ExpandSubtree returns id and the ids of all its active descendants, sorted.
//
// One ChildCategories query is issued per level. Duplicates inside a level are
// dropped; meeting an id expanded on an earlier level means the data has a
// cycle and yields ErrDataIntegrity, as does a descendant deeper than MaxDepth.
func (s *Service) ExpandSubtree(ctx context.Context, id int64) ([]int64, error) {
	seen := map[int64]struct{}{id: {}}
	out := []int64{id}
	frontier := []int64{id}

	for depth := 1; len(frontier) > 0; depth++ {
		children, err := s.store.ChildCategories(ctx, frontier)
		if err != nil {
			return nil, err
		}

		level := make(map[int64]struct{}, len(children))
		next := make([]int64, 0, len(children))
		for _, c := range children {
			if _, dup := level[c.ID]; dup {
				continue
			}
			if _, old := seen[c.ID]; old {
				return nil, fmt.Errorf("%w: category %d is its own descendant", ErrDataIntegrity, c.ID)
			}
			level[c.ID] = struct{}{}
			seen[c.ID] = struct{}{}
			next = append(next, c.ID)
		}

		if len(next) > 0 && depth >= s.opts.MaxDepth {
			return nil, fmt.Errorf("%w: subtree of category %d exceeds depth %d",
				ErrDataIntegrity, id, s.opts.MaxDepth)
		}
		out = append(out, next...)
		frontier = next
	}

	slices.Sort(out)
	return out, nil
}

// HasChildren reports whether id has at least one active direct child.
// It uses the same predicate as ExpandSubtree, so a leaf here has no children there.
func (s *Service) HasChildren(ctx context.Context, id int64) (bool, error) {
	return s.store.HasChildren(ctx, id)
}

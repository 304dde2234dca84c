package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ResolveCategoryBySlug finds the active category with the given slug.
func (s *Service) ResolveCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: category slug is required", ErrInvalidArgument)
	}
	return s.store.CategoryBySlug(ctx, slug)
}

// CategoryByID returns the category with the given id if it is active.
func (s *Service) CategoryByID(ctx context.Context, id int64) (*Category, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: category id must be positive", ErrInvalidArgument)
	}
	c, err := s.store.CategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsActive {
		return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	return c, nil
}

// BuildAncestorChain returns the breadcrumb for c, root first, c last.
//
// The walk stops at a dangling or inactive parent and returns what it has.
// A repeated id or a chain longer than MaxDepth is ErrDataIntegrity.
func (s *Service) BuildAncestorChain(ctx context.Context, c *Category) ([]*Category, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: category is nil", ErrInvalidArgument)
	}

	arena := map[int64]*Category{c.ID: c}
	chain := []*Category{c}

	for cur := c; ; {
		parentID, ok := cur.Parent()
		if !ok {
			break
		}
		if _, seen := arena[parentID]; seen {
			return nil, fmt.Errorf("%w: cycle through category %d", ErrDataIntegrity, parentID)
		}
		parent, err := s.store.CategoryByID(ctx, parentID)
		if errors.Is(err, ErrNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		if !parent.IsActive {
			break
		}
		if len(chain) >= s.opts.MaxDepth {
			return nil, fmt.Errorf("%w: ancestor chain of category %d exceeds depth %d",
				ErrDataIntegrity, c.ID, s.opts.MaxDepth)
		}

		arena[parent.ID] = parent
		chain = append(chain, parent)
		cur = parent
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

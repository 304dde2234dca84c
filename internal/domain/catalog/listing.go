package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ListCategories returns the active children of parentID (0 for the roots).
// With a brand slug, only children whose subtree shares a category with the
// brand are kept; an unknown brand gives an empty list.
func (s *Service) ListCategories(ctx context.Context, parentID int64, brandSlug string) ([]*Category, error) {
	if parentID < 0 {
		return nil, fmt.Errorf("%w: parent id must not be negative", ErrInvalidArgument)
	}

	var brandCats []int64
	if brandSlug = strings.TrimSpace(brandSlug); brandSlug != "" {
		_, ids, err := s.brandScope(ctx, brandSlug)
		if errors.Is(err, ErrNotFound) {
			return make([]*Category, 0), nil
		}
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return make([]*Category, 0), nil
		}
		brandCats = ids
	}

	children, err := s.store.ChildCategories(ctx, []int64{parentID})
	if err != nil {
		return nil, err
	}
	if brandCats == nil {
		if children == nil {
			children = make([]*Category, 0)
		}
		return children, nil
	}

	out := make([]*Category, 0, len(children))
	for _, c := range children {
		subtree, err := s.ExpandSubtree(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if len(Intersect(subtree, brandCats)) > 0 {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListBrands returns the active brands ordered by title.
func (s *Service) ListBrands(ctx context.Context) ([]*Brand, error) {
	brands, err := s.store.ListBrands(ctx)
	if err != nil {
		return nil, err
	}
	if brands == nil {
		brands = make([]*Brand, 0)
	}
	return brands, nil
}

// ProductDetail loads an active product by slug with its brand and the
// breadcrumb of its category. A missing brand or category leaves those parts
// empty rather than failing the lookup.
func (s *Service) ProductDetail(ctx context.Context, slug string) (*ProductDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: product slug is required", ErrInvalidArgument)
	}

	p, err := s.store.ProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p.Images == nil {
		p.Images = make([]*ProductImage, 0)
	}

	d := &ProductDetail{Product: p, Breadcrumb: make([]*Category, 0)}

	if p.BrandID != nil {
		b, err := s.store.BrandByID(ctx, *p.BrandID)
		switch {
		case errors.Is(err, ErrNotFound):
		case err != nil:
			return nil, err
		case b.IsActive:
			d.Brand = b
		}
	}

	if p.CategoryID != nil && *p.CategoryID > 0 {
		c, err := s.store.CategoryByID(ctx, *p.CategoryID)
		switch {
		case errors.Is(err, ErrNotFound):
		case err != nil:
			return nil, err
		case c.IsActive:
			chain, err := s.BuildAncestorChain(ctx, c)
			if err != nil {
				return nil, err
			}
			d.Breadcrumb = chain
		}
	}
	return d, nil
}

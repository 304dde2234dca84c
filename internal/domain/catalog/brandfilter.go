package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// CategoriesForBrand resolves brandSlug and returns the distinct category ids it
// is related to. An unknown brand is ErrNotFound; a known brand without
// relations returns an empty, non-nil slice.
func (s *Service) CategoriesForBrand(ctx context.Context, brandSlug string) ([]int64, error) {
	_, ids, err := s.brandScope(ctx, brandSlug)
	return ids, err
}

func (s *Service) brandScope(ctx context.Context, brandSlug string) (*Brand, []int64, error) {
	brandSlug = strings.TrimSpace(brandSlug)
	if brandSlug == "" {
		return nil, nil, fmt.Errorf("%w: brand slug is required", ErrInvalidArgument)
	}

	brand, err := s.store.BrandBySlug(ctx, brandSlug)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.store.BrandCategoryIDs(ctx, brand.ID)
	if err != nil {
		return nil, nil, err
	}
	return brand, dedupe(raw), nil
}

// Intersect returns the ids present in both a and b, in ascending order.
func Intersect(a, b []int64) []int64 {
	in := make(map[int64]struct{}, len(b))
	for _, id := range b {
		in[id] = struct{}{}
	}
	out := make([]int64, 0)
	for _, id := range dedupe(a) {
		if _, ok := in[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func dedupe(ids []int64) []int64 {
	out := slices.Clone(ids)
	if out == nil {
		out = make([]int64, 0)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

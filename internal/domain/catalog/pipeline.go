package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxPageSize is the largest page a listing may ask for. Keep in sync with the
// lte tag on pageArgs.
const MaxPageSize = 100

var validate = validator.New(validator.WithRequiredStructEnabled())

type pageArgs struct {
	Page     int `validate:"gte=1"`
	PageSize int `validate:"gte=1,lte=100"`
}

func validatePage(page, pageSize int) error {
	err := validate.Struct(pageArgs{Page: page, PageSize: pageSize})
	if err == nil {
		// the offset (page-1)*pageSize must fit in an int
		if page-1 > math.MaxInt/pageSize {
			return fmt.Errorf("%w: page %d is out of range for page size %d",
				ErrInvalidArgument, page, pageSize)
		}
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must be %s %s (got %v)",
			strings.ToLower(fe.Field()), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidArgument, strings.Join(msgs, "; "))
}

// ListProducts returns one page of active products matching filter, newest first.
//
// Scope: a free-text query searches the whole catalog (narrowed to the brand if
// one is given); otherwise a category slug scopes to its subtree, intersected
// with the brand's categories when a brand is given; a brand alone scopes to its
// categories. An unknown brand, or an empty scope, is an empty page, not an error.
func (s *Service) ListProducts(ctx context.Context, filter ProductFilter, page, pageSize int) (*ProductPage, error) {
	if err := validatePage(page, pageSize); err != nil {
		return nil, err
	}
	terms, err := SearchTerms(filter.Query)
	if err != nil {
		return nil, err
	}

	out := &ProductPage{Items: make([]*ProductCard, 0), Page: page}

	q, empty, err := s.resolveScope(ctx, filter, terms)
	if err != nil {
		return nil, err
	}
	if empty {
		return out, nil
	}

	skip := (page - 1) * pageSize
	q.Limit, q.Offset = pageSize, skip

	run := func(st Store) error {
		items, err := st.ListProducts(ctx, q)
		if err != nil {
			return err
		}

		ids := make([]int64, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}
		images, err := st.PrimaryImages(ctx, ids)
		if err != nil {
			return err
		}
		for _, it := range items {
			if path, ok := images[it.ID]; ok && strings.TrimSpace(path) != "" {
				it.Image = path
			} else {
				it.Image = s.opts.PlaceholderImage
			}
		}

		total, err := st.CountProducts(ctx, q)
		if err != nil {
			return err
		}

		out.Items = items
		out.TotalCount = total
		return nil
	}

	if s.opts.SnapshotReads {
		err = s.store.ReadSnapshot(ctx, run)
	} else {
		err = run(s.store)
	}
	if err != nil {
		return nil, err
	}

	out.HasMore = skip+len(out.Items) < out.TotalCount
	return out, nil
}

// resolveScope turns a filter into a ProductQuery. empty reports that the
// result is known to be empty without querying products.
func (s *Service) resolveScope(ctx context.Context, filter ProductFilter, terms []string) (q ProductQuery, empty bool, err error) {
	categorySlug := strings.TrimSpace(filter.CategorySlug)
	brandSlug := strings.TrimSpace(filter.BrandSlug)

	var (
		brand     *Brand
		brandCats []int64
	)
	loadBrand := func() (bool, error) {
		if brandSlug == "" {
			return true, nil
		}
		b, ids, err := s.brandScope(ctx, brandSlug)
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		brand, brandCats = b, ids
		q.BrandID = &b.ID
		return true, nil
	}

	switch {
	case len(terms) > 0:
		q.Terms = terms
		ok, err := loadBrand()
		if err != nil || !ok {
			return q, !ok, err
		}
		return q, false, nil

	case categorySlug != "":
		cat, err := s.ResolveCategoryBySlug(ctx, categorySlug)
		if err != nil {
			return q, false, err
		}
		ids, err := s.ExpandSubtree(ctx, cat.ID)
		if err != nil {
			return q, false, err
		}
		ok, err := loadBrand()
		if err != nil || !ok {
			return q, !ok, err
		}
		if brand != nil {
			ids = Intersect(ids, brandCats)
		}
		q.Scoped, q.CategoryIDs = true, ids
		return q, len(ids) == 0, nil

	case brandSlug != "":
		ok, err := loadBrand()
		if err != nil || !ok {
			return q, !ok, err
		}
		if len(brandCats) == 0 {
			return q, true, nil
		}
		// only categories a shopper could browse to
		active, err := s.store.ActiveCategoryIDs(ctx, brandCats)
		if err != nil {
			return q, false, err
		}
		q.Scoped, q.CategoryIDs = true, dedupe(active)
		return q, len(q.CategoryIDs) == 0, nil
	}

	return q, false, nil
}

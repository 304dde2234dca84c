// Package memstore is an in-memory catalog.Store with the same semantics as
// the pgx Repository. It backs the domain and HTTP tests.
package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"katalog/internal/domain/catalog"
)

type Store struct {
	mu         sync.RWMutex
	categories map[int64]*catalog.Category
	brands     map[int64]*catalog.Brand
	relations  []catalog.CategoryBrandRelation
	products   map[int64]*catalog.Product

	failOp  map[string]error
	failAll error
	calls   map[string]int
}

var _ catalog.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		categories: make(map[int64]*catalog.Category),
		brands:     make(map[int64]*catalog.Brand),
		products:   make(map[int64]*catalog.Product),
		failOp:     make(map[string]error),
		calls:      make(map[string]int),
	}
}

// ------------------------------------
// Fixtures
// ------------------------------------
func (s *Store) AddCategory(c catalog.Category) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID] = &c
	return s
}

func (s *Store) AddBrand(b catalog.Brand) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brands[b.ID] = &b
	return s
}

// Relate records that brandID is sold in categoryID.
func (s *Store) Relate(categoryID, brandID int64) *Store {
	return s.AddRelation(catalog.CategoryBrandRelation{CategoryID: &categoryID, BrandID: &brandID})
}

// AddRelation appends a raw relation row; either side may be nil.
func (s *Store) AddRelation(r catalog.CategoryBrandRelation) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relations = append(s.relations, r)
	return s
}

func (s *Store) AddProduct(p catalog.Product) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, img := range p.Images {
		img.ProductID = p.ID
	}
	s.products[p.ID] = &p
	return s
}

// Fail makes every following call return err. Pass nil to recover.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAll = err
}

// FailOn makes calls to the named Store method return err.
func (s *Store) FailOn(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failOp, method)
		return
	}
	s.failOp[method] = err
}

// Calls returns how many Store methods have been invoked in total.
func (s *Store) Calls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

// CallsTo returns how many times the named Store method has been invoked.
func (s *Store) CallsTo(method string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls[method]
}

// enter records the call and returns any injected failure. Callers must hold mu.
func (s *Store) enter(ctx context.Context, method string) error {
	s.calls[method]++
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", catalog.ErrStoreUnavailable, method, err)
	}
	if s.failAll != nil {
		return s.failAll
	}
	return s.failOp[method]
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), catalog.ErrNotFound)
}

// ------------------------------------
// Categories
// ------------------------------------
func (s *Store) CategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(ctx, "CategoryBySlug"); err != nil {
		return nil, err
	}
	var found *catalog.Category
	for _, c := range s.categories {
		if c.Slug == slug && c.IsActive && (found == nil || c.ID < found.ID) {
			found = c
		}
	}
	if found == nil {
		return nil, notFound("category by slug %q", slug)
	}
	cp := *found
	return &cp, nil
}

func (s *Store) CategoryByID(ctx context.Context, id int64) (*catalog.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(ctx, "CategoryByID"); err != nil {
		return nil, err
	}
	c, ok := s.categories[id]
	if !ok {
		return nil, notFound("category by id %d", id)
	}
	cp := *c
	return &cp, nil
}

func parentOf(c *catalog.Category) int64 {
	if c.ParentID == nil {
		return 0
	}
	return *c.ParentID
}

func (s *Store) ChildCategories(ctx context.Context, parentIDs []int64) ([]*catalog.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(ctx, "ChildCategories"); err != nil {
		return nil, err
	}
	var list []*catalog.Category
	for _, c := range s.categories {
		if c.IsActive && slices.Contains(parentIDs, parentOf(c)) {
			cp := *c
			list = append(list, &cp)
		}
	}
	slices.SortFunc(list, func(a, b *catalog.Category) int {
		return cmp.Or(cmp.Compare(a.SortOrder, b.SortOrder), cmp.Compare(a.ID, b.ID))
	})
	return list, nil
}

func (s *Store) HasChildren(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(ctx, "HasChildren"); err != nil {
		return false, err
	}
	for _, c := range s.categories {
		if c.IsActive && parentOf(c) == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ActiveCategoryIDs(ctx context.Context, ids []int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(ctx, "ActiveCategoryIDs"); err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.categories[id]; ok && c.IsActive {
			out = append(out, id)
		}
	}
	return out, nil
}

// ------------------------------------
// Brands
// ------------------------------------
func (s *Store) BrandBySlug(ctx context.Context, slug string) (*catalog.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(ctx, "BrandBySlug"); err != nil {
		return nil, err
	}
	var found *catalog.Brand
	for _, b := range s.brands {
		if b.Slug == slug && b.IsActive && (found == nil || b.ID < found.ID) {
			found = b
		}
	}
	if found == nil {
		return nil, notFound("brand by slug %q", slug)
	}
	cp := *found
	return &cp, nil
}

func (s *Store) BrandByID(ctx context.Context, id int64) (*catalog.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(ctx, "BrandByID"); err != nil {
		return nil, err
	}
	b, ok := s.brands[id]
	if !ok {
		return nil, notFound("brand by id %d", id)
	}
	cp := *b
	return &cp, nil
}

func (s *Store) ListBrands(ctx context.Context) ([]*catalog.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(ctx, "ListBrands"); err != nil {
		return nil, err
	}
	list := make([]*catalog.Brand, 0, len(s.brands))
	for _, b := range s.brands {
		if b.IsActive {
			cp := *b
			list = append(list, &cp)
		}
	}
	slices.SortFunc(list, func(a, b *catalog.Brand) int {
		return cmp.Or(cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)), cmp.Compare(a.ID, b.ID))
	})
	return list, nil
}

func (s *Store) BrandCategoryIDs(ctx context.Context, brandID int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(ctx, "BrandCategoryIDs"); err != nil {
		return nil, err
	}
	ids := make([]int64, 0)
	for _, r := range s.relations {
		if r.BrandID != nil && *r.BrandID == brandID && r.CategoryID != nil {
			ids = append(ids, *r.CategoryID)
		}
	}
	return ids, nil
}

// ------------------------------------
// Products
// ------------------------------------
func (s *Store) brandTitle(p *catalog.Product) *string {
	if p.BrandID == nil {
		return nil
	}
	b, ok := s.brands[*p.BrandID]
	if !ok {
		return nil
	}
	title := b.Title
	return &title
}

func (s *Store) matches(p *catalog.Product, q catalog.ProductQuery) bool {
	if !p.IsActive {
		return false
	}
	if q.Scoped && (p.CategoryID == nil || !slices.Contains(q.CategoryIDs, *p.CategoryID)) {
		return false
	}
	if q.BrandID != nil && (p.BrandID == nil || *p.BrandID != *q.BrandID) {
		return false
	}
	var brand string
	if t := s.brandTitle(p); t != nil {
		brand = *t
	}
	for _, term := range q.Terms {
		needle := strings.ToLower(term)
		hit := false
		for _, field := range []string{p.Name.Primary, p.Name.Secondary, p.Code, brand} {
			if strings.Contains(strings.ToLower(field), needle) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func (s *Store) selectProducts(q catalog.ProductQuery) []*catalog.Product {
	var list []*catalog.Product
	for _, p := range s.products {
		if s.matches(p, q) {
			list = append(list, p)
		}
	}
	slices.SortFunc(list, func(a, b *catalog.Product) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return list
}

func (s *Store) ListProducts(ctx context.Context, q catalog.ProductQuery) ([]*catalog.ProductCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(ctx, "ListProducts"); err != nil {
		return nil, err
	}
	list := s.selectProducts(q)

	start := min(max(q.Offset, 0), len(list))
	end := len(list)
	if q.Limit > 0 {
		end = min(start+q.Limit, len(list))
	}

	cards := make([]*catalog.ProductCard, 0, end-start)
	for _, p := range list[start:end] {
		cards = append(cards, &catalog.ProductCard{
			ID:         p.ID,
			Slug:       p.Slug,
			Code:       p.Code,
			Name:       p.Name,
			CategoryID: p.CategoryID,
			BrandID:    p.BrandID,
			BrandTitle: s.brandTitle(p),
			CreatedAt:  p.CreatedAt,
		})
	}
	return cards, nil
}

func (s *Store) CountProducts(ctx context.Context, q catalog.ProductQuery) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(ctx, "CountProducts"); err != nil {
		return 0, err
	}
	return len(s.selectProducts(q)), nil
}

func sortedImages(p *catalog.Product) []*catalog.ProductImage {
	imgs := make([]*catalog.ProductImage, 0, len(p.Images))
	for _, img := range p.Images {
		cp := *img
		imgs = append(imgs, &cp)
	}
	slices.SortFunc(imgs, func(a, b *catalog.ProductImage) int {
		return cmp.Or(cmp.Compare(a.Position, b.Position), cmp.Compare(a.ID, b.ID))
	})
	return imgs
}

func (s *Store) PrimaryImages(ctx context.Context, productIDs []int64) (map[int64]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]string, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	if err := s.enter(ctx, "PrimaryImages"); err != nil {
		return nil, err
	}
	for _, id := range productIDs {
		p, ok := s.products[id]
		if !ok {
			continue
		}
		if imgs := sortedImages(p); len(imgs) > 0 {
			out[id] = imgs[0].Path
		}
	}
	return out, nil
}

func (s *Store) ProductBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(ctx, "ProductBySlug"); err != nil {
		return nil, err
	}
	var found *catalog.Product
	for _, p := range s.products {
		if p.Slug == slug && p.IsActive && (found == nil || p.ID < found.ID) {
			found = p
		}
	}
	if found == nil {
		return nil, notFound("product by slug %q", slug)
	}
	cp := *found
	cp.Images = sortedImages(found)
	return &cp, nil
}

// ReadSnapshot runs fn against the store itself; the map is already consistent
// for the duration of each call.
func (s *Store) ReadSnapshot(ctx context.Context, fn func(catalog.Store) error) error {
	s.mu.Lock()
	err := s.enter(ctx, "ReadSnapshot")
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return fn(s)
}

package catalog

import "context"

// Store is the read-only query contract the catalog pipeline runs on.
// Implemented by Repository (pgx) and by memstore for tests.
//
// Lookups return an error wrapping ErrNotFound when no row matches; any other
// failure wraps ErrStoreUnavailable.
type Store interface {
	// Categories
	CategoryBySlug(ctx context.Context, slug string) (*Category, error)
	CategoryByID(ctx context.Context, id int64) (*Category, error)
	// ChildCategories returns the active children of any of parentIDs, ordered
	// by sort_order, id. A parent id of 0 selects the roots.
	ChildCategories(ctx context.Context, parentIDs []int64) ([]*Category, error)
	HasChildren(ctx context.Context, id int64) (bool, error)
	// ActiveCategoryIDs returns the subset of ids naming active categories.
	ActiveCategoryIDs(ctx context.Context, ids []int64) ([]int64, error)

	// Brands
	BrandBySlug(ctx context.Context, slug string) (*Brand, error)
	BrandByID(ctx context.Context, id int64) (*Brand, error)
	ListBrands(ctx context.Context) ([]*Brand, error)
	// BrandCategoryIDs returns the non-null category ids related to brandID.
	// Duplicates are possible.
	BrandCategoryIDs(ctx context.Context, brandID int64) ([]int64, error)

	// Products
	ListProducts(ctx context.Context, q ProductQuery) ([]*ProductCard, error)
	CountProducts(ctx context.Context, q ProductQuery) (int, error)
	// PrimaryImages maps product id to the path of its lowest-position image.
	// Products without images are absent from the map.
	PrimaryImages(ctx context.Context, productIDs []int64) (map[int64]string, error)
	ProductBySlug(ctx context.Context, slug string) (*Product, error)

	// ReadSnapshot runs fn against a Store bound to one read-only snapshot.
	ReadSnapshot(ctx context.Context, fn func(Store) error) error
}

package catalog

import "time"

type Category struct {
	ID        int64           `json:"id"`
	Slug      string          `json:"seo_link"`
	ParentID  *int64          `json:"parent_id,omitempty"`
	Name      LocalizedString `json:"name"`
	IsActive  bool            `json:"is_active"`
	SortOrder int             `json:"sort_order"`
	ImagePath *string         `json:"img_path,omitempty"`
}

// Parent reports the parent id, treating nil and 0 as the root sentinel.
func (c *Category) Parent() (int64, bool) {
	if c.ParentID == nil || *c.ParentID == 0 {
		return 0, false
	}
	return *c.ParentID, true
}

type Brand struct {
	ID       int64  `json:"id"`
	Slug     string `json:"seo_link"`
	Title    string `json:"title"`
	IsActive bool   `json:"is_active"`
}

// CategoryBrandRelation mirrors a row of the category/brand join table.
// Both sides are nullable in the source data.
type CategoryBrandRelation struct {
	CategoryID *int64 `json:"category_id"`
	BrandID    *int64 `json:"brand_id"`
}

type Product struct {
	ID         int64           `json:"id"`
	CategoryID *int64          `json:"category_id,omitempty"`
	BrandID    *int64          `json:"brand_id,omitempty"`
	Slug       string          `json:"seo_link"`
	Code       string          `json:"code"`
	Name       LocalizedString `json:"name"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	Images     []*ProductImage `json:"images"`
}

type ProductImage struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Path      string `json:"path"`
	Position  int    `json:"position"`
}

// ProductCard is the lightweight listing row.
type ProductCard struct {
	ID         int64           `json:"id"`
	Slug       string          `json:"seo_link"`
	Code       string          `json:"code"`
	Name       LocalizedString `json:"name"`
	CategoryID *int64          `json:"category_id,omitempty"`
	BrandID    *int64          `json:"brand_id,omitempty"`
	BrandTitle *string         `json:"brand,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	Image      string          `json:"image"`
}

type ProductDetail struct {
	Product    *Product    `json:"product"`
	Brand      *Brand      `json:"brand,omitempty"`
	Breadcrumb []*Category `json:"breadcrumb"`
}

// ProductFilter is what a listing request asks for. All fields are optional.
type ProductFilter struct {
	CategorySlug string
	BrandSlug    string
	Query        string
}

// ProductQuery is the resolved predicate handed to the store. When Scoped is
// true only products whose category is in CategoryIDs match.
type ProductQuery struct {
	Scoped      bool
	CategoryIDs []int64
	BrandID     *int64
	Terms       []string
	Limit       int
	Offset      int
}

type ProductPage struct {
	Items      []*ProductCard `json:"items"`
	TotalCount int            `json:"total"`
	HasMore    bool           `json:"hasMore"`
	Page       int            `json:"currentPage"`
}

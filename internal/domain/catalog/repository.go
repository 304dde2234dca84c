package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"katalog/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

// QueryTimeoutDuration bounds every store round-trip unless overridden.
var QueryTimeoutDuration = 5 * time.Second

type Repository struct {
	db      dbx.Querier
	timeout time.Duration
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q, timeout: QueryTimeoutDuration}
}

func NewRepositoryWithTimeout(q dbx.Querier, timeout time.Duration) *Repository {
	if timeout <= 0 {
		timeout = QueryTimeoutDuration
	}
	return &Repository{db: q, timeout: timeout}
}

// storeErr classifies a driver error. pgx.ErrNoRows becomes ErrNotFound;
// everything else, deadline and cancellation included, is ErrStoreUnavailable.
func storeErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

// ------------------------------------
// Snapshot
// ------------------------------------
func (r *Repository) ReadSnapshot(ctx context.Context, fn func(Store) error) error {
	starter, ok := r.db.(dbx.TxStarter)
	if !ok {
		// already inside a transaction
		return fn(r)
	}

	beginCtx, cancel := context.WithTimeout(ctx, r.timeout)
	tx, err := starter.BeginTx(beginCtx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	cancel()
	if err != nil {
		return storeErr("begin snapshot", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // safe even if already committed
	}()

	if err := fn(&Repository{db: tx, timeout: r.timeout}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit snapshot", err)
	}
	return nil
}

// ------------------------------------
// Categories
// ------------------------------------
const categoryColumns = `id, seo_link, parent_id, name_tr, name_en, is_active, sort_order, img_path`

func scanCategory(row pgx.Row) (*Category, error) {
	c := &Category{}
	err := row.Scan(&c.ID, &c.Slug, &c.ParentID, &c.Name.Primary, &c.Name.Secondary,
		&c.IsActive, &c.SortOrder, &c.ImagePath)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + categoryColumns + `
		FROM categories
		WHERE seo_link = $1 AND is_active = true
		ORDER BY id
		LIMIT 1;`

	c, err := scanCategory(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, storeErr(fmt.Sprintf("category by slug %q", slug), err)
	}
	return c, nil
}

func (r *Repository) CategoryByID(ctx context.Context, id int64) (*Category, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1;`

	c, err := scanCategory(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, storeErr(fmt.Sprintf("category by id %d", id), err)
	}
	return c, nil
}

func (r *Repository) ChildCategories(ctx context.Context, parentIDs []int64) ([]*Category, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + categoryColumns + `
		FROM categories
		WHERE COALESCE(parent_id, 0) = ANY($1) AND is_active = true
		ORDER BY sort_order ASC, id ASC;`

	rows, err := r.db.Query(ctx, query, parentIDs)
	if err != nil {
		return nil, storeErr("child categories", err)
	}
	defer rows.Close()

	var list []*Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, storeErr("scan category", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("child categories rows", err)
	}
	return list, nil
}

func (r *Repository) HasChildren(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM categories WHERE COALESCE(parent_id, 0) = $1 AND is_active = true)",
		id).Scan(&exists)
	if err != nil {
		return false, storeErr("has children", err)
	}
	return exists, nil
}

func (r *Repository) ActiveCategoryIDs(ctx context.Context, ids []int64) ([]int64, error) {
	out := make([]int64, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx,
		"SELECT id FROM categories WHERE id = ANY($1) AND is_active = true ORDER BY id", ids)
	if err != nil {
		return nil, storeErr("active categories", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, storeErr("scan active category", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("active categories rows", err)
	}
	return out, nil
}

// ------------------------------------
// Brands
// ------------------------------------
func (r *Repository) BrandBySlug(ctx context.Context, slug string) (*Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT id, seo_link, title, is_active
		FROM brands
		WHERE seo_link = $1 AND is_active = true
		ORDER BY id
		LIMIT 1;`
	b := &Brand{}
	if err := r.db.QueryRow(ctx, query, slug).Scan(&b.ID, &b.Slug, &b.Title, &b.IsActive); err != nil {
		return nil, storeErr(fmt.Sprintf("brand by slug %q", slug), err)
	}
	return b, nil
}

func (r *Repository) BrandByID(ctx context.Context, id int64) (*Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT id, seo_link, title, is_active FROM brands WHERE id = $1;`
	b := &Brand{}
	if err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Slug, &b.Title, &b.IsActive); err != nil {
		return nil, storeErr(fmt.Sprintf("brand by id %d", id), err)
	}
	return b, nil
}

func (r *Repository) ListBrands(ctx context.Context) ([]*Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	const q = `
		SELECT id, seo_link, title, is_active
		FROM brands
		WHERE is_active = true
		ORDER BY LOWER(title) ASC, id ASC;
	`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, storeErr("list brands", err)
	}
	defer rows.Close()

	var brands []*Brand
	for rows.Next() {
		var b Brand
		if err := rows.Scan(&b.ID, &b.Slug, &b.Title, &b.IsActive); err != nil {
			return nil, storeErr("scan brand", err)
		}
		brands = append(brands, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list brands rows", err)
	}
	return brands, nil
}

func (r *Repository) BrandCategoryIDs(ctx context.Context, brandID int64) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT category_id
		FROM category_brand_relations
		WHERE brand_id = $1 AND category_id IS NOT NULL;`, brandID)
	if err != nil {
		return nil, storeErr("brand categories", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, storeErr("scan brand category", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("brand categories rows", err)
	}
	return ids, nil
}

// ------------------------------------
// Products
// ------------------------------------

// escapeLike makes a user term literal inside an ILIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// productWhere builds the predicate shared by the page and the count query,
// so both always describe the same set. Expects products p LEFT JOIN brands b.
func productWhere(q ProductQuery) (string, []any) {
	conds := []string{"p.is_active = true"}
	var args []any

	if q.Scoped {
		args = append(args, q.CategoryIDs)
		conds = append(conds, fmt.Sprintf("p.category_id = ANY($%d)", len(args)))
	}
	if q.BrandID != nil {
		args = append(args, *q.BrandID)
		conds = append(conds, fmt.Sprintf("p.brand_id = $%d", len(args)))
	}
	// every term must hit at least one searchable field
	for _, term := range q.Terms {
		args = append(args, "%"+escapeLike(term)+"%")
		conds = append(conds, fmt.Sprintf(
			"(p.name_tr ILIKE $%[1]d OR p.name_en ILIKE $%[1]d OR p.code ILIKE $%[1]d OR COALESCE(b.title, '') ILIKE $%[1]d)",
			len(args)))
	}
	return strings.Join(conds, " AND "), args
}

func (r *Repository) ListProducts(ctx context.Context, q ProductQuery) ([]*ProductCard, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	where, args := productWhere(q)
	args = append(args, q.Limit, q.Offset)
	dataSQL := fmt.Sprintf(`
      SELECT p.id, p.seo_link, COALESCE(p.code, ''), p.name_tr, p.name_en,
             p.category_id, p.brand_id, b.title, p.created_at
      FROM products p
      LEFT JOIN brands b ON b.id = p.brand_id
      WHERE %s
      ORDER BY p.created_at DESC, p.id DESC
      LIMIT $%d OFFSET $%d;`, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, storeErr("list products", err)
	}
	defer rows.Close()

	cards := make([]*ProductCard, 0, q.Limit)
	for rows.Next() {
		var pc ProductCard
		if err := rows.Scan(
			&pc.ID, &pc.Slug, &pc.Code, &pc.Name.Primary, &pc.Name.Secondary,
			&pc.CategoryID, &pc.BrandID, &pc.BrandTitle, &pc.CreatedAt,
		); err != nil {
			return nil, storeErr("scan product card", err)
		}
		cards = append(cards, &pc)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list products rows", err)
	}
	return cards, nil
}

func (r *Repository) CountProducts(ctx context.Context, q ProductQuery) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	where, args := productWhere(q)
	countSQL := `
      SELECT COUNT(*)
      FROM products p
      LEFT JOIN brands b ON b.id = p.brand_id
      WHERE ` + where + `;`

	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return 0, storeErr("count products", err)
	}
	return total, nil
}

func (r *Repository) PrimaryImages(ctx context.Context, productIDs []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT ON (product_id) product_id, path
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY product_id, position ASC, id ASC;`, productIDs)
	if err != nil {
		return nil, storeErr("primary images", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			path string
		)
		if err := rows.Scan(&id, &path); err != nil {
			return nil, storeErr("scan primary image", err)
		}
		out[id] = path
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("primary images rows", err)
	}
	return out, nil
}

func (r *Repository) ProductBySlug(ctx context.Context, slug string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pSQL := `
      SELECT id, category_id, brand_id, seo_link, COALESCE(code, ''), name_tr, name_en, is_active, created_at
      FROM products
      WHERE seo_link = $1 AND is_active = true
      ORDER BY id
      LIMIT 1;`

	p := &Product{}
	if err := r.db.QueryRow(ctx, pSQL, slug).Scan(
		&p.ID, &p.CategoryID, &p.BrandID, &p.Slug, &p.Code,
		&p.Name.Primary, &p.Name.Secondary, &p.IsActive, &p.CreatedAt,
	); err != nil {
		return nil, storeErr(fmt.Sprintf("product by slug %q", slug), err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, path, position
		FROM product_images
		WHERE product_id = $1
		ORDER BY position ASC, id ASC;`, p.ID)
	if err != nil {
		return nil, storeErr("product images", err)
	}
	defer rows.Close()

	p.Images = make([]*ProductImage, 0, 4)
	for rows.Next() {
		var img ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.Path, &img.Position); err != nil {
			return nil, storeErr("scan product image", err)
		}
		p.Images = append(p.Images, &img)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("product images rows", err)
	}
	return p, nil
}

package main

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id         BIGSERIAL PRIMARY KEY,
	seo_link   TEXT NOT NULL,
	parent_id  BIGINT,
	name_tr    TEXT NOT NULL DEFAULT '',
	name_en    TEXT NOT NULL DEFAULT '',
	is_active  BOOLEAN NOT NULL DEFAULT true,
	sort_order INT NOT NULL DEFAULT 0,
	img_path   TEXT
);
CREATE INDEX IF NOT EXISTS idx_categories_seo_link ON categories (seo_link);
CREATE INDEX IF NOT EXISTS idx_categories_parent ON categories ((COALESCE(parent_id, 0))) WHERE is_active;

CREATE TABLE IF NOT EXISTS brands (
	id        BIGSERIAL PRIMARY KEY,
	seo_link  TEXT NOT NULL,
	title     TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT true
);
CREATE INDEX IF NOT EXISTS idx_brands_seo_link ON brands (seo_link);

CREATE TABLE IF NOT EXISTS category_brand_relations (
	category_id BIGINT,
	brand_id    BIGINT
);
CREATE INDEX IF NOT EXISTS idx_cbr_brand ON category_brand_relations (brand_id);

CREATE TABLE IF NOT EXISTS products (
	id          BIGSERIAL PRIMARY KEY,
	category_id BIGINT,
	brand_id    BIGINT,
	seo_link    TEXT NOT NULL,
	code        TEXT,
	name_tr     TEXT NOT NULL DEFAULT '',
	name_en     TEXT NOT NULL DEFAULT '',
	is_active   BOOLEAN NOT NULL DEFAULT true,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_products_listing ON products (created_at DESC, id DESC) WHERE is_active;
CREATE INDEX IF NOT EXISTS idx_products_category ON products (category_id);

CREATE TABLE IF NOT EXISTS product_images (
	id         BIGSERIAL PRIMARY KEY,
	product_id BIGINT NOT NULL REFERENCES products (id) ON DELETE CASCADE,
	path       TEXT NOT NULL,
	position   INT NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_product_images_product ON product_images (product_id, position, id);
`

const truncate = `TRUNCATE product_images, products, category_brand_relations, brands, categories RESTART IDENTITY;`

// explicit ids are used for the demo rows, so move the sequences past them
const syncSequences = `
SELECT setval(pg_get_serial_sequence('categories', 'id'), COALESCE(MAX(id), 1)) FROM categories;
SELECT setval(pg_get_serial_sequence('brands', 'id'), COALESCE(MAX(id), 1)) FROM brands;
SELECT setval(pg_get_serial_sequence('products', 'id'), COALESCE(MAX(id), 1)) FROM products;
SELECT setval(pg_get_serial_sequence('product_images', 'id'), COALESCE(MAX(id), 1)) FROM product_images;
`

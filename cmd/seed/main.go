// Command seed creates the catalog schema and loads a small demo catalog.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type seedCategory struct {
	id       int64
	parentID int64
	tr, en   string
	sort     int
	active   bool
}

type seedProduct struct {
	id         int64
	categoryID int64
	brandID    int64
	code       string
	tr, en     string
	images     []string
	age        time.Duration
}

var categories = []seedCategory{
	{id: 1, tr: "Güvenlik Sistemleri", en: "Security Systems", sort: 1, active: true},
	{id: 326, parentID: 1, tr: "CCTV Çözümleri", en: "CCTV Solutions", sort: 1, active: true},
	{id: 400, parentID: 326, tr: "IP Kameralar", en: "IP Cameras", sort: 1, active: true},
	{id: 401, parentID: 326, tr: "Analog Kameralar", en: "Analog Cameras", sort: 2, active: true},
	{id: 402, parentID: 326, tr: "Kayıt Cihazları", en: "Recorders", sort: 3, active: true},
	{id: 403, parentID: 326, tr: "Eski Seri", en: "", sort: 9, active: false},
	{id: 2, tr: "Ağ Ürünleri", en: "Networking", sort: 2, active: true},
	{id: 500, parentID: 2, tr: "PoE Switchler", en: "PoE Switches", sort: 1, active: true},
}

var brands = []struct {
	id    int64
	title string
}{
	{10, "Hikvision"},
	{11, "Dahua"},
	{12, "Uniview"},
}

// dahua (11) is left without relations on purpose.
var relations = [][2]int64{{400, 10}, {402, 10}, {500, 10}, {400, 12}, {401, 12}}

var products = []seedProduct{
	{id: 1001, categoryID: 400, brandID: 10, code: "DS-2CD2143G2-I", tr: "4MP AcuSense Dome IP Kamera", en: "4MP AcuSense Dome IP Camera",
		images: []string{"products/ds-2cd2143/front.jpg", "products/ds-2cd2143/side.jpg"}, age: 72 * time.Hour},
	{id: 1002, categoryID: 400, brandID: 12, code: "IPC2124LB", tr: "4MP Bullet IP Kamera", en: "4MP Bullet IP Camera",
		images: []string{"products/ipc2124/main.jpg"}, age: 48 * time.Hour},
	{id: 1003, categoryID: 401, brandID: 12, code: "UAC-B115", tr: "5MP HD Analog Kamera", en: "",
		age: 36 * time.Hour},
	{id: 1004, categoryID: 402, brandID: 10, code: "DS-7608NI", tr: "8 Kanal NVR Kayıt Cihazı", en: "8 Channel NVR",
		images: []string{"products/ds-7608/main.jpg"}, age: 24 * time.Hour},
	{id: 1005, categoryID: 500, brandID: 10, code: "DS-3E0508P", tr: "8 Port PoE Switch", en: "8 Port PoE Switch",
		age: 12 * time.Hour},
	{id: 1006, categoryID: 326, code: "CAB-RG59", tr: "RG59 Koaksiyel Kablo 100m", en: "RG59 Coaxial Cable 100m",
		age: time.Hour},
}

func main() {
	reset := flag.Bool("reset", false, "truncate catalog tables before loading")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()

	db, err := sql.Open("postgres", os.Getenv("DB_ADDR"))
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, db, *reset); err != nil {
		logger.Fatalw("seeding failed", "error", err)
	}
	logger.Infow("catalog seeded",
		"categories", len(categories),
		"brands", len(brands),
		"products", len(products),
	)
}

func seed(ctx context.Context, db *sql.DB, reset bool) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if reset {
		if _, err := tx.ExecContext(ctx, truncate); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
	}

	for _, c := range categories {
		var parent any
		if c.parentID != 0 {
			parent = c.parentID
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, seo_link, parent_id, name_tr, name_en, is_active, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING`,
			c.id, slug.MakeLang(c.tr, "tr"), parent, c.tr, c.en, c.active, c.sort)
		if err != nil {
			return fmt.Errorf("insert category %d: %w", c.id, err)
		}
	}

	for _, b := range brands {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO brands (id, seo_link, title) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO NOTHING`,
			b.id, slug.Make(b.title), b.title)
		if err != nil {
			return fmt.Errorf("insert brand %d: %w", b.id, err)
		}
	}

	for _, r := range relations {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO category_brand_relations (category_id, brand_id)
			SELECT $1::bigint, $2::bigint
			WHERE NOT EXISTS (
				SELECT 1 FROM category_brand_relations WHERE category_id = $1 AND brand_id = $2
			)`, r[0], r[1])
		if err != nil {
			return fmt.Errorf("relate category %d brand %d: %w", r[0], r[1], err)
		}
	}

	now := time.Now().UTC()
	for _, p := range products {
		var brand any
		if p.brandID != 0 {
			brand = p.brandID
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO products (id, category_id, brand_id, seo_link, code, name_tr, name_en, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING`,
			p.id, p.categoryID, brand, slug.MakeLang(p.tr, "tr"), p.code, p.tr, p.en, now.Add(-p.age))
		if err != nil {
			return fmt.Errorf("insert product %d: %w", p.id, err)
		}

		for i, path := range p.images {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO product_images (product_id, path, position)
				SELECT $1::bigint, $2::text, $3::int
				WHERE NOT EXISTS (SELECT 1 FROM product_images WHERE product_id = $1 AND path = $2)`,
				p.id, path, i+1)
			if err != nil {
				return fmt.Errorf("insert image for product %d: %w", p.id, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, syncSequences); err != nil {
		return fmt.Errorf("sync sequences: %w", err)
	}

	return tx.Commit()
}

package catalog_test

import (
	"fmt"
	"time"

	"katalog/internal/domain/catalog"
	"katalog/internal/domain/catalog/memstore"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func cat(id int64, slug string, parent int64, tr, en string, sort int) catalog.Category {
	c := catalog.Category{
		ID:        id,
		Slug:      slug,
		Name:      catalog.LocalizedString{Primary: tr, Secondary: en},
		IsActive:  true,
		SortOrder: sort,
	}
	if parent != 0 {
		c.ParentID = ptr(parent)
	}
	return c
}

func product(id int64, slug, code, tr, en string, categoryID, brandID int64, created time.Time) catalog.Product {
	p := catalog.Product{
		ID:        id,
		Slug:      slug,
		Code:      code,
		Name:      catalog.LocalizedString{Primary: tr, Secondary: en},
		IsActive:  true,
		CreatedAt: created,
	}
	if categoryID != 0 {
		p.CategoryID = ptr(categoryID)
	}
	if brandID != 0 {
		p.BrandID = ptr(brandID)
	}
	return p
}

// newCatalog builds a small security-equipment catalog:
//
//	1 guvenlik
//	└── 326 cctv-cozumleri
//	    ├── 400 ip-kameralar
//	    ├── 401 analog-kameralar
//	    └── 402 eski-kameralar (inactive)
//	500 ag-urunleri
//	└── 501 switchler
//
// hikvision is related to 400 and 501, dahua to nothing.
func newCatalog() *memstore.Store {
	st := memstore.New()

	inactive := cat(402, "eski-kameralar", 326, "Eski Kameralar", "", 3)
	inactive.IsActive = false

	st.AddCategory(cat(1, "guvenlik", 0, "Güvenlik", "Security", 1)).
		AddCategory(cat(326, "cctv-cozumleri", 1, "CCTV Çözümleri", "CCTV Solutions", 1)).
		AddCategory(cat(400, "ip-kameralar", 326, "IP Kameralar", "IP Cameras", 1)).
		AddCategory(cat(401, "analog-kameralar", 326, "Analog Kameralar", "", 2)).
		AddCategory(inactive).
		AddCategory(cat(500, "ag-urunleri", 0, "Ağ Ürünleri", "Networking", 2)).
		AddCategory(cat(501, "switchler", 500, "Switchler", "Switches", 1))

	st.AddBrand(catalog.Brand{ID: 10, Slug: "hikvision", Title: "Hikvision", IsActive: true}).
		AddBrand(catalog.Brand{ID: 11, Slug: "dahua", Title: "Dahua", IsActive: true}).
		AddBrand(catalog.Brand{ID: 12, Slug: "pasif", Title: "Pasif", IsActive: false})

	st.Relate(400, 10).
		Relate(400, 10).
		Relate(501, 10).
		Relate(401, 12).
		AddRelation(catalog.CategoryBrandRelation{BrandID: ptr(int64(10))})

	ipCam := product(1001, "hikvision-ip-kamera-4mp", "DS-2CD2143", "Hikvision IP Kamera 4MP", "Hikvision IP Camera 4MP", 400, 10, t0.Add(time.Hour))
	ipCam.Images = []*catalog.ProductImage{
		{ID: 2, Path: "/products/a2.jpg", Position: 2},
		{ID: 1, Path: "/products/a1.jpg", Position: 1},
	}
	retired := product(1005, "eski-urun", "OLD-1", "Eski Kamera", "", 400, 10, t0.Add(5*time.Hour))
	retired.IsActive = false

	st.AddProduct(ipCam).
		AddProduct(product(1002, "analog-kamera", "HAC-1200", "Analog Kamera", "Analog Camera", 401, 11, t0.Add(2*time.Hour))).
		AddProduct(product(1003, "poe-switch", "SW-8P", "PoE Switch", "", 501, 10, t0.Add(3*time.Hour))).
		AddProduct(product(1004, "kablo", "CAB-100", "Koaksiyel Kablo", "Coax Cable", 326, 0, t0.Add(4*time.Hour))).
		AddProduct(retired).
		AddProduct(product(1006, "ip-kamera-2mp", "DS-2CD1023", "IP Kamera 2MP", "", 400, 10, t0.Add(time.Hour)))

	return st
}

func newService(st catalog.Store) *catalog.Service {
	return catalog.NewService(st, catalog.Options{})
}

// addChain adds n active categories starting at id first, each the parent of
// the next, and returns the id of the deepest one.
func addChain(st *memstore.Store, first int64, n int) int64 {
	for i := range int64(n) {
		st.AddCategory(cat(first+i, fmt.Sprintf("chain-%d", first+i), parentIn(first, i), "Zincir", "", 1))
	}
	return first + int64(n) - 1
}

func parentIn(first, i int64) int64 {
	if i == 0 {
		return 0
	}
	return first + i - 1
}

var errDown = fmt.Errorf("%w: connection refused", catalog.ErrStoreUnavailable)

func categoryIDs(cs []*catalog.Category) []int64 {
	out := make([]int64, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func cardIDs(cards []*catalog.ProductCard) []int64 {
	out := make([]int64, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

package main

import (
	"encoding/json"
	"fmt"
	"katalog/internal/cache"
	"katalog/internal/domain/catalog"
	"katalog/internal/domain/catalog/memstore"
	"katalog/internal/media"
	"katalog/internal/ratelimiter"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

func newTestStore() *memstore.Store {
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	st := memstore.New()

	st.AddCategory(catalog.Category{ID: 1, Slug: "guvenlik", Name: catalog.LocalizedString{Primary: "Güvenlik", Secondary: "Security"}, IsActive: true, SortOrder: 1}).
		AddCategory(catalog.Category{ID: 326, Slug: "cctv-cozumleri", ParentID: ptr(int64(1)), Name: catalog.LocalizedString{Primary: "CCTV Çözümleri", Secondary: "CCTV Solutions"}, IsActive: true, SortOrder: 1}).
		AddCategory(catalog.Category{ID: 400, Slug: "ip-kameralar", ParentID: ptr(int64(326)), Name: catalog.LocalizedString{Primary: "IP Kameralar"}, IsActive: true, SortOrder: 1, ImagePath: ptr("/images/ip.png")}).
		AddCategory(catalog.Category{ID: 401, Slug: "analog-kameralar", ParentID: ptr(int64(326)), Name: catalog.LocalizedString{Primary: "Analog Kameralar"}, IsActive: true, SortOrder: 2})

	st.AddBrand(catalog.Brand{ID: 10, Slug: "hikvision", Title: "Hikvision", IsActive: true}).
		AddBrand(catalog.Brand{ID: 11, Slug: "dahua", Title: "Dahua", IsActive: true})
	st.Relate(400, 10)

	st.AddProduct(catalog.Product{
		ID: 1001, Slug: "ip-kamera", Code: "DS-1", CategoryID: ptr(int64(400)), BrandID: ptr(int64(10)),
		Name: catalog.LocalizedString{Primary: "IP Kamera", Secondary: "IP Camera"}, IsActive: true, CreatedAt: t0,
		Images: []*catalog.ProductImage{{ID: 1, Path: "/products/1.jpg", Position: 1}},
	}).AddProduct(catalog.Product{
		ID: 1002, Slug: "analog-kamera", Code: "HAC-1", CategoryID: ptr(int64(401)), BrandID: ptr(int64(11)),
		Name: catalog.LocalizedString{Primary: "Analog Kamera"}, IsActive: true, CreatedAt: t0.Add(time.Hour),
	})
	return st
}

func newTestApplication(t *testing.T, st catalog.Store) *application {
	t.Helper()
	return &application{
		config: config{
			env:     "test",
			catalog: catalogConfig{defaultPageSize: 20, defaultLocale: catalog.PrimaryLocale},
			auth:    authConfig{basic: basicConfig{user: "admin", pass: "secret"}},
		},
		logger:  zap.NewNop().Sugar(),
		catalog: catalog.NewService(st, catalog.Options{}),
		cache:   cache.NewMemory(time.Minute),
		images:  media.NewStaticResolver("https://cdn.example.com"),
	}
}

func do(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	return doFrom(t, h, target, "")
}

// doFrom is do with the client address set; empty keeps httptest's default.
func doFrom(t *testing.T, h http.Handler, target, remoteAddr string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("%s: response is not JSON: %v\n%s", target, err, rr.Body.String())
	}
	return rr, body
}

func TestRoutesStatus(t *testing.T) {
	mux := newTestApplication(t, newTestStore()).mount()

	tests := []struct {
		target string
		want   int
	}{
		{"/v1/categories", http.StatusOK},
		{"/v1/categories?parent_id=326&brand=hikvision", http.StatusOK},
		{"/v1/categories?parent_id=-1", http.StatusBadRequest},
		{"/v1/categories?parent_id=abc", http.StatusBadRequest},
		{"/v1/categories/by-seo-link?seo_link=cctv-cozumleri", http.StatusOK},
		{"/v1/categories/by-seo-link?seo_link=yok", http.StatusNotFound},
		{"/v1/categories/by-seo-link", http.StatusBadRequest},
		{"/v1/categories/by-id?id=400", http.StatusOK},
		{"/v1/categories/by-id?id=999", http.StatusNotFound},
		{"/v1/categories/by-id", http.StatusBadRequest},
		{"/v1/brands", http.StatusOK},
		{"/v1/products", http.StatusOK},
		{"/v1/products?page=0", http.StatusBadRequest},
		{"/v1/products?limit=0", http.StatusBadRequest},
		{"/v1/products?limit=101", http.StatusBadRequest},
		{"/v1/products?page=two", http.StatusBadRequest},
		{"/v1/products?seo_link=yok", http.StatusNotFound},
		{"/v1/products?lang=de", http.StatusBadRequest},
		{"/v1/products/by-seo-link?seo_link=ip-kamera", http.StatusOK},
		{"/v1/products/by-seo-link?seo_link=yok", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr, body := do(t, mux, tt.target)
			if rr.Code != tt.want {
				t.Fatalf("status = %d, want %d; body %v", rr.Code, tt.want, body)
			}
			if tt.want >= 400 {
				if body["success"] != false || body["status"] != float64(tt.want) || body["error"] == "" {
					t.Errorf("error body = %v", body)
				}
			}
		})
	}
}

func TestListProductsResponse(t *testing.T) {
	mux := newTestApplication(t, newTestStore()).mount()

	_, body := do(t, mux, "/v1/products?seo_link=cctv-cozumleri&limit=1&lang=en")
	if body["total"] != float64(2) || body["hasMore"] != true || body["currentPage"] != float64(1) {
		t.Fatalf("paging fields = %v", body)
	}
	products := body["products"].([]any)
	if len(products) != 1 {
		t.Fatalf("products = %v", products)
	}
	first := products[0].(map[string]any)
	// newest first; no English name, so the Turkish one is used
	if first["seo_link"] != "analog-kamera" || first["name"] != "Analog Kamera" {
		t.Errorf("first product = %v", first)
	}
	if first["image"] != "https://cdn.example.com"+catalog.DefaultPlaceholderImage {
		t.Errorf("image = %v, want placeholder", first["image"])
	}
	if first["brand"] != "Dahua" {
		t.Errorf("brand = %v", first["brand"])
	}

	_, body = do(t, mux, "/v1/products?seo_link=cctv-cozumleri&brand=dahua")
	if got := body["products"].([]any); len(got) != 0 || body["total"] != float64(0) {
		t.Errorf("brand without relations: %v", body)
	}
}

func TestCategoryBySlugResponse(t *testing.T) {
	mux := newTestApplication(t, newTestStore()).mount()

	_, body := do(t, mux, "/v1/categories/by-seo-link?seo_link=ip-kameralar")
	if body["success"] != true || body["has_children"] != false {
		t.Fatalf("body = %v", body)
	}
	var slugs []any
	for _, c := range body["breadcrumb"].([]any) {
		slugs = append(slugs, c.(map[string]any)["seo_link"])
	}
	if fmt.Sprint(slugs) != "[guvenlik cctv-cozumleri ip-kameralar]" {
		t.Errorf("breadcrumb = %v", slugs)
	}
	cat := body["category"].(map[string]any)
	if cat["img_path"] != "https://cdn.example.com/images/ip.png" {
		t.Errorf("img_path = %v", cat["img_path"])
	}
}

func TestBrandsAreCached(t *testing.T) {
	st := newTestStore()
	mux := newTestApplication(t, st).mount()

	for range 3 {
		rr, body := do(t, mux, "/v1/brands")
		if rr.Code != http.StatusOK || len(body["brands"].([]any)) != 2 {
			t.Fatalf("status %d body %v", rr.Code, body)
		}
	}
	if n := st.CallsTo("ListBrands"); n != 1 {
		t.Errorf("ListBrands calls = %d, want 1", n)
	}
}

func TestStoreFailureIsRetryable(t *testing.T) {
	st := newTestStore()
	st.Fail(fmt.Errorf("%w: dial tcp: connection refused", catalog.ErrStoreUnavailable))
	mux := newTestApplication(t, st).mount()

	rr, body := do(t, mux, "/v1/products")
	if rr.Code != http.StatusInternalServerError || body["retryable"] != true {
		t.Errorf("status %d body %v", rr.Code, body)
	}
}

func TestDataIntegrityIsNotRetryable(t *testing.T) {
	st := newTestStore()
	st.AddCategory(catalog.Category{ID: 700, Slug: "dongu", ParentID: ptr(int64(701)), IsActive: true}).
		AddCategory(catalog.Category{ID: 701, Slug: "dongu-b", ParentID: ptr(int64(700)), IsActive: true})
	mux := newTestApplication(t, st).mount()

	rr, body := do(t, mux, "/v1/categories/by-seo-link?seo_link=dongu")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	if _, ok := body["retryable"]; ok {
		t.Errorf("integrity failure marked retryable: %v", body)
	}
	if body["error"] != "catalog data is inconsistent" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestHealthRequiresBasicAuth(t *testing.T) {
	mux := newTestApplication(t, newTestStore()).mount()

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status without credentials = %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.SetBasicAuth("admin", "secret")
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status with credentials = %d", rr.Code)
	}
}

func TestRateLimiter(t *testing.T) {
	app := newTestApplication(t, newTestStore())
	app.config.rateLimiter = ratelimiter.Config{RequestsPerTimeFrame: 2, TimeFrame: time.Minute, Enabled: true}
	app.rateLimiter = ratelimiter.NewFixedWindowLimiter(2, time.Minute)
	mux := app.mount()

	for i := range 2 {
		if rr, _ := do(t, mux, "/v1/brands"); rr.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i+1, rr.Code)
		}
	}
	rr, _ := do(t, mux, "/v1/brands")
	if rr.Code != http.StatusTooManyRequests || rr.Header().Get("Retry-After") == "" {
		t.Errorf("status = %d, Retry-After = %q", rr.Code, rr.Header().Get("Retry-After"))
	}
}

func TestCategoryNotFoundKeepsCategoryKey(t *testing.T) {
	mux := newTestApplication(t, newTestStore()).mount()

	for _, target := range []string{
		"/v1/categories/by-seo-link?seo_link=yok",
		"/v1/categories/by-id?id=999",
	} {
		t.Run(target, func(t *testing.T) {
			rr, body := do(t, mux, target)
			if rr.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", rr.Code)
			}
			cat, ok := body["category"]
			if !ok {
				t.Fatalf("category key missing: %v", body)
			}
			if cat != nil {
				t.Errorf("category = %v, want null", cat)
			}
			if body["success"] != false {
				t.Errorf("success = %v, want false", body["success"])
			}
			if body["status"] != float64(http.StatusNotFound) {
				t.Errorf("status field = %v", body["status"])
			}
		})
	}
}

func TestRateLimiterKeysOnHost(t *testing.T) {
	app := newTestApplication(t, newTestStore())
	app.config.rateLimiter = ratelimiter.Config{RequestsPerTimeFrame: 1, TimeFrame: time.Minute, Enabled: true}
	app.rateLimiter = ratelimiter.NewFixedWindowLimiter(1, time.Minute)
	mux := app.mount()

	tests := []struct {
		name       string
		remoteAddr string
		want       int
	}{
		{name: "first connection", remoteAddr: "203.0.113.7:50001", want: http.StatusOK},
		{name: "same host new port", remoteAddr: "203.0.113.7:50002", want: http.StatusTooManyRequests},
		{name: "ipv6 host", remoteAddr: "[2001:db8::1]:443", want: http.StatusOK},
		{name: "ipv6 host new port", remoteAddr: "[2001:db8::1]:8443", want: http.StatusTooManyRequests},
		{name: "other host", remoteAddr: "198.51.100.2:50001", want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rr, _ := doFrom(t, mux, "/v1/brands", tt.remoteAddr); rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

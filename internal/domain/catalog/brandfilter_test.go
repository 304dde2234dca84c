package catalog_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"katalog/internal/domain/catalog"
)

func TestCategoriesForBrand(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		slug    string
		want    []int64
		wantErr error
	}{
		{name: "related brand, duplicates and null rows dropped", slug: "hikvision", want: []int64{400, 501}},
		{name: "brand without relations", slug: "dahua", want: []int64{}},
		{name: "unknown brand", slug: "sony", wantErr: catalog.ErrNotFound},
		{name: "inactive brand", slug: "pasif", wantErr: catalog.ErrNotFound},
		{name: "empty slug", slug: "", wantErr: catalog.ErrInvalidArgument},
	}

	svc := newService(newCatalog())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CategoriesForBrand(ctx, tt.slug)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil || !slices.Equal(got, tt.want) {
				t.Errorf("CategoriesForBrand(%q) = %#v, want %v", tt.slug, got, tt.want)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b []int64
		want []int64
	}{
		{name: "overlap", a: []int64{326, 400, 401}, b: []int64{400, 501}, want: []int64{400}},
		{name: "disjoint", a: []int64{326, 400, 401}, b: []int64{501}, want: []int64{}},
		{name: "empty side", a: []int64{326}, b: nil, want: []int64{}},
		{name: "duplicates", a: []int64{5, 5, 3}, b: []int64{3, 5, 5}, want: []int64{3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Intersect(tt.a, tt.b)
			if got == nil || !slices.Equal(got, tt.want) {
				t.Errorf("Intersect(%v, %v) = %#v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

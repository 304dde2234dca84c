package params

import (
	"errors"
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Pagination
		wantErr bool
	}{
		{name: "defaults", query: "", want: Pagination{Limit: 20, Page: 1, Offset: 0}},
		{name: "explicit", query: "page=3&limit=30", want: Pagination{Limit: 30, Page: 3, Offset: 60}},
		{name: "whitespace", query: "page=%202%20&limit=10", want: Pagination{Limit: 10, Page: 2, Offset: 10}},
		{name: "zero page kept for the caller to reject", query: "page=0", want: Pagination{Limit: 20, Page: 0}},
		{name: "large limit is not clamped", query: "limit=500", want: Pagination{Limit: 500, Page: 1}},
		{name: "negative limit kept", query: "limit=-5", want: Pagination{Limit: -5, Page: 1}},
		{name: "non numeric page", query: "page=abc", wantErr: true},
		{name: "non numeric limit", query: "limit=1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			got, err := ParsePagination(q, 20)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("error = %v, want ErrInvalid", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParsePagination(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		query   string
		want    int64
		wantErr bool
	}{
		{query: "", want: 0},
		{query: "parent_id=326", want: 326},
		{query: "parent_id=0", want: 0},
		{query: "parent_id=-1", wantErr: true},
		{query: "parent_id=x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			got, err := ParseID(q, "parent_id", 0)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("error = %v, want ErrInvalid", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseID(%q) = %d, %v; want %d", tt.query, got, err, tt.want)
			}
		})
	}
}

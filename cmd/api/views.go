package main

import (
	"fmt"
	"katalog/internal/domain/catalog"
	"net/http"
	"strings"
)

// locale picks the display locale from ?lang=, falling back to the configured default.
func (app *application) locale(r *http.Request) (string, error) {
	lang := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("lang")))
	if lang == "" {
		return app.config.catalog.defaultLocale, nil
	}
	if !catalog.SupportedLocale(lang) {
		return "", fmt.Errorf("%w: unsupported lang %q", catalog.ErrInvalidArgument, lang)
	}
	return lang, nil
}

type categoryView struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	SeoLink  string  `json:"seo_link"`
	ImgPath  *string `json:"img_path,omitempty"`
	ParentID *int64  `json:"parent_id,omitempty"`
}

func (app *application) categoryView(c *catalog.Category, lang string) categoryView {
	v := categoryView{
		ID:      c.ID,
		Name:    c.Name.In(lang),
		SeoLink: c.Slug,
	}
	if c.ImagePath != nil && *c.ImagePath != "" {
		img := app.images.URL(*c.ImagePath)
		v.ImgPath = &img
	}
	if id, ok := c.Parent(); ok {
		v.ParentID = &id
	}
	return v
}

func (app *application) categoryViews(cs []*catalog.Category, lang string) []categoryView {
	out := make([]categoryView, 0, len(cs))
	for _, c := range cs {
		out = append(out, app.categoryView(c, lang))
	}
	return out
}

type brandView struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	SeoLink string `json:"seo_link"`
}

func brandViews(bs []*catalog.Brand) []brandView {
	out := make([]brandView, 0, len(bs))
	for _, b := range bs {
		out = append(out, brandView{ID: b.ID, Title: b.Title, SeoLink: b.Slug})
	}
	return out
}

type productCardView struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	SeoLink string  `json:"seo_link"`
	Code    string  `json:"code,omitempty"`
	Image   string  `json:"image"`
	Brand   *string `json:"brand,omitempty"`
}

type productDetailView struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	SeoLink string     `json:"seo_link"`
	Code    string     `json:"code,omitempty"`
	Images  []string   `json:"images"`
	Brand   *brandView `json:"brand,omitempty"`
}

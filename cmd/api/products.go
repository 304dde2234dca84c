package main

import (
	"katalog/internal/domain/catalog"
	"katalog/internal/params"
	"net/http"
)

type listProductsResponse struct {
	Products    []productCardView `json:"products"`
	Total       int               `json:"total"`
	HasMore     bool              `json:"hasMore"`
	CurrentPage int               `json:"currentPage"`
}

// listProductsHandler godoc
//
//	@Summary		List products
//	@Description	Newest active products first. query searches names, code and brand title and ignores seo_link.
//	@Tags			products
//	@Produce		json
//	@Param			seo_link	query		string	false	"Category seo_link, includes subcategories"
//	@Param			brand		query		string	false	"Brand seo_link"
//	@Param			query		query		string	false	"Search terms, all must match"
//	@Param			page		query		int		false	"Page number, from 1"
//	@Param			limit		query		int		false	"Page size, 1 to 100"
//	@Param			lang		query		string	false	"tr or en"
//	@Success		200			{object}	listProductsResponse
//	@Failure		400			{object}	errorEnvelope
//	@Failure		404			{object}	errorEnvelope
//	@Failure		500			{object}	errorEnvelope
//	@Router			/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	p, err := params.ParsePagination(q, app.config.catalog.defaultPageSize)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	lang, err := app.locale(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filter := catalog.ProductFilter{
		CategorySlug: q.Get("seo_link"),
		BrandSlug:    q.Get("brand"),
		Query:        q.Get("query"),
	}

	page, err := app.catalog.ListProducts(r.Context(), filter, p.Page, p.Limit)
	if err != nil {
		app.catalogError(w, r, err)
		return
	}

	items := make([]productCardView, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, productCardView{
			ID:      it.ID,
			Name:    it.Name.In(lang),
			SeoLink: it.Slug,
			Code:    it.Code,
			Image:   app.images.URL(it.Image),
			Brand:   it.BrandTitle,
		})
	}

	resp := listProductsResponse{
		Products:    items,
		Total:       page.TotalCount,
		HasMore:     page.HasMore,
		CurrentPage: page.Page,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

type productBySlugResponse struct {
	Success    bool              `json:"success"`
	Product    productDetailView `json:"product"`
	Breadcrumb []categoryView    `json:"breadcrumb"`
}

// getProductBySlugHandler godoc
//
//	@Summary		Get product by seo_link
//	@Description	Product with ordered images, brand and category breadcrumb.
//	@Tags			products
//	@Produce		json
//	@Param			seo_link	query		string	true	"Product seo_link"
//	@Param			lang		query		string	false	"tr or en"
//	@Success		200			{object}	productBySlugResponse
//	@Failure		400			{object}	errorEnvelope
//	@Failure		404			{object}	errorEnvelope
//	@Failure		500			{object}	errorEnvelope
//	@Router			/products/by-seo-link [get]
func (app *application) getProductBySlugHandler(w http.ResponseWriter, r *http.Request) {
	lang, err := app.locale(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	d, err := app.catalog.ProductDetail(r.Context(), r.URL.Query().Get("seo_link"))
	if err != nil {
		app.catalogError(w, r, err)
		return
	}

	images := make([]string, 0, len(d.Product.Images))
	for _, img := range d.Product.Images {
		images = append(images, app.images.URL(img.Path))
	}
	if len(images) == 0 {
		images = append(images, app.images.URL(app.catalog.PlaceholderImage()))
	}

	view := productDetailView{
		ID:      d.Product.ID,
		Name:    d.Product.Name.In(lang),
		SeoLink: d.Product.Slug,
		Code:    d.Product.Code,
		Images:  images,
	}
	if d.Brand != nil {
		view.Brand = &brandView{ID: d.Brand.ID, Title: d.Brand.Title, SeoLink: d.Brand.Slug}
	}

	resp := productBySlugResponse{
		Success:    true,
		Product:    view,
		Breadcrumb: app.categoryViews(d.Breadcrumb, lang),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

package main

import (
	"katalog/internal/cache"
	"katalog/internal/domain/catalog"
	"katalog/internal/params"
	"net/http"
	"strconv"
	"strings"
)

type listCategoriesResponse struct {
	Categories []categoryView `json:"categories"`
}

// listCategoriesHandler godoc
//
//	@Summary		List categories
//	@Description	Active children of parent_id (roots when omitted), optionally limited to categories a brand is sold in.
//	@Tags			categories
//	@Produce		json
//	@Param			parent_id	query		int		false	"Parent category id, 0 for roots"
//	@Param			brand		query		string	false	"Brand seo_link"
//	@Param			lang		query		string	false	"tr or en"
//	@Success		200			{object}	listCategoriesResponse
//	@Failure		400			{object}	errorEnvelope
//	@Failure		500			{object}	errorEnvelope
//	@Router			/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	parentID, err := params.ParseID(q, "parent_id", 0)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	lang, err := app.locale(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	brand := strings.TrimSpace(q.Get("brand"))

	ctx := r.Context()
	key := cache.Key("categories", strconv.FormatInt(parentID, 10), brand)

	var cats []*catalog.Category
	hit, err := app.cache.Get(ctx, key, &cats)
	if err != nil {
		app.logger.Warnw("cache read failed", "key", key, "error", err.Error())
	}
	if !hit {
		cats, err = app.catalog.ListCategories(ctx, parentID, brand)
		if err != nil {
			app.catalogError(w, r, err)
			return
		}
		if err := app.cache.Set(ctx, key, cats); err != nil {
			app.logger.Warnw("cache write failed", "key", key, "error", err.Error())
		}
	}

	resp := listCategoriesResponse{Categories: app.categoryViews(cats, lang)}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

type categoryBySlugResponse struct {
	Success     bool           `json:"success"`
	Category    categoryView   `json:"category"`
	Breadcrumb  []categoryView `json:"breadcrumb"`
	HasChildren bool           `json:"has_children"`
}

// getCategoryBySlugHandler godoc
//
//	@Summary		Get category by seo_link
//	@Description	Returns the category, its breadcrumb (root first) and whether it has active children.
//	@Tags			categories
//	@Produce		json
//	@Param			seo_link	query		string	true	"Category seo_link"
//	@Param			lang		query		string	false	"tr or en"
//	@Success		200			{object}	categoryBySlugResponse
//	@Failure		400			{object}	errorEnvelope
//	@Failure		404			{object}	categoryNotFoundEnvelope
//	@Failure		500			{object}	errorEnvelope
//	@Router			/categories/by-seo-link [get]
func (app *application) getCategoryBySlugHandler(w http.ResponseWriter, r *http.Request) {
	lang, err := app.locale(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()
	cat, err := app.catalog.ResolveCategoryBySlug(ctx, r.URL.Query().Get("seo_link"))
	if err != nil {
		app.categoryLookupError(w, r, err)
		return
	}

	chain, err := app.catalog.BuildAncestorChain(ctx, cat)
	if err != nil {
		app.catalogError(w, r, err)
		return
	}

	hasChildren, err := app.catalog.HasChildren(ctx, cat.ID)
	if err != nil {
		app.catalogError(w, r, err)
		return
	}

	resp := categoryBySlugResponse{
		Success:     true,
		Category:    app.categoryView(cat, lang),
		Breadcrumb:  app.categoryViews(chain, lang),
		HasChildren: hasChildren,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

type categoryByIDResponse struct {
	Success     bool         `json:"success"`
	Category    categoryView `json:"category"`
	HasChildren bool         `json:"has_children"`
}

// getCategoryByIDHandler godoc
//
//	@Summary		Get category by id
//	@Tags			categories
//	@Produce		json
//	@Param			id		query		int		true	"Category id"
//	@Param			lang	query		string	false	"tr or en"
//	@Success		200		{object}	categoryByIDResponse
//	@Failure		400		{object}	errorEnvelope
//	@Failure		404		{object}	categoryNotFoundEnvelope
//	@Failure		500		{object}	errorEnvelope
//	@Router			/categories/by-id [get]
func (app *application) getCategoryByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := params.ParseID(r.URL.Query(), "id", 0)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	lang, err := app.locale(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()
	cat, err := app.catalog.CategoryByID(ctx, id)
	if err != nil {
		app.categoryLookupError(w, r, err)
		return
	}

	hasChildren, err := app.catalog.HasChildren(ctx, cat.ID)
	if err != nil {
		app.catalogError(w, r, err)
		return
	}

	resp := categoryByIDResponse{
		Success:     true,
		Category:    app.categoryView(cat, lang),
		HasChildren: hasChildren,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

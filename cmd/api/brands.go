package main

import (
	"katalog/internal/cache"
	"katalog/internal/domain/catalog"
	"net/http"
)

type listBrandsResponse struct {
	Brands []brandView `json:"brands"`
}

// listBrandsHandler godoc
//
//	@Summary		List brands
//	@Description	Active brands ordered by title.
//	@Tags			brands
//	@Produce		json
//	@Success		200	{object}	listBrandsResponse
//	@Failure		500	{object}	errorEnvelope
//	@Router			/brands [get]
func (app *application) listBrandsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := cache.Key("brands")

	var brands []*catalog.Brand
	hit, err := app.cache.Get(ctx, key, &brands)
	if err != nil {
		app.logger.Warnw("cache read failed", "key", key, "error", err.Error())
	}
	if !hit {
		brands, err = app.catalog.ListBrands(ctx)
		if err != nil {
			app.catalogError(w, r, err)
			return
		}
		if err := app.cache.Set(ctx, key, brands); err != nil {
			app.logger.Warnw("cache write failed", "key", key, "error", err.Error())
		}
	}

	if err := writeJSON(w, http.StatusOK, listBrandsResponse{Brands: brandViews(brands)}); err != nil {
		app.internalServerError(w, r, err)
	}
}

package main

import (
	"errors"
	"katalog/internal/domain/catalog"
	"katalog/internal/params"
	"net/http"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusNotFound, "not found")
}

// categoryNotFoundEnvelope keeps the category key present, as null, on a miss.
type categoryNotFoundEnvelope struct {
	errorEnvelope
	Category *categoryView `json:"category"`
}

func (app *application) categoryNotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("category not found", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSON(w, http.StatusNotFound, &categoryNotFoundEnvelope{
		errorEnvelope: errorEnvelope{
			Success: false,
			Error:   "category not found",
			Status:  http.StatusNotFound,
		},
	})
}

// categoryLookupError is catalogError for the single-category endpoints.
func (app *application) categoryLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		app.categoryNotFoundResponse(w, r, err)
		return
	}
	app.catalogError(w, r, err)
}

func (app *application) storeUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("catalog store unavailable", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSON(w, http.StatusInternalServerError, &errorEnvelope{
		Success:   false,
		Error:     "catalog is temporarily unavailable",
		Status:    http.StatusInternalServerError,
		Retryable: true,
	})
}

func (app *application) dataIntegrityResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("category hierarchy integrity violation", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "catalog data is inconsistent")
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)

	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter)
}

// catalogError answers with the status that matches the catalog error kind.
func (app *application) catalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidArgument), errors.Is(err, params.ErrInvalid):
		app.badRequestResponse(w, r, err)
	case errors.Is(err, catalog.ErrNotFound):
		app.notFoundResponse(w, r, err)
	case errors.Is(err, catalog.ErrDataIntegrity):
		app.dataIntegrityResponse(w, r, err)
	case errors.Is(err, catalog.ErrStoreUnavailable):
		app.storeUnavailableResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}

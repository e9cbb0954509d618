package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hearthealth/heart-health-api/internal/api/shared"
	"github.com/hearthealth/heart-health-api/internal/domain"
	"github.com/hearthealth/heart-health-api/internal/platform/logger"
	"github.com/hearthealth/heart-health-api/internal/store"
)

// CatalogHandler serves one of the three content collections (diagnostic
// tests, doctors, blog posts). They share the same CRUD subset (list,
// get, insert, delete) with no update-in-place operation, so one handler
// is mounted three times with different stores.
type CatalogHandler struct {
	catalog  store.CatalogStore
	resource string // for logs only
}

// NewCatalogHandler creates a handler for the named resource backed by the
// given store.
func NewCatalogHandler(catalog store.CatalogStore, resource string) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, resource: resource}
}

// List handles GET on the collection root.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.catalog.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// Get handles GET /{id}. An absent document yields a 200 with a null body.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, doc)
}

// Create handles POST on the collection root. The document is stored
// as-is; the store assigns the surrogate identifier.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var doc domain.Document
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := h.catalog.Insert(r.Context(), doc)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("inserted document", "resource", h.resource, "inserted_id", res.InsertedID)
	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

// Delete handles DELETE /{id}. Deleting an absent id succeeds with a
// zero-effect acknowledgment.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.catalog.DeleteByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

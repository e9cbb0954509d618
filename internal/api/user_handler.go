package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hearthealth/heart-health-api/internal/api/shared"
	"github.com/hearthealth/heart-health-api/internal/domain"
	"github.com/hearthealth/heart-health-api/internal/platform/logger"
	"github.com/hearthealth/heart-health-api/internal/store"
)

// UserHandler handles the /users endpoints. Users are keyed by email and
// follow create-only semantics: PUT inserts when absent and is a no-op
// when the user already exists.
type UserHandler struct {
	users store.UserStore
}

// NewUserHandler creates a new UserHandler with the given store.
func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.users.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// Get handles GET /users/{email}. An absent user is a valid empty result:
// the response is a 200 with a null body, never a 404.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	doc, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, doc)
}

// Put handles PUT /users/{email}: create-if-absent. When the user already
// exists the stored document is returned unchanged regardless of the
// incoming payload; repeat sign-in is deliberately not a profile refresh.
func (h *UserHandler) Put(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	email := chi.URLParam(r, "email")

	var doc domain.Document
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	existing, created, err := h.users.UpsertIfAbsent(r.Context(), email, doc)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if existing != nil {
		log.Debug("user already exists, sign-in is a no-op", "email", email)
		shared.RespondWithJSON(w, r, http.StatusOK, existing)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, created)
}

// Delete handles DELETE /users/{email}. Deleting an absent user succeeds
// with a zero-effect acknowledgment.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	res, err := h.users.DeleteByEmail(r.Context(), email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hearthealth/heart-health-api/internal/api/shared"
	"github.com/hearthealth/heart-health-api/internal/domain"
	"github.com/hearthealth/heart-health-api/internal/store"
)

// AppointmentHandler handles the booking endpoints. Appointments correlate
// to users through the soft user_email field; nothing enforces that the
// referenced user exists.
type AppointmentHandler struct {
	appointments store.AppointmentStore
}

// NewAppointmentHandler creates a new AppointmentHandler with the given store.
func NewAppointmentHandler(appointments store.AppointmentStore) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

// List handles GET /appoint: every appointment, unfiltered.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.appointments.List(r.Context(), "")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// ListByEmail handles GET /appoint/{email}: appointments whose user_email
// matches the path parameter. An unknown email yields an empty list.
func (h *AppointmentHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	docs, err := h.appointments.List(r.Context(), email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// Create handles POST /appoint.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc domain.Document
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := h.appointments.Insert(r.Context(), doc)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

// Delete handles DELETE /appoints/{id}.
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.appointments.DeleteByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

package api

import (
	"net/http"

	"github.com/hearthealth/heart-health-api/internal/api/shared"
	"github.com/hearthealth/heart-health-api/internal/platform/logger"
	"github.com/hearthealth/heart-health-api/internal/service/payment"
)

// PaymentHandler handles POST /create-payment-intent.
type PaymentHandler struct {
	intents payment.IntentCreator
}

// NewPaymentHandler creates a new PaymentHandler with the given gateway.
func NewPaymentHandler(intents payment.IntentCreator) *PaymentHandler {
	return &PaymentHandler{intents: intents}
}

// CreateIntent converts the requested price to minor units (truncating)
// and asks the processor for a card-payable intent.
//
// A zero, missing or negative price produces no response body at all: the
// handler returns without writing, which the transport surfaces as an
// empty 200. This is the deployed contract's behavior, kept deliberately;
// the dropped request is debug-logged so operators can see it.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PaymentIntentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	amount := int64(req.Price * 100)
	if req.Price == 0 || amount < 1 {
		log.Debug("dropping payment intent request with non-positive amount",
			"price", req.Price,
			"amount_cents", amount)
		return
	}

	clientSecret, err := h.intents.CreateIntent(r.Context(), amount)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PaymentIntentResponse{ClientSecret: clientSecret})
}

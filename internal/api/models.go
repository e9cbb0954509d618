package api

// SuccessResponse is the body returned by the session endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// PaymentIntentRequest is the body of POST /create-payment-intent. Price
// is a decimal amount in major currency units (US dollars).
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// PaymentIntentResponse carries the processor's client-side secret used to
// complete the payment in the browser.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

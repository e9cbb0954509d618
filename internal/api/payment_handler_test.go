package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntent(t *testing.T) {
	t.Parallel()

	t.Run("converts price to cents and returns client secret", func(t *testing.T) {
		t.Parallel()
		intents := &fakeIntentCreator{clientSecret: "pi_123_secret_456"}
		handler := NewPaymentHandler(intents)

		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":49.99}`))
		rec := httptest.NewRecorder()
		handler.CreateIntent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"clientSecret":"pi_123_secret_456"}`, rec.Body.String())
		// 49.99 dollars is 4999 cents, truncated not rounded.
		assert.Equal(t, int64(4999), intents.gotAmount)
	})

	t.Run("processor failure is a generic 500", func(t *testing.T) {
		t.Parallel()
		intents := &fakeIntentCreator{err: errors.New("invalid api key")}
		handler := NewPaymentHandler(intents)

		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":10}`))
		rec := httptest.NewRecorder()
		handler.CreateIntent(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "invalid api key")
	})
}

// A non-positive price produces no response body at all: the handler
// returns before writing anything and never reaches the processor. This
// mirrors the deployed contract.
func TestCreateIntentDropsNonPositiveAmounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "zero price", body: `{"price":0}`},
		{name: "null price", body: `{"price":null}`},
		{name: "missing price", body: `{}`},
		{name: "negative price", body: `{"price":-5}`},
		{name: "sub-cent price", body: `{"price":0.001}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			intents := &fakeIntentCreator{clientSecret: "pi_123_secret_456"}
			handler := NewPaymentHandler(intents)

			req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.CreateIntent(rec, req)

			assert.Empty(t, rec.Body.String())
			assert.False(t, intents.called, "processor must not be reached")
		})
	}
}

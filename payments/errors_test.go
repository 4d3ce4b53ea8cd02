package payments

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v80"
)

func TestCategorizeError_APIError(t *testing.T) {
	message := CategorizeError(&stripe.Error{Type: stripe.ErrorTypeAPI, Msg: "internal"})
	assert.Equal(t, "Stripe API-Fehler. Bitte kontaktieren Sie den Support.", message)
}

func TestCategorizeError_AuthenticationError(t *testing.T) {
	message := CategorizeError(&stripe.Error{
		Type:           stripe.ErrorTypeInvalidRequest,
		HTTPStatusCode: 401,
		Msg:            "Invalid API Key provided",
	})
	assert.Equal(t, "Authentifizierungsproblem mit Stripe. Bitte kontaktieren Sie den Support.", message)
}

func TestCategorizeError_InvalidRequestSubCases(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{
			name: "bad url",
			msg:  "Not a valid URL: foo",
			want: "Produktdaten enthalten ungültige URLs. Bitte prüfen Sie die Produktdaten.",
		},
		{
			name: "bad payment method",
			msg:  "The payment method type provided: klarna is invalid",
			want: "Eine oder mehrere Zahlungsmethoden sind nicht aktiviert. Die verfügbaren Methoden werden jetzt automatisch erkannt.",
		},
		{
			name: "generic",
			msg:  "Missing required param: line_items",
			want: "Ungültige Anfrage an Stripe: Missing required param: line_items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := CategorizeError(&stripe.Error{Type: stripe.ErrorTypeInvalidRequest, Msg: tt.msg})
			assert.Equal(t, tt.want, message)
		})
	}
}

func TestCategorizeError_Connectivity(t *testing.T) {
	netErr := &url.Error{Op: "Post", URL: "https://api.stripe.com/v1/checkout/sessions", Err: errors.New("connection refused")}
	message := CategorizeError(netErr)
	assert.Equal(t, "Verbindungsproblem mit Stripe. Bitte versuchen Sie es später erneut.", message)
}

func TestCategorizeError_PlainError(t *testing.T) {
	message := CategorizeError(errors.New("stripe hat keine gültige Redirect-URL zurückgegeben"))
	assert.Equal(t, "stripe hat keine gültige Redirect-URL zurückgegeben", message)
}

package payments

import (
	"errors"
	"net/url"
	"strings"

	"github.com/stripe/stripe-go/v80"
)

// CategorizeError maps a failed session creation to the message shown on
// the checkout page. The raw error is logged server-side by the caller;
// the shopper only ever sees one of these categories.
func CategorizeError(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode == 401 {
			return "Authentifizierungsproblem mit Stripe. Bitte kontaktieren Sie den Support."
		}
		switch stripeErr.Type {
		case stripe.ErrorTypeAPI:
			return "Stripe API-Fehler. Bitte kontaktieren Sie den Support."
		case stripe.ErrorTypeInvalidRequest:
			if strings.Contains(stripeErr.Msg, "Not a valid URL") {
				return "Produktdaten enthalten ungültige URLs. Bitte prüfen Sie die Produktdaten."
			}
			if strings.Contains(stripeErr.Msg, "payment method type") {
				return "Eine oder mehrere Zahlungsmethoden sind nicht aktiviert. Die verfügbaren Methoden werden jetzt automatisch erkannt."
			}
			return "Ungültige Anfrage an Stripe: " + stripeErr.Msg
		default:
			return "Stripe-Fehler: " + stripeErr.Msg
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return "Verbindungsproblem mit Stripe. Bitte versuchen Sie es später erneut."
	}

	if err != nil {
		return err.Error()
	}
	return "Unbekannter Fehler bei der Checkout-Verarbeitung"
}

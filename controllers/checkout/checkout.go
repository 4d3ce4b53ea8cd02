package checkoutControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stas75687876/verceldingsdabumsda/payments"
)

// CreateCheckoutSession handles POST /api/checkout: validates the cart and
// customer data, negotiates payment methods and returns the hosted payment
// URL for the browser redirect.
func CreateCheckoutSession(orchestrator *payments.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payments.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ungültiger Request-Body: " + err.Error()})
			return
		}

		sess, err := orchestrator.CreateSession(req)
		if err != nil {
			var validationErr payments.ValidationError
			if errors.As(err, &validationErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
				return
			}

			// Full detail stays in the server log; the shopper only sees
			// the categorized message.
			log.Printf("❌ Stripe Checkout Fehler: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Fehler bei der Checkout-Verarbeitung: " + payments.CategorizeError(err),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": sess.URL, "sessionId": sess.ID})
	}
}

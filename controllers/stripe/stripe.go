package stripeControllers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Stas75687876/verceldingsdabumsda/payments"
)

// AvailablePaymentMethods handles GET /api/stripe/available-payment-methods.
// On upstream failure the response still carries card so the checkout page
// always has a payable path.
func AvailablePaymentMethods(fetcher payments.AccountFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := fetcher.Fetch()
		if err != nil {
			log.Printf("⚠️ Stripe-Konto nicht erreichbar: %v", err)
			c.JSON(http.StatusOK, gin.H{
				"availablePaymentMethods": []string{"card"},
				"accountCurrency":         payments.DefaultCurrency,
				"error":                   err.Error(),
			})
			return
		}

		methods := payments.ResolveMethods(info.Capabilities, payments.DefaultCurrency)
		log.Printf("Verfügbare Zahlungsmethoden (EUR-kompatibel): %v", methods)

		c.JSON(http.StatusOK, gin.H{
			"availablePaymentMethods": methods,
			"accountCurrency":         payments.DefaultCurrency,
			"accountCountry":          info.Country,
			"accountName":             info.BusinessName,
		})
	}
}

// Check handles GET /api/stripe/check, a diagnostics endpoint for the admin
// settings screen: reports key configuration and account reachability.
func Check(fetcher payments.AccountFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyConfigured := os.Getenv("STRIPE_SECRET_KEY") != ""
		webhookConfigured := os.Getenv("STRIPE_WEBHOOK_SECRET") != ""

		if !keyConfigured {
			c.JSON(http.StatusOK, gin.H{
				"stripeKeyConfigured":     false,
				"webhookSecretConfigured": webhookConfigured,
				"accountReachable":        false,
			})
			return
		}

		info, err := fetcher.Fetch()
		if err != nil {
			c.JSON(http.StatusOK, gin.H{
				"stripeKeyConfigured":     true,
				"webhookSecretConfigured": webhookConfigured,
				"accountReachable":        false,
				"error":                   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"stripeKeyConfigured":     true,
			"webhookSecretConfigured": webhookConfigured,
			"accountReachable":        true,
			"accountName":             info.BusinessName,
			"accountCountry":          info.Country,
		})
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	checkoutControllers "github.com/Stas75687876/verceldingsdabumsda/controllers/checkout"
	stripeControllers "github.com/Stas75687876/verceldingsdabumsda/controllers/stripe"
	webhookControllers "github.com/Stas75687876/verceldingsdabumsda/controllers/webhook"
	"github.com/Stas75687876/verceldingsdabumsda/payments"
)

func SetupCheckoutRoutes(r *gin.Engine, db *gorm.DB, orchestrator *payments.Orchestrator, accounts payments.AccountFetcher) {
	r.POST("/api/checkout", checkoutControllers.CreateCheckoutSession(orchestrator))

	stripeGroup := r.Group("/api/stripe")
	{
		stripeGroup.GET("/available-payment-methods", stripeControllers.AvailablePaymentMethods(accounts))
		stripeGroup.GET("/check", stripeControllers.Check(accounts))
	}

	// Stripe calls back here; the handler verifies the signature itself.
	r.POST("/api/webhook", webhookControllers.HandleStripeWebhook(db))
}

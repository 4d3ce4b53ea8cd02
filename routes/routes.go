package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Stas75687876/verceldingsdabumsda/cart"
	"github.com/Stas75687876/verceldingsdabumsda/payments"
)

// SetupRoutes is the single entry-point that wires up the public shop,
// checkout, webhook and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cartStorage cart.Storage) {
	accounts := payments.StripeAccountFetcher{}
	orchestrator := payments.NewOrchestrator()

	// Public auth route (no middleware)
	SetupAuthRoutes(r)

	// Shop surface: products, cart, contact
	SetupShopRoutes(r, db, cartStorage)

	// Checkout, payment-method discovery and the Stripe webhook
	SetupCheckoutRoutes(r, db, orchestrator, accounts)

	// Order CRUD and the admin back-office extras
	SetupOrderRoutes(r, db)
}

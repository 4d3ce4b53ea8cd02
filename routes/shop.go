package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Stas75687876/verceldingsdabumsda/cart"
	cartControllers "github.com/Stas75687876/verceldingsdabumsda/controllers/cart"
	contactControllers "github.com/Stas75687876/verceldingsdabumsda/controllers/contact"
	productControllers "github.com/Stas75687876/verceldingsdabumsda/controllers/product"
	"github.com/Stas75687876/verceldingsdabumsda/middleware"
)

func SetupShopRoutes(r *gin.Engine, db *gorm.DB, cartStorage cart.Storage) {
	products := r.Group("/api/products")
	{
		products.GET("", productControllers.ListProducts(db))
		products.GET("/:id", productControllers.GetProduct(db))

		// Mutations are reserved for the back office
		products.POST("", middleware.ValidateToken, middleware.RequireAdmin, productControllers.CreateProduct(db))
		products.PUT("/:id", middleware.ValidateToken, middleware.RequireAdmin, productControllers.UpdateProduct(db))
		products.DELETE("/:id", middleware.ValidateToken, middleware.RequireAdmin, productControllers.DeleteProduct(db))
	}

	cartGroup := r.Group("/api/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(cartStorage))
		cartGroup.POST("", cartControllers.AddCartItem(cartStorage))
		cartGroup.PUT("", cartControllers.UpdateCartItem(cartStorage))
		cartGroup.DELETE("", cartControllers.ClearCart(cartStorage))
		cartGroup.DELETE("/:product_id", cartControllers.RemoveCartItem(cartStorage))
	}

	r.POST("/api/contact", contactControllers.HandleContactForm())
}

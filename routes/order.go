package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Stas75687876/verceldingsdabumsda/controllers/order"
	"github.com/Stas75687876/verceldingsdabumsda/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/api/orders")
	{
		// Create a new order (checkout flow, before the payment redirect)
		orders.POST("", orderControllers.CreateOrder(db))

		// Back-office surface
		admin := orders.Group("", middleware.ValidateToken, middleware.RequireAdmin)
		{
			admin.GET("", orderControllers.ListOrders(db))
			admin.GET("/export", orderControllers.ExportOrdersToExcel(db))
			admin.GET("/:id", orderControllers.GetOrder(db))
			admin.PUT("/:id", orderControllers.UpdateOrder(db))
			admin.DELETE("/:id", orderControllers.DeleteOrder(db))
		}

		// websocket endpoint for real-time order updates in the admin panel
		orders.GET("/ws", orderControllers.OrderFeedHandler)
	}
}

package cartControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stas75687876/verceldingsdabumsda/cart"
)

type CartItemInput struct {
	ID          string  `json:"id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
}

type QuantityInput struct {
	ID       string `json:"id" binding:"required"`
	Quantity int    `json:"quantity"`
}

func cartResponse(store *cart.Store) gin.H {
	items := store.Items()
	if items == nil {
		items = []cart.Item{}
	}
	return gin.H{
		"items":      items,
		"totalItems": store.TotalItems(),
		"totalPrice": store.TotalPrice(),
	}
}

// loadGuestCart restores the guest's cart from storage. A corrupt or missing
// blob silently yields an empty cart.
func loadGuestCart(c *gin.Context, storage cart.Storage) (string, *cart.Store, bool) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return "", nil, false
	}
	return guestID, cart.LoadStore(c.Request.Context(), storage, guestID), true
}

func saveGuestCart(c *gin.Context, storage cart.Storage, guestID string, store *cart.Store) bool {
	if err := storage.Save(c.Request.Context(), guestID, store.Items()); err != nil {
		log.Printf("❌ Warenkorb konnte nicht gespeichert werden (guest %s): %v", guestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return false
	}
	return true
}

// GET /api/cart
func GetCart(storage cart.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, store, ok := loadGuestCart(c, storage)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// POST /api/cart
func AddCartItem(storage cart.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, store, ok := loadGuestCart(c, storage)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store.AddItem(cart.Item{
			ID:          input.ID,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Quantity:    input.Quantity,
			Image:       input.Image,
		})
		if !saveGuestCart(c, storage, guestID, store) {
			return
		}
		c.JSON(http.StatusCreated, cartResponse(store))
	}
}

// PUT /api/cart
func UpdateCartItem(storage cart.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, store, ok := loadGuestCart(c, storage)
		if !ok {
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Quantity <= 0 removes the item.
		store.UpdateQuantity(input.ID, input.Quantity)
		if !saveGuestCart(c, storage, guestID, store) {
			return
		}
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// DELETE /api/cart/:product_id
func RemoveCartItem(storage cart.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, store, ok := loadGuestCart(c, storage)
		if !ok {
			return
		}

		store.RemoveItem(c.Param("product_id"))
		if !saveGuestCart(c, storage, guestID, store) {
			return
		}
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// DELETE /api/cart
func ClearCart(storage cart.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, store, ok := loadGuestCart(c, storage)
		if !ok {
			return
		}

		store.Clear()
		if err := storage.Delete(c.Request.Context(), guestID); err != nil {
			log.Printf("❌ Warenkorb konnte nicht geleert werden (guest %s): %v", guestID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Stas75687876/verceldingsdabumsda/models"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint    `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"min=0"`
}

type CreateOrderRequest struct {
	CustomerName  string           `json:"customerName" binding:"required"`
	CustomerEmail string           `json:"customerEmail" binding:"required,email"`
	Items         []OrderItemInput `json:"items" binding:"required"`
	Total         *float64         `json:"total" binding:"required"`
	Status        string           `json:"status"`
	Notes         string           `json:"notes"`
}

type UpdateOrderRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// -------- Helpers --------

// mapOrderStatus maps a status string to the workflow enum. Any known status
// may be set from any other; only unknown strings are rejected.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusInProgress):
		return models.OrderStatusInProgress, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// generateOrderID builds a sortable, unique order reference.
// Example: 20250908130500-6fa4…
func generateOrderID() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Handlers --------

// GET /api/orders
func ListOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Abrufen der Bestellungen"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// POST /api/orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Alle erforderlichen Felder müssen angegeben werden"})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Alle erforderlichen Felder müssen angegeben werden"})
			return
		}

		status := models.OrderStatusPending
		if req.Status != "" {
			mapped, err := mapOrderStatus(req.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Ungültiger Bestellstatus"})
				return
			}
			status = mapped
		}

		order := models.Order{
			ID:            generateOrderID(),
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			TotalAmount:   *req.Total,
			Status:        status,
			PaymentStatus: models.PaymentStatusPending,
			Notes:         req.Notes,
		}
		for _, item := range req.Items {
			order.Items = append(order.Items, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Erstellen der Bestellung"})
			return
		}

		BroadcastOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders/:id
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Bestellung nicht gefunden"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Abrufen der Bestellung"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/:id
func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil || (req.Status == "" && req.PaymentStatus == "") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status ist erforderlich"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Bestellung nicht gefunden"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Abrufen der Bestellung"})
			}
			return
		}

		if req.Status != "" {
			status, err := mapOrderStatus(req.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Ungültiger Bestellstatus"})
				return
			}
			order.Status = status
		}
		if req.PaymentStatus != "" {
			paymentStatus, err := mapPaymentStatus(req.PaymentStatus)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Ungültiger Zahlungsstatus"})
				return
			}
			order.PaymentStatus = paymentStatus
		}

		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Aktualisieren der Bestellung"})
			return
		}

		BroadcastOrder(order)
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /api/orders/:id
// Items and order are removed in one transaction so a partial failure can
// never leave orphaned line items behind.
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Bestellung nicht gefunden"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Abrufen der Bestellung"})
			}
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Löschen der Bestellung"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Bestellung erfolgreich gelöscht"})
	}
}

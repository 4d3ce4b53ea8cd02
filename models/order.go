package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order workflow statuses. Transitions are not enforced: the back office
	// may set any status from any status.
	OrderStatusPending    OrderStatus = "pending"     // Bestellung eingegangen
	OrderStatusInProgress OrderStatus = "in_progress" // Projekt in Bearbeitung
	OrderStatusCompleted  OrderStatus = "completed"   // Projekt abgeschlossen
	OrderStatusCancelled  OrderStatus = "cancelled"   // Bestellung storniert

	// Payment statuses, driven by the Stripe webhook.
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Order struct {
	ID            string        `gorm:"primaryKey;type:VARCHAR(64)" json:"id"`
	CustomerName  string        `gorm:"not null" json:"customerName"`
	CustomerEmail string        `gorm:"not null" json:"customerEmail"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64       `json:"totalAmount"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"paymentStatus"`
	Notes         string        `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   string  `gorm:"index;type:VARCHAR(64)" json:"orderId"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

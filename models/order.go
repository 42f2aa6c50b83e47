package models

import "time"

// Order is the record kept for every checkout that was handed off to
// WhatsApp. The cart itself is not cleared by a handoff; the order is a
// history entry, not a fulfillment state machine.
type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	OrderRef     string      `gorm:"uniqueIndex" json:"order_ref"`
	ClientName   string      `json:"client_name"`
	City         string      `json:"city"`
	Subtotal     float64     `json:"subtotal"`
	ShippingCost float64     `json:"shipping_cost"`
	TotalAmount  float64     `json:"total_amount"`
	WhatsAppURL  string      `json:"whatsapp_url"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

package usecase

import "time"

// Published to RabbitMQ when a checkout succeeds.
type OrderCreatedMsg struct {
	OrderID       string    `json:"orderId"`
	Number        string    `json:"orderNumber"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	Units         int       `json:"units"`
	GrandTotal    int64     `json:"grandTotal"`
	Currency      string    `json:"currency"`
	PlacedAt      time.Time `json:"placedAt"`
}

// Sent by the fulfillment pipeline on Kafka when a courier scan moves an
// order forward.
type OrderStatusChangedMsg struct {
	OrderID    string `json:"orderId"`
	Number     string `json:"orderNumber"`
	Status     string `json:"status"` // courier pipeline status, e.g. "DELIVERED"
	Courier    string `json:"courier,omitempty"`
	TrackingID string `json:"trackingId,omitempty"`
}

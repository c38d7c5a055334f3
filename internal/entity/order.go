package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
	StatusReturned  Status = "returned"
)

var ErrUnknownStatus = errors.New("unknown order status")

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled, StatusReturned:
		return Status(s), nil
	}
	return "", ErrUnknownStatus
}

type DeliveryLocation string

const (
	DeliverDhaka   DeliveryLocation = "dhaka"
	DeliverOutside DeliveryLocation = "outside"
)

var ErrUnknownLocation = errors.New("unknown delivery location")

func ParseDeliveryLocation(s string) (DeliveryLocation, error) {
	switch DeliveryLocation(s) {
	case DeliverDhaka, DeliverOutside:
		return DeliveryLocation(s), nil
	}
	return "", ErrUnknownLocation
}

// Charge is the fixed delivery tariff: 100 inside Dhaka, 150 elsewhere.
func (d DeliveryLocation) Charge() Money {
	if d == DeliverDhaka {
		return Taka(100)
	}
	return Taka(150)
}

// PaymentCashOnDelivery is the only supported payment method.
const PaymentCashOnDelivery = "Cash on Delivery"

// Order is the immutable snapshot of cart + address + computed totals taken
// at submission. Only Status and the tracking fields move afterwards, and
// those transitions belong to the fulfillment side.
type Order struct {
	ID               string           `json:"id"`
	Number           string           `json:"orderNumber"`
	Customer         DeliveryAddress  `json:"customerInfo"`
	Items            []CartLine       `json:"items"`
	DeliveryLocation DeliveryLocation `json:"deliveryLocation"`
	Subtotal         Money            `json:"subtotal"`
	DeliveryCharge   Money            `json:"deliveryCharge"`
	GrandTotal       Money            `json:"grandTotal"`
	PaymentMethod    string           `json:"paymentMethod"`
	Status           Status           `json:"status"`
	Courier          string           `json:"courier,omitempty"`
	TrackingID       string           `json:"trackingId,omitempty"`
	PlacedAt         time.Time        `json:"orderDate"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// NewOrderNumber builds a collision-resistant display number from the
// submission timestamp plus a random suffix.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("AMA-%d-%04d", now.UnixMilli(), rand.Intn(10000))
}

package usecase_test

import (
	"testing"
	"time"

	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID:     "o1",
		Number: "AMA-1754042400000-0042",
		Customer: domain.DeliveryAddress{
			Name:        "Rahim Uddin",
			Phone:       "01712345678",
			District:    "Dhaka",
			SubDistrict: "Mirpur",
			HouseNumber: "12/B",
			Street:      "Kazi Para Road",
		},
		Items: []domain.CartLine{
			{
				Product:   domain.ProductRef{ID: "p1", Name: "Premium T-Shirt", Price: domain.Taka(500)},
				Quantity:  2,
				ColorName: "Black",
			},
			{
				Product:  domain.ProductRef{ID: "p2", Name: "Ceramic Mug", Price: domain.Taka(250)},
				Quantity: 1,
			},
		},
		DeliveryLocation: domain.DeliverDhaka,
		Subtotal:         domain.Taka(1250),
		DeliveryCharge:   domain.Taka(100),
		GrandTotal:       domain.Taka(1350),
		PaymentMethod:    domain.PaymentCashOnDelivery,
		Status:           domain.StatusPending,
		PlacedAt:         time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestBuildInvoice(t *testing.T) {
	inv := usecase.BuildInvoice(sampleOrder())

	assert.Equal(t, "AMA-1754042400000-0042", inv.OrderNumber)
	assert.Equal(t, "2026-08-01 10:00", inv.IssuedAt)
	assert.Equal(t, "Rahim Uddin", inv.BillTo.Name)
	assert.Equal(t, "12/B, Kazi Para Road, Mirpur, Dhaka", inv.BillTo.Address)

	require.Len(t, inv.Lines, 2)
	assert.Equal(t, domain.Taka(1000), inv.Lines[0].LineTotal)
	assert.Equal(t, "Black", inv.Lines[0].Color)
	assert.Empty(t, inv.Lines[1].Color)
	assert.Equal(t, domain.Taka(1350), inv.GrandTotal)
}

func TestInvoiceTextRender(t *testing.T) {
	text := usecase.BuildInvoice(sampleOrder()).Text()

	assert.Contains(t, text, "Invoice AMA-1754042400000-0042")
	assert.Contains(t, text, "Premium T-Shirt (Black)")
	assert.Contains(t, text, "Grand total:")
	assert.Contains(t, text, "1350 BDT")
	assert.Contains(t, text, domain.PaymentCashOnDelivery)
}

func TestBuildInvoiceSkipsStreetWhenAbsent(t *testing.T) {
	o := sampleOrder()
	o.Customer.Street = ""

	inv := usecase.BuildInvoice(o)
	assert.Equal(t, "12/B, Mirpur, Dhaka", inv.BillTo.Address)
}

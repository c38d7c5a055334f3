package usecase

import (
	"fmt"
	"strings"

	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
)

// Invoice is a pure projection of a submitted order. It carries no state of
// its own and never mutates the order it was built from.
type Invoice struct {
	OrderNumber    string        `json:"orderNumber"`
	IssuedAt       string        `json:"issuedAt"`
	BillTo         BillingBlock  `json:"billTo"`
	Lines          []InvoiceLine `json:"lines"`
	Subtotal       domain.Money  `json:"subtotal"`
	DeliveryCharge domain.Money  `json:"deliveryCharge"`
	GrandTotal     domain.Money  `json:"grandTotal"`
	PaymentMethod  string        `json:"paymentMethod"`
	Status         domain.Status `json:"status"`
}

type BillingBlock struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type InvoiceLine struct {
	Product   string       `json:"product"`
	Color     string       `json:"color,omitempty"`
	Quantity  int          `json:"quantity"`
	UnitPrice domain.Money `json:"unitPrice"`
	LineTotal domain.Money `json:"lineTotal"`
}

func BuildInvoice(o *domain.Order) Invoice {
	inv := Invoice{
		OrderNumber: o.Number,
		IssuedAt:    o.PlacedAt.Format("2006-01-02 15:04"),
		BillTo: BillingBlock{
			Name:    o.Customer.Name,
			Phone:   o.Customer.Phone,
			Address: formatAddress(o.Customer),
		},
		Subtotal:       o.Subtotal,
		DeliveryCharge: o.DeliveryCharge,
		GrandTotal:     o.GrandTotal,
		PaymentMethod:  o.PaymentMethod,
		Status:         o.Status,
	}
	for _, l := range o.Items {
		inv.Lines = append(inv.Lines, InvoiceLine{
			Product:   l.Product.Name,
			Color:     l.ColorName,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price,
			LineTotal: l.LineTotal(),
		})
	}
	return inv
}

// Text renders a printable plain-text view. Document export (PDF etc.) is an
// external concern; this is the region it consumes.
func (inv Invoice) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Invoice %s (%s)\n", inv.OrderNumber, inv.IssuedAt)
	fmt.Fprintf(&b, "Bill to: %s, %s\n%s\n\n", inv.BillTo.Name, inv.BillTo.Phone, inv.BillTo.Address)
	for _, l := range inv.Lines {
		name := l.Product
		if l.Color != "" {
			name += " (" + l.Color + ")"
		}
		fmt.Fprintf(&b, "%-40s x%-3d %8d %s\n", name, l.Quantity, l.LineTotal.Amount, l.LineTotal.Currency)
	}
	fmt.Fprintf(&b, "\nSubtotal:        %8d %s\n", inv.Subtotal.Amount, inv.Subtotal.Currency)
	fmt.Fprintf(&b, "Delivery charge: %8d %s\n", inv.DeliveryCharge.Amount, inv.DeliveryCharge.Currency)
	fmt.Fprintf(&b, "Grand total:     %8d %s\n", inv.GrandTotal.Amount, inv.GrandTotal.Currency)
	fmt.Fprintf(&b, "Payment: %s\n", inv.PaymentMethod)
	return b.String()
}

func formatAddress(a domain.DeliveryAddress) string {
	parts := []string{a.HouseNumber}
	if a.Street != "" {
		parts = append(parts, a.Street)
	}
	parts = append(parts, a.SubDistrict, a.District)
	return strings.Join(parts, ", ")
}

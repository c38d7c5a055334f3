package domain

import "time"

// DefaultCurrency is the storefront currency. Prices are whole-taka amounts.
const DefaultCurrency = "BDT"

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func Taka(amount int64) Money {
	return Money{Amount: amount, Currency: DefaultCurrency}
}

// Color is one selectable product variant.
type Color struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       Money     `json:"price"`
	Stock       int       `json:"stock"`
	Colors      []Color   `json:"colors,omitempty"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Product) HasColor(value string) bool {
	for _, c := range p.Colors {
		if c.Value == value {
			return true
		}
	}
	return false
}

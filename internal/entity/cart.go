package domain

import (
	"errors"
	"time"
)

var (
	ErrQuantityInvalid = errors.New("quantity must be at least 1")
	ErrStockExceeded   = errors.New("not enough stock")
	ErrLineNotFound    = errors.New("cart line not found")
	ErrColorTaken      = errors.New("color variant already in cart")
)

// ProductRef is the product snapshot captured when a line is added.
// Price and stock are frozen at add time; they are not re-checked against
// the live catalog before checkout.
type ProductRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
	Stock int    `json:"stock"`
	Image string `json:"image,omitempty"`
}

// CartLine is one (product, color) pairing with a quantity.
type CartLine struct {
	Product    ProductRef `json:"product"`
	Quantity   int        `json:"quantity"`
	ColorValue string     `json:"colorValue"`
	ColorName  string     `json:"colorName"`
	AddedAt    time.Time  `json:"addedAt"`
}

func (l CartLine) LineTotal() Money {
	return Money{Amount: l.Product.Price.Amount * int64(l.Quantity), Currency: l.Product.Price.Currency}
}

type Cart struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func NewCart(id string) *Cart {
	return &Cart{ID: id}
}

func (c *Cart) IsEmpty() bool { return len(c.Lines) == 0 }

// find returns the index of the line keyed by (productID, colorValue), or -1.
func (c *Cart) find(productID, colorValue string) int {
	for i, l := range c.Lines {
		if l.Product.ID == productID && l.ColorValue == colorValue {
			return i
		}
	}
	return -1
}

// AddOrMerge appends a new line or merges quantity into an existing line with
// the same (product, color) key. The merged quantity must stay within the
// stock snapshot.
func (c *Cart) AddOrMerge(ref ProductRef, quantity int, colorValue, colorName string, now time.Time) error {
	if quantity < 1 {
		return ErrQuantityInvalid
	}
	if i := c.find(ref.ID, colorValue); i >= 0 {
		next := c.Lines[i].Quantity + quantity
		if next > c.Lines[i].Product.Stock {
			return ErrStockExceeded
		}
		c.Lines[i].Quantity = next
		c.UpdatedAt = now
		return nil
	}
	if quantity > ref.Stock {
		return ErrStockExceeded
	}
	c.Lines = append(c.Lines, CartLine{
		Product:    ref,
		Quantity:   quantity,
		ColorValue: colorValue,
		ColorName:  colorName,
		AddedAt:    now,
	})
	c.UpdatedAt = now
	return nil
}

// SetQuantity replaces a line's quantity. Bounds: 1..stock snapshot.
func (c *Cart) SetQuantity(productID, colorValue string, quantity int, now time.Time) error {
	i := c.find(productID, colorValue)
	if i < 0 {
		return ErrLineNotFound
	}
	if quantity < 1 {
		return ErrQuantityInvalid
	}
	if quantity > c.Lines[i].Product.Stock {
		return ErrStockExceeded
	}
	c.Lines[i].Quantity = quantity
	c.UpdatedAt = now
	return nil
}

func (c *Cart) Remove(productID, colorValue string, now time.Time) error {
	i := c.find(productID, colorValue)
	if i < 0 {
		return ErrLineNotFound
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	c.UpdatedAt = now
	return nil
}

// ChangeColor moves a line to a new color variant, preserving its quantity.
// Variants are never merged automatically: if the destination color already
// has a line the operation is rejected.
func (c *Cart) ChangeColor(productID, oldColorValue, newColorValue, newColorName string, now time.Time) error {
	i := c.find(productID, oldColorValue)
	if i < 0 {
		return ErrLineNotFound
	}
	if j := c.find(productID, newColorValue); j >= 0 && j != i {
		return ErrColorTaken
	}
	c.Lines[i].ColorValue = newColorValue
	c.Lines[i].ColorName = newColorName
	c.UpdatedAt = now
	return nil
}

func (c *Cart) Clear(now time.Time) {
	c.Lines = nil
	c.UpdatedAt = now
}

// CartTotals is derived from the current lines on every read, never stored.
type CartTotals struct {
	Lines    int   `json:"lines"`
	Units    int   `json:"units"`
	Subtotal Money `json:"subtotal"`
}

func (c *Cart) Totals() CartTotals {
	t := CartTotals{Subtotal: Money{Currency: DefaultCurrency}}
	for _, l := range c.Lines {
		t.Lines++
		t.Units += l.Quantity
		t.Subtotal.Amount += l.Product.Price.Amount * int64(l.Quantity)
		if l.Product.Price.Currency != "" {
			t.Subtotal.Currency = l.Product.Price.Currency
		}
	}
	return t
}

package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tShirt = ProductRef{ID: "p1", Name: "Premium T-Shirt", Price: Taka(500), Stock: 5}
	mug    = ProductRef{ID: "p2", Name: "Ceramic Mug", Price: Taka(250), Stock: 2}
)

func TestAddOrMergeMergesSameVariant(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	cart := NewCart("c1")

	require.NoError(t, cart.AddOrMerge(tShirt, 2, "#000000", "Black", now))
	require.NoError(t, cart.AddOrMerge(tShirt, 1, "#000000", "Black", now.Add(time.Minute)))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, now.Add(time.Minute), cart.UpdatedAt)
}

func TestAddOrMergeKeepsVariantsSeparate(t *testing.T) {
	now := time.Now()
	cart := NewCart("c1")

	require.NoError(t, cart.AddOrMerge(tShirt, 1, "#000000", "Black", now))
	require.NoError(t, cart.AddOrMerge(tShirt, 1, "#ffffff", "White", now))

	assert.Len(t, cart.Lines, 2)
}

func TestAddOrMergeRejectsOverStock(t *testing.T) {
	now := time.Now()
	cart := NewCart("c1")

	err := cart.AddOrMerge(mug, 3, "", "", now)
	assert.ErrorIs(t, err, ErrStockExceeded)
	assert.Empty(t, cart.Lines)

	require.NoError(t, cart.AddOrMerge(mug, 2, "", "", now))
	err = cart.AddOrMerge(mug, 1, "", "", now)
	assert.ErrorIs(t, err, ErrStockExceeded)
	assert.Equal(t, 2, cart.Lines[0].Quantity, "failed merge must not change the line")
}

func TestAddOrMergeRejectsNonPositiveQuantity(t *testing.T) {
	cart := NewCart("c1")

	assert.ErrorIs(t, cart.AddOrMerge(tShirt, 0, "", "", time.Now()), ErrQuantityInvalid)
	assert.ErrorIs(t, cart.AddOrMerge(tShirt, -1, "", "", time.Now()), ErrQuantityInvalid)
}

func TestSetQuantityBounds(t *testing.T) {
	now := time.Now()
	cart := NewCart("c1")
	require.NoError(t, cart.AddOrMerge(tShirt, 1, "#000000", "Black", now))

	tests := []struct {
		name     string
		quantity int
		wantErr  error
	}{
		{"below one", 0, ErrQuantityInvalid},
		{"at stock", 5, nil},
		{"over stock", 6, ErrStockExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cart.SetQuantity("p1", "#000000", tt.quantity, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.quantity, cart.Lines[0].Quantity)
		})
	}

	assert.ErrorIs(t, cart.SetQuantity("p1", "#ff0000", 1, now), ErrLineNotFound)
}

func TestRemove(t *testing.T) {
	now := time.Now()
	cart := NewCart("c1")
	require.NoError(t, cart.AddOrMerge(tShirt, 1, "#000000", "Black", now))
	require.NoError(t, cart.AddOrMerge(mug, 1, "", "", now))

	require.NoError(t, cart.Remove("p1", "#000000", now))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "p2", cart.Lines[0].Product.ID)

	assert.ErrorIs(t, cart.Remove("p1", "#000000", now), ErrLineNotFound)
}

func TestChangeColorMovesLine(t *testing.T) {
	now := time.Now()
	cart := NewCart("c1")
	require.NoError(t, cart.AddOrMerge(tShirt, 3, "#000000", "Black", now))

	require.NoError(t, cart.ChangeColor("p1", "#000000", "#ffffff", "White", now))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "#ffffff", cart.Lines[0].ColorValue)
	assert.Equal(t, "White", cart.Lines[0].ColorName)
	assert.Equal(t, 3, cart.Lines[0].Quantity, "quantity travels with the line")
}

func TestChangeColorRejectsOccupiedDestination(t *testing.T) {
	now := time.Now()
	cart := NewCart("c1")
	require.NoError(t, cart.AddOrMerge(tShirt, 2, "#000000", "Black", now))
	require.NoError(t, cart.AddOrMerge(tShirt, 1, "#ffffff", "White", now))

	err := cart.ChangeColor("p1", "#000000", "#ffffff", "White", now)
	assert.ErrorIs(t, err, ErrColorTaken)

	// neither line moved
	assert.Equal(t, "#000000", cart.Lines[0].ColorValue)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
}

func TestTotals(t *testing.T) {
	now := time.Now()
	cart := NewCart("c1")
	require.NoError(t, cart.AddOrMerge(tShirt, 2, "#000000", "Black", now))
	require.NoError(t, cart.AddOrMerge(mug, 1, "", "", now))

	got := cart.Totals()
	assert.Equal(t, 2, got.Lines)
	assert.Equal(t, 3, got.Units)
	assert.Equal(t, Taka(1250), got.Subtotal)
}

func TestTotalsOnEmptyCart(t *testing.T) {
	got := NewCart("c1").Totals()
	assert.Equal(t, CartTotals{Subtotal: Money{Currency: DefaultCurrency}}, got)
}

func TestCartJSONRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	cart := NewCart("c1")
	require.NoError(t, cart.AddOrMerge(tShirt, 2, "#000000", "Black", now))

	raw, err := json.Marshal(cart)
	require.NoError(t, err)

	var back Cart
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, *cart, back)
}

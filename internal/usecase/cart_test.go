package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/mocks"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
}

func testProduct() *domain.Product {
	return &domain.Product{
		ID:     "p1",
		Name:   "Premium T-Shirt",
		Price:  domain.Taka(500),
		Stock:  5,
		Colors: []domain.Color{{Name: "Black", Value: "#000000"}},
		Images: []string{"https://cdn.example.com/p1.jpg"},
	}
}

func TestCartServiceAddItem(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockCartStore)
	products := new(mocks.MockProductRepo)

	store.On("Load", ctx, "c1").Return(domain.NewCart("c1"), nil)
	products.On("GetByID", ctx, "p1").Return(testProduct(), nil)
	store.On("Save", ctx, mock.AnythingOfType("*domain.Cart")).Return(nil)

	svc := usecase.NewCartService(store, products)
	svc.SetNow(fixedNow)

	cart, err := svc.AddItem(ctx, "c1", usecase.AddItemInput{
		ProductID:  "p1",
		Quantity:   2,
		ColorValue: "#000000",
		ColorName:  "Black",
	})
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	line := cart.Lines[0]
	assert.Equal(t, domain.Taka(500), line.Product.Price, "price is snapshotted at add time")
	assert.Equal(t, 5, line.Product.Stock)
	assert.Equal(t, "https://cdn.example.com/p1.jpg", line.Product.Image)
	assert.Equal(t, fixedNow(), line.AddedAt)

	store.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestCartServiceAddItemUnknownProduct(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockCartStore)
	products := new(mocks.MockProductRepo)

	store.On("Load", ctx, "c1").Return(domain.NewCart("c1"), nil)
	products.On("GetByID", ctx, "missing").Return(nil, nil)

	svc := usecase.NewCartService(store, products)

	_, err := svc.AddItem(ctx, "c1", usecase.AddItemInput{ProductID: "missing", Quantity: 1})
	assert.ErrorIs(t, err, usecase.ErrProductNotFound)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartServiceAddItemOverStockWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockCartStore)
	products := new(mocks.MockProductRepo)

	store.On("Load", ctx, "c1").Return(domain.NewCart("c1"), nil)
	products.On("GetByID", ctx, "p1").Return(testProduct(), nil)

	svc := usecase.NewCartService(store, products)

	_, err := svc.AddItem(ctx, "c1", usecase.AddItemInput{ProductID: "p1", Quantity: 6})
	assert.ErrorIs(t, err, domain.ErrStockExceeded)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartServiceSetQuantityPersists(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockCartStore)
	products := new(mocks.MockProductRepo)

	cart := domain.NewCart("c1")
	require.NoError(t, cart.AddOrMerge(domain.ProductRef{ID: "p1", Price: domain.Taka(500), Stock: 5}, 1, "#000000", "Black", fixedNow()))

	store.On("Load", ctx, "c1").Return(cart, nil)
	store.On("Save", ctx, cart).Return(nil)

	svc := usecase.NewCartService(store, products)
	svc.SetNow(fixedNow)

	got, err := svc.SetQuantity(ctx, "c1", "p1", "#000000", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Lines[0].Quantity)
	store.AssertExpectations(t)
}

func TestCartServiceSaveFailurePropagates(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockCartStore)
	products := new(mocks.MockProductRepo)

	cart := domain.NewCart("c1")
	require.NoError(t, cart.AddOrMerge(domain.ProductRef{ID: "p1", Price: domain.Taka(500), Stock: 5}, 1, "#000000", "Black", fixedNow()))

	boom := errors.New("redis down")
	store.On("Load", ctx, "c1").Return(cart, nil)
	store.On("Save", ctx, cart).Return(boom)

	svc := usecase.NewCartService(store, products)
	svc.SetNow(fixedNow)

	_, err := svc.RemoveItem(ctx, "c1", "p1", "#000000")
	assert.ErrorIs(t, err, boom)
}

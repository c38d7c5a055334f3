package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ahttp "github.com/KMTonmoy/allmartavenue-api/internal/adapter/http"
	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/mocks"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartRouter(store *mocks.MockCartStore, products *mocks.MockProductRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := ahttp.NewCartHandler(usecase.NewCartService(store, products))

	r := gin.New()
	r.GET("/v1/cart", h.GetCart)
	r.POST("/v1/cart/items", h.AddItem)
	r.DELETE("/v1/cart/items", h.RemoveItem)
	return r
}

func TestGetCartMintsCartID(t *testing.T) {
	store := new(mocks.MockCartStore)
	products := new(mocks.MockProductRepo)
	store.On("Load", mock.Anything, mock.AnythingOfType("string")).Return(domain.NewCart("fresh"), nil)

	r := newCartRouter(store, products)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(ahttp.CartIDHeader), "server mints a cart id when the client has none")
}

func TestGetCartEchoesExistingID(t *testing.T) {
	store := new(mocks.MockCartStore)
	products := new(mocks.MockProductRepo)
	store.On("Load", mock.Anything, "c1").Return(domain.NewCart("c1"), nil)

	r := newCartRouter(store, products)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	req.Header.Set(ahttp.CartIDHeader, "c1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "c1", w.Header().Get(ahttp.CartIDHeader))
	store.AssertExpectations(t)
}

func TestAddItemReturnsCartWithTotals(t *testing.T) {
	store := new(mocks.MockCartStore)
	products := new(mocks.MockProductRepo)
	store.On("Load", mock.Anything, "c1").Return(domain.NewCart("c1"), nil)
	products.On("GetByID", mock.Anything, "p1").Return(&domain.Product{
		ID:    "p1",
		Name:  "Premium T-Shirt",
		Price: domain.Taka(500),
		Stock: 5,
	}, nil)
	store.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	r := newCartRouter(store, products)
	w := httptest.NewRecorder()
	body := `{"productId":"p1","quantity":2,"colorValue":"#000000","colorName":"Black"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(ahttp.CartIDHeader, "c1")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Totals domain.CartTotals `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Totals.Units)
	assert.Equal(t, domain.Taka(1000), resp.Totals.Subtotal)
}

func TestAddItemUnknownProductIs404(t *testing.T) {
	store := new(mocks.MockCartStore)
	products := new(mocks.MockProductRepo)
	store.On("Load", mock.Anything, "c1").Return(domain.NewCart("c1"), nil)
	products.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	r := newCartRouter(store, products)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", strings.NewReader(`{"productId":"missing","quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(ahttp.CartIDHeader, "c1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveItemRequiresConfirmation(t *testing.T) {
	store := new(mocks.MockCartStore)
	products := new(mocks.MockProductRepo)

	r := newCartRouter(store, products)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/cart/items?productId=p1&colorValue=%23000000", nil)
	req.Header.Set(ahttp.CartIDHeader, "c1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "confirm_required")
	store.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestRemoveItemWithConfirmation(t *testing.T) {
	store := new(mocks.MockCartStore)
	products := new(mocks.MockProductRepo)

	cart := domain.NewCart("c1")
	require.NoError(t, cart.AddOrMerge(domain.ProductRef{ID: "p1", Price: domain.Taka(500), Stock: 5}, 1, "#000000", "Black", cart.UpdatedAt))
	store.On("Load", mock.Anything, "c1").Return(cart, nil)
	store.On("Save", mock.Anything, cart).Return(nil)

	r := newCartRouter(store, products)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/cart/items?productId=p1&colorValue=%23000000&confirm=true", nil)
	req.Header.Set(ahttp.CartIDHeader, "c1")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	store.AssertExpectations(t)
}

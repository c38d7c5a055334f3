package http

import (
	"errors"
	"net/http"

	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartIDHeader carries the visitor's cart identity. The server mints one on
// first use and echoes it back; the client keeps it like it kept the old
// local-storage blob.
const CartIDHeader = "X-Cart-Id"

type CartHandler struct {
	carts *usecase.CartService
}

func NewCartHandler(carts *usecase.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) cartID(c *gin.Context) string {
	id := c.GetHeader(CartIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(CartIDHeader, id)
	return id
}

func cartResponse(cart *domain.Cart) gin.H {
	return gin.H{"cart": cart, "totals": cart.Totals()}
}

// GetCart returns the current cart; an unknown cart ID yields an empty cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.carts.Get(c.Request.Context(), h.cartID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart_unavailable"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

type addItemReq struct {
	ProductID  string `json:"productId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
	ColorValue string `json:"colorValue"`
	ColorName  string `json:"colorName"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), h.cartID(c), usecase.AddItemInput{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		ColorValue: req.ColorValue,
		ColorName:  req.ColorName,
	})
	if err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

type setQuantityReq struct {
	ProductID  string `json:"productId" binding:"required"`
	ColorValue string `json:"colorValue"`
	Quantity   int    `json:"quantity" binding:"required"`
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req setQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	cart, err := h.carts.SetQuantity(c.Request.Context(), h.cartID(c), req.ProductID, req.ColorValue, req.Quantity)
	if err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// RemoveItem deletes a line, but only once the caller has confirmed. The
// first call without confirm=true answers with a confirmation prompt and
// changes nothing, mirroring the interactive confirm step.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Query("productId")
	colorValue := c.Query("colorValue")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "confirm_required",
			"message": "repeat the request with confirm=true to remove this item",
		})
		return
	}

	cart, err := h.carts.RemoveItem(c.Request.Context(), h.cartID(c), productID, colorValue)
	if err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

type changeColorReq struct {
	ProductID     string `json:"productId" binding:"required"`
	OldColorValue string `json:"oldColorValue"`
	NewColorValue string `json:"newColorValue" binding:"required"`
	NewColorName  string `json:"newColorName"`
}

func (h *CartHandler) ChangeColor(c *gin.Context) {
	var req changeColorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	cart, err := h.carts.ChangeColor(c.Request.Context(), h.cartID(c),
		req.ProductID, req.OldColorValue, req.NewColorValue, req.NewColorName)
	if err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

func writeCartError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrProductNotFound), errors.Is(err, domain.ErrLineNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrQuantityInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrStockExceeded), errors.Is(err, domain.ErrColorTaken):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

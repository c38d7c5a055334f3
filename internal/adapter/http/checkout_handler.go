package http

import (
	"errors"
	"net/http"

	"github.com/KMTonmoy/allmartavenue-api/internal/adapter/http/middleware"
	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout *usecase.Checkout
}

func NewCheckoutHandler(checkout *usecase.Checkout) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type placeOrderReq struct {
	Customer struct {
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		District    string `json:"district"`
		SubDistrict string `json:"subDistrict"`
		HouseNumber string `json:"houseNumber"`
		Street      string `json:"street"`
	} `json:"customer"`
	DeliveryLocation string `json:"deliveryLocation" binding:"required"`
}

// PlaceOrder is POST /v1/orders. 201 means the order row is durable and the
// cart is gone; anything else means the cart is untouched and the client may
// retry manually.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	cartID := c.GetHeader(CartIDHeader)
	if cartID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + CartIDHeader + " header"})
		return
	}

	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	order, err := h.checkout.PlaceOrder(c.Request.Context(), usecase.PlaceOrderInput{
		CartID: cartID,
		Customer: domain.DeliveryAddress{
			Name:        req.Customer.Name,
			Phone:       req.Customer.Phone,
			District:    req.Customer.District,
			SubDistrict: req.Customer.SubDistrict,
			HouseNumber: req.Customer.HouseNumber,
			Street:      req.Customer.Street,
		},
		DeliveryLocation: req.DeliveryLocation,
	})
	if err != nil {
		writeCheckoutError(c, err)
		return
	}

	middleware.CountOrderPlaced()
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func writeCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrPhoneRequired),
		errors.Is(err, domain.ErrPhoneTooShort),
		errors.Is(err, domain.ErrDistrictRequired),
		errors.Is(err, domain.ErrSubDistrictRequired),
		errors.Is(err, domain.ErrHouseRequired),
		errors.Is(err, domain.ErrUnknownLocation),
		errors.Is(err, usecase.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrCheckoutInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		// Order row not written; the client can safely re-submit.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order_not_saved", "retryable": true})
	}
}

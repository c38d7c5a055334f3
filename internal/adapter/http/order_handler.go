package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/KMTonmoy/allmartavenue-api/internal/adapter/repo"
	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/logging"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders usecase.OrderRepo
	status usecase.StatusCache
}

func NewOrderHandler(orders usecase.OrderRepo, status usecase.StatusCache) *OrderHandler {
	return &OrderHandler{orders: orders, status: status}
}

// List is the admin order board, optionally filtered by status.
func (h *OrderHandler) List(c *gin.Context) {
	var status domain.Status
	if s := c.Query("status"); s != "" {
		var err error
		status, err = domain.ParseStatus(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	orders, err := h.orders.List(c.Request.Context(), status)
	if err != nil {
		logging.From(c).Error("order list failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "orders_unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "orders_unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}

type patchOrderReq struct {
	Status     string `json:"status"`
	Courier    string `json:"courier"`
	TrackingID string `json:"trackingId"`
}

// Patch updates status and/or tracking fields. Status values outside the
// closed enum are rejected.
func (h *OrderHandler) Patch(c *gin.Context) {
	var req patchOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	id := c.Param("id")
	ctx := c.Request.Context()

	if req.Status != "" {
		st, err := domain.ParseStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := h.orders.UpdateStatus(ctx, id, st); err != nil {
			writeOrderWriteError(c, err)
			return
		}
	}
	if req.Courier != "" || req.TrackingID != "" {
		if err := h.orders.UpdateTracking(ctx, id, req.Courier, req.TrackingID); err != nil {
			writeOrderWriteError(c, err)
			return
		}
	}

	o, err := h.orders.GetByID(ctx, id)
	if err != nil {
		writeOrderWriteError(c, err)
		return
	}
	if h.status != nil {
		_ = h.status.SetStatus(ctx, o.Number, o.Status)
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeOrderWriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TrackStatus is the public order-status lookup by order number; it reads
// the cache first and falls back to the order row.
func (h *OrderHandler) TrackStatus(c *gin.Context) {
	number := c.Param("number")
	ctx := c.Request.Context()

	if h.status != nil {
		if st, ok, err := h.status.GetStatus(ctx, number); err == nil && ok {
			c.JSON(http.StatusOK, gin.H{"orderNumber": number, "status": st})
			return
		}
	}

	o, err := h.orders.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "orders_unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderNumber": o.Number, "status": o.Status})
}

// Invoice projects a submitted order into its printable form. Plain text
// when asked for, JSON otherwise.
func (h *OrderHandler) Invoice(c *gin.Context) {
	o, err := h.orders.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "orders_unavailable"})
		return
	}

	inv := usecase.BuildInvoice(o)
	if strings.Contains(c.GetHeader("Accept"), "text/plain") {
		c.String(http.StatusOK, inv.Text())
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": inv})
}

func writeOrderWriteError(c *gin.Context, err error) {
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	logging.From(c).Error("order write failed", "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "not_saved", "retryable": true})
}

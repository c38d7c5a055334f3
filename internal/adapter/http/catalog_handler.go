package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/KMTonmoy/allmartavenue-api/internal/adapter/repo"
	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/logging"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	products usecase.ProductRepo
}

func NewCatalogHandler(products usecase.ProductRepo) *CatalogHandler {
	return &CatalogHandler{products: products}
}

// List degrades to an empty catalog with a notice when the store is down;
// browsing failures are never fatal to the page. A ?q= parameter turns the
// listing into a search.
func (h *CatalogHandler) List(c *gin.Context) {
	if c.Query("q") != "" {
		h.Search(c)
		return
	}
	items, err := h.products.List(c.Request.Context())
	if err != nil {
		logging.From(c).Error("product list failed", "err", err)
		c.JSON(http.StatusOK, gin.H{"products": []domain.Product{}, "notice": "catalog temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": items})
}

func (h *CatalogHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusOK, gin.H{"products": []domain.Product{}})
		return
	}
	items, err := h.products.Search(c.Request.Context(), q)
	if err != nil {
		logging.From(c).Error("product search failed", "q", q, "err", err)
		c.JSON(http.StatusOK, gin.H{"products": []domain.Product{}, "notice": "search temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": items})
}

func (h *CatalogHandler) Get(c *gin.Context) {
	p, err := h.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog_unavailable"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

type productReq struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Price       int64          `json:"price" binding:"required,gt=0"`
	Stock       int            `json:"stock" binding:"gte=0"`
	Colors      []domain.Color `json:"colors"`
	Images      []string       `json:"images"`
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	now := time.Now()
	p := &domain.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       domain.Taka(req.Price),
		Stock:       req.Stock,
		Colors:      req.Colors,
		Images:      req.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.products.Create(c.Request.Context(), p); err != nil {
		logging.From(c).Error("product create failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "not_saved", "retryable": true})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": p})
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	p := &domain.Product{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       domain.Taka(req.Price),
		Stock:       req.Stock,
		Colors:      req.Colors,
		Images:      req.Images,
	}
	if err := h.products.Update(c.Request.Context(), p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		logging.From(c).Error("product update failed", "id", p.ID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "not_saved", "retryable": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "not_deleted", "retryable": true})
		return
	}
	c.Status(http.StatusNoContent)
}

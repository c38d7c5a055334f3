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

type BannerHandler struct {
	banners usecase.BannerRepo
}

func NewBannerHandler(banners usecase.BannerRepo) *BannerHandler {
	return &BannerHandler{banners: banners}
}

// List shows active banners to the storefront; admins pass ?all=true.
func (h *BannerHandler) List(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	items, err := h.banners.List(c.Request.Context(), activeOnly)
	if err != nil {
		logging.From(c).Error("banner list failed", "err", err)
		c.JSON(http.StatusOK, gin.H{"banners": []domain.Banner{}, "notice": "banners temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": items})
}

type bannerReq struct {
	Title    string `json:"title" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"required"`
	LinkURL  string `json:"linkUrl"`
	Active   *bool  `json:"active"`
}

func (r bannerReq) active() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}

func (h *BannerHandler) Create(c *gin.Context) {
	var req bannerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	now := time.Now()
	b := &domain.Banner{
		ID:        uuid.NewString(),
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		Active:    req.active(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.banners.Create(c.Request.Context(), b); err != nil {
		logging.From(c).Error("banner create failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "not_saved", "retryable": true})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"banner": b})
}

func (h *BannerHandler) Update(c *gin.Context) {
	var req bannerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	b := &domain.Banner{
		ID:       c.Param("id"),
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Active:   req.active(),
	}
	if err := h.banners.Update(c.Request.Context(), b); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		logging.From(c).Error("banner update failed", "id", b.ID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "not_saved", "retryable": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banner": b})
}

func (h *BannerHandler) Delete(c *gin.Context) {
	if err := h.banners.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "not_deleted", "retryable": true})
		return
	}
	c.Status(http.StatusNoContent)
}

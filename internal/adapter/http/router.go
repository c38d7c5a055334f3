package http

import (
	"github.com/KMTonmoy/allmartavenue-api/internal/adapter/http/middleware"
	"github.com/KMTonmoy/allmartavenue-api/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Catalog  *CatalogHandler
	Banner   *BannerHandler
	Order    *OrderHandler
	Token    *TokenHandler
}

func NewRouter(h Handlers, authz *middleware.Authz) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/v1/token", h.Token.IssueToken)

	v1 := r.Group("/v1")
	{
		// storefront
		v1.GET("/products", h.Catalog.List) // ?q= searches
		v1.GET("/products/:id", h.Catalog.Get)
		v1.GET("/banners", h.Banner.List)

		v1.GET("/cart", h.Cart.GetCart)
		v1.POST("/cart/items", h.Cart.AddItem)
		v1.PUT("/cart/items", h.Cart.SetQuantity)
		v1.DELETE("/cart/items", h.Cart.RemoveItem)
		v1.POST("/cart/items/color", h.Cart.ChangeColor)

		v1.POST("/orders", h.Checkout.PlaceOrder)
		v1.GET("/track/:number", h.Order.TrackStatus)
		v1.GET("/invoices/:number", h.Order.Invoice)

		// admin
		v1.POST("/products", authz.Require("catalog.write"), h.Catalog.Create)
		v1.PUT("/products/:id", authz.Require("catalog.write"), h.Catalog.Update)
		v1.DELETE("/products/:id", authz.Require("catalog.write"), h.Catalog.Delete)

		v1.POST("/banners", authz.Require("banners.write"), h.Banner.Create)
		v1.PUT("/banners/:id", authz.Require("banners.write"), h.Banner.Update)
		v1.DELETE("/banners/:id", authz.Require("banners.write"), h.Banner.Delete)

		v1.GET("/orders", authz.Require("orders.read"), h.Order.List)
		v1.GET("/orders/:id", authz.Require("orders.read"), h.Order.Get)
		v1.PATCH("/orders/:id", authz.Require("orders.write"), h.Order.Patch)
		v1.DELETE("/orders/:id", authz.Require("orders.write"), h.Order.Delete)
	}

	return r
}

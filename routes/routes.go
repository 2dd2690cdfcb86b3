package routes

import (
	"dimzia-storefront/handlers"
	"dimzia-storefront/middleware"
	"dimzia-storefront/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		// Catalog & zones (no auth needed)
		public.GET("/catalog", h.ListCatalog)
		public.GET("/catalog/:id", h.GetCatalogEntry)
		public.GET("/zones", h.ListZones)

		// Delivery estimation
		public.POST("/delivery/quote", h.QuoteDelivery)

		// Cart (owned by whoever holds the cart id)
		public.POST("/carts", h.CreateCart)
		public.GET("/carts/:cartId", h.GetCart)
		public.POST("/carts/:cartId/items", h.AddItem)
		public.PUT("/carts/:cartId/items/:itemId", h.SetItemQuantity)
		public.DELETE("/carts/:cartId/items/:itemId", h.RemoveItem)
		public.DELETE("/carts/:cartId", h.ClearCart)

		// Checkout
		public.POST("/orders", h.SubmitOrder)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(h.JWTSecret))
	{
		auth.GET("/profile", h.GetProfile)
	}

	// ── Admin back-office ──────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(h.JWTSecret), middleware.RoleRequired(models.RoleAdmin))
	{
		// Menu management
		admin.POST("/menu", h.AdminAddMenuEntry)
		admin.PUT("/menu/:itemId", h.AdminUpdateMenuEntry)
		admin.DELETE("/menu/:itemId", h.AdminDeleteMenuEntry)

		// Delivery zone management
		admin.POST("/zones", h.AdminAddZone)
		admin.DELETE("/zones/:zoneId", h.AdminDeleteZone)

		// Order log
		admin.GET("/orders", h.AdminListOrders)
	}
}

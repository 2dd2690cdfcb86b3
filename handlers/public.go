package handlers

import (
	"errors"
	"net/http"

	"dimzia-storefront/models"
	"dimzia-storefront/pricing"
	"dimzia-storefront/store"

	"github.com/gin-gonic/gin"
)

// ListCatalog returns the menu, optionally filtered by category or
// popularity (public)
func (h *Handler) ListCatalog(c *gin.Context) {
	filter := store.MenuFilter{}
	if category := c.Query("category"); category != "" {
		if !models.ValidCategory(models.Category(category)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + category})
			return
		}
		filter.Category = models.Category(category)
	}
	if c.Query("popular") == "true" {
		filter.PopularOnly = true
	}

	entries, err := h.Store.ListMenu(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "menu": entries})
}

// GetCatalogEntry returns a single menu entry (public)
func (h *Handler) GetCatalogEntry(c *gin.Context) {
	entry, err := h.Store.GetMenuEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": entry})
}

// ListZones returns all delivery zones so the customer can pick one
// manually when location sharing is unavailable (public)
func (h *Handler) ListZones(c *gin.Context) {
	zones, err := h.Store.ListZones(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load delivery zones"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(zones), "zones": zones})
}

type QuoteRequest struct {
	Lat float64 `json:"lat" binding:"min=-90,max=90"`
	Lon float64 `json:"lon" binding:"min=-180,max=180"`
}

// QuoteDelivery prices a delivery from the customer's coordinates under the
// configured policy (public). The client obtains coordinates itself; when it
// cannot, it skips the quote and the customer proceeds manually.
func (h *Handler) QuoteDelivery(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var zones []models.DeliveryZone
	if h.Pricer.Policy == pricing.PolicyZone {
		var err error
		zones, err = h.Store.ListZones(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load delivery zones"})
			return
		}
	}

	distance, cost := h.Pricer.QuoteFrom(pricing.Coordinate{Lat: req.Lat, Lon: req.Lon}, zones)
	c.JSON(http.StatusOK, gin.H{
		"distance_km":   distance,
		"delivery_cost": cost,
		"policy":        h.Pricer.Policy,
	})
}

package handlers

import (
	"errors"
	"net/http"

	"dimzia-storefront/models"
	"dimzia-storefront/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ── Menu management ─────────────────────────────────────────────────────────

type MenuEntryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category" binding:"required"`
	IsPopular   bool    `json:"is_popular"`
}

// AdminAddMenuEntry creates a menu entry — admin only
func (h *Handler) AdminAddMenuEntry(c *gin.Context) {
	var req MenuEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(models.Category(req.Category)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Must be: steamed, fried, baked, dessert, or special"})
		return
	}

	entry := models.MenuEntry{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    models.Category(req.Category),
		IsPopular:   req.IsPopular,
	}
	if err := h.Store.CreateMenuEntry(c.Request.Context(), &entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu entry"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added successfully", "item": entry})
}

// AdminUpdateMenuEntry replaces a menu entry's editable fields — admin only
func (h *Handler) AdminUpdateMenuEntry(c *gin.Context) {
	var req MenuEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(models.Category(req.Category)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Must be: steamed, fried, baked, dessert, or special"})
		return
	}

	entry := models.MenuEntry{
		ID:          c.Param("itemId"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    models.Category(req.Category),
		IsPopular:   req.IsPopular,
	}
	if err := h.Store.UpdateMenuEntry(c.Request.Context(), &entry); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated successfully", "item": entry})
}

// AdminDeleteMenuEntry removes a menu entry — admin only
func (h *Handler) AdminDeleteMenuEntry(c *gin.Context) {
	if err := h.Store.DeleteMenuEntry(c.Request.Context(), c.Param("itemId")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}

// ── Delivery zone management ────────────────────────────────────────────────

type ZoneRequest struct {
	ZoneName  string `json:"zone_name" binding:"required"`
	BasePrice int64  `json:"base_price" binding:"required,gt=0"`
}

// AdminAddZone creates a delivery zone — admin only
func (h *Handler) AdminAddZone(c *gin.Context) {
	var req ZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zone := models.DeliveryZone{
		ID:        uuid.NewString(),
		ZoneName:  req.ZoneName,
		BasePrice: req.BasePrice,
	}
	if err := h.Store.CreateZone(c.Request.Context(), &zone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add delivery zone"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Delivery zone added successfully", "zone": zone})
}

// AdminDeleteZone removes a delivery zone — admin only
func (h *Handler) AdminDeleteZone(c *gin.Context) {
	if err := h.Store.DeleteZone(c.Request.Context(), c.Param("zoneId")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery zone not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete delivery zone"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery zone deleted successfully"})
}

// ── Order log ───────────────────────────────────────────────────────────────

// AdminListOrders returns the order log newest-first with a revenue
// rollup — admin only
func (h *Handler) AdminListOrders(c *gin.Context) {
	orderLog, err := h.Store.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	var subtotalRevenue float64
	var deliveryRevenue int64
	byMethod := map[string]int{}
	for _, o := range orderLog {
		subtotalRevenue += o.Subtotal
		deliveryRevenue += o.DeliveryCost
		byMethod[string(o.Method)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"count":            len(orderLog),
		"subtotal_revenue": subtotalRevenue,
		"delivery_revenue": deliveryRevenue,
		"method_summary":   byMethod,
		"orders":           orderLog,
	})
}

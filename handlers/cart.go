package handlers

import (
	"errors"
	"net/http"

	"dimzia-storefront/cart"
	"dimzia-storefront/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateCart issues a fresh cart id; the client keeps it the way the
// browser kept the serialized cart in local storage.
func (h *Handler) CreateCart(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"cart_id": uuid.NewString()})
}

// GetCart returns the cart's lines and derived totals.
func (h *Handler) GetCart(c *gin.Context) {
	ledger := cart.Open(c.Request.Context(), h.Store, c.Param("cartId"))
	respondCart(c, ledger, "")
}

type AddItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// AddItem adds a menu entry to the cart; quantities accumulate when the
// line already exists.
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Store.GetMenuEntry(c.Request.Context(), req.ItemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu entry"})
		return
	}

	ledger := cart.Open(c.Request.Context(), h.Store, c.Param("cartId"))
	ack, err := ledger.Add(c.Request.Context(), *entry, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	respondCart(c, ledger, ack)
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetItemQuantity replaces a line's quantity; zero or less removes the line.
func (h *Handler) SetItemQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ledger := cart.Open(c.Request.Context(), h.Store, c.Param("cartId"))
	if err := ledger.SetQuantity(c.Request.Context(), c.Param("itemId"), req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	respondCart(c, ledger, "")
}

// RemoveItem deletes a line unconditionally.
func (h *Handler) RemoveItem(c *gin.Context) {
	ledger := cart.Open(c.Request.Context(), h.Store, c.Param("cartId"))
	if err := ledger.Remove(c.Request.Context(), c.Param("itemId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	respondCart(c, ledger, "")
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	ledger := cart.Open(c.Request.Context(), h.Store, c.Param("cartId"))
	if err := ledger.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	respondCart(c, ledger, "")
}

func respondCart(c *gin.Context, ledger *cart.Ledger, ack string) {
	lines := ledger.Lines()
	if lines == nil {
		lines = []cart.Line{}
	}
	resp := gin.H{
		"cart_id":     ledger.ID(),
		"items":       lines,
		"total_items": ledger.TotalItems(),
		"total_price": ledger.TotalPrice(),
	}
	if ack != "" {
		resp["message"] = ack
	}
	c.JSON(http.StatusOK, resp)
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"dimzia-storefront/cart"
	"dimzia-storefront/models"
	"dimzia-storefront/orders"
	"dimzia-storefront/pricing"

	"github.com/gin-gonic/gin"
)

type CheckoutRequest struct {
	CartID  string `json:"cart_id" binding:"required"`
	Name    string `json:"name"`
	Method  string `json:"delivery_method" binding:"required,oneof=pickup delivery"`
	Address string `json:"address"`

	// Either an explicit zone choice or shared coordinates; both absent
	// means the customer proceeds manually and the fee stays zero.
	ZoneID string   `json:"zone_id"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
}

// SubmitOrder runs checkout: prices the delivery, composes and persists the
// order, clears the cart and returns the outbound message link.
func (h *Handler) SubmitOrder(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method := models.FulfillmentMethod(req.Method)
	sub := orders.Submission{
		CustomerName: req.Name,
		Method:       method,
		Address:      req.Address,
	}

	if method == models.MethodDelivery {
		distance, cost, err := h.priceDelivery(c, req)
		if err != nil {
			return // response already written
		}
		sub.DistanceKm = distance
		sub.DeliveryCost = cost
	}

	ledger := cart.Open(c.Request.Context(), h.Store, req.CartID)
	result, err := h.Composer.Submit(c.Request.Context(), ledger, sub)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter your name"})
		case errors.Is(err, orders.ErrAddressRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter your address for delivery"})
		case errors.Is(err, orders.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       fmt.Sprintf("Order #%d has been recorded", result.Order.OrderNumber),
		"order":         result.Order,
		"summary":       result.Summary,
		"whatsapp_link": result.Link,
	})
}

// priceDelivery resolves the delivery fee: explicit zone choice wins, then
// shared coordinates, otherwise the fee stays unset at zero.
func (h *Handler) priceDelivery(c *gin.Context, req CheckoutRequest) (distance float64, cost int64, err error) {
	if req.ZoneID != "" {
		zones, zerr := h.Store.ListZones(c.Request.Context())
		if zerr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load delivery zones"})
			return 0, 0, zerr
		}
		for _, z := range zones {
			if z.ID == req.ZoneID {
				return 0, z.BasePrice, nil
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown delivery zone"})
		return 0, 0, errors.New("unknown zone")
	}

	if req.Lat != nil && req.Lon != nil {
		var zones []models.DeliveryZone
		if h.Pricer.Policy == pricing.PolicyZone {
			var zerr error
			zones, zerr = h.Store.ListZones(c.Request.Context())
			if zerr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load delivery zones"})
				return 0, 0, zerr
			}
		}
		distance, cost = h.Pricer.QuoteFrom(pricing.Coordinate{Lat: *req.Lat, Lon: *req.Lon}, zones)
		return distance, cost, nil
	}

	return 0, 0, nil
}

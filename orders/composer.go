// Package orders assembles cart contents, customer fields and delivery
// pricing into an immutable order record and the outbound order message.
package orders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"dimzia-storefront/cart"
	"dimzia-storefront/models"
	"dimzia-storefront/store"

	"github.com/google/uuid"
)

var (
	ErrNameRequired    = errors.New("orders: customer name is required")
	ErrAddressRequired = errors.New("orders: address is required for delivery")
	ErrEmptyCart       = errors.New("orders: cart is empty")
)

// Notifier pushes a submitted order summary to a side channel. Failures are
// logged, never surfaced: the order is already persisted.
type Notifier interface {
	NotifyOrder(ctx context.Context, order *models.Order, summary string) error
}

// Submission carries the checkout form fields.
type Submission struct {
	CustomerName string
	Method       models.FulfillmentMethod
	Address      string
	DistanceKm   float64
	DeliveryCost int64
}

// Result is everything checkout hands back to the client.
type Result struct {
	Order   *models.Order
	Summary string
	Link    string // wa.me link carrying the percent-encoded summary
}

// Composer turns a cart plus checkout fields into a persisted order.
type Composer struct {
	Orders   store.OrderStore
	Phone    string // WhatsApp number the outbound link targets
	Notifier Notifier
}

// Submit validates the submission, persists the order with a freshly
// assigned sequential number, and clears the cart. If persistence fails the
// cart is left untouched so the customer can retry.
func (c *Composer) Submit(ctx context.Context, ledger *cart.Ledger, sub Submission) (*Result, error) {
	if sub.CustomerName == "" {
		return nil, ErrNameRequired
	}
	if sub.Method == models.MethodDelivery && sub.Address == "" {
		return nil, ErrAddressRequired
	}
	lines := ledger.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:           uuid.NewString(),
		CustomerName: sub.CustomerName,
		Method:       sub.Method,
		TotalItems:   ledger.TotalItems(),
		Subtotal:     ledger.TotalPrice(),
		CreatedAt:    time.Now().UTC(),
	}
	if sub.Method == models.MethodDelivery {
		order.Address = sub.Address
		order.DistanceKm = sub.DistanceKm
		order.DeliveryCost = sub.DeliveryCost
	}
	for _, line := range lines {
		order.Lines = append(order.Lines, models.OrderLine{
			Name:     line.Item.Name,
			Quantity: line.Quantity,
			Price:    line.Item.Price,
		})
	}

	if err := c.Orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	if err := ledger.Clear(ctx); err != nil {
		// The order is placed; a stale cart is an annoyance, not a failure.
		log.Printf("order #%d: clearing cart %s failed: %v", order.OrderNumber, ledger.ID(), err)
	}

	summary := Summary(order)
	if c.Notifier != nil {
		if err := c.Notifier.NotifyOrder(ctx, order, summary); err != nil {
			log.Printf("order #%d: notification failed: %v", order.OrderNumber, err)
		}
	}

	return &Result{
		Order:   order,
		Summary: summary,
		Link:    WhatsAppLink(c.Phone, summary),
	}, nil
}

// Package cart holds the shopping cart ledger: one line per menu entry,
// persisted as a JSON snapshot on every mutation so a cart survives across
// visits. A cart has exactly one logical writer (the client that owns the
// cart id), so no locking is needed.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"dimzia-storefront/models"
)

// Line pairs a menu entry with a positive quantity. At most one line exists
// per menu entry id.
type Line struct {
	Item     models.MenuEntry `json:"item"`
	Quantity int              `json:"quantity"`
}

// Store persists cart snapshots keyed by cart id. Load returns nil data for
// an unknown cart.
type Store interface {
	LoadCart(ctx context.Context, cartID string) ([]byte, error)
	SaveCart(ctx context.Context, cartID string, snapshot []byte) error
	DeleteCart(ctx context.Context, cartID string) error
}

// Ledger is the mutable cart state for one cart id.
type Ledger struct {
	id    string
	store Store
	lines []Line
}

// Open rehydrates the ledger for cartID. A missing or corrupt snapshot is
// treated as an empty cart; corruption is logged, never fatal.
func Open(ctx context.Context, store Store, cartID string) *Ledger {
	l := &Ledger{id: cartID, store: store}
	data, err := store.LoadCart(ctx, cartID)
	if err != nil {
		log.Printf("cart %s: load failed: %v", cartID, err)
		return l
	}
	if len(data) == 0 {
		return l
	}
	if err := json.Unmarshal(data, &l.lines); err != nil {
		log.Printf("cart %s: corrupt snapshot, starting empty: %v", cartID, err)
		l.lines = nil
	}
	return l
}

// ID returns the cart id the ledger was opened with.
func (l *Ledger) ID() string { return l.id }

// Lines returns the cart lines in insertion order.
func (l *Ledger) Lines() []Line { return l.lines }

// TotalItems is the sum of quantities across lines.
func (l *Ledger) TotalItems() int {
	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price × quantity across lines.
func (l *Ledger) TotalPrice() float64 {
	total := 0.0
	for _, line := range l.lines {
		total += line.Item.Price * float64(line.Quantity)
	}
	return total
}

// Add accumulates quantity onto an existing line or appends a new one, and
// returns the acknowledgement shown to the customer.
func (l *Ledger) Add(ctx context.Context, entry models.MenuEntry, quantity int) (string, error) {
	found := false
	for i := range l.lines {
		if l.lines[i].Item.ID == entry.ID {
			l.lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		l.lines = append(l.lines, Line{Item: entry, Quantity: quantity})
	}
	l.dropEmpty()
	if err := l.save(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d × %s added to your cart", quantity, entry.Name), nil
}

// Remove deletes the line for entryID unconditionally.
func (l *Ledger) Remove(ctx context.Context, entryID string) error {
	kept := l.lines[:0]
	for _, line := range l.lines {
		if line.Item.ID != entryID {
			kept = append(kept, line)
		}
	}
	l.lines = kept
	return l.save(ctx)
}

// SetQuantity replaces the quantity on the line for entryID. A quantity of
// zero or less removes the line.
func (l *Ledger) SetQuantity(ctx context.Context, entryID string, quantity int) error {
	for i := range l.lines {
		if l.lines[i].Item.ID == entryID {
			l.lines[i].Quantity = quantity
			break
		}
	}
	l.dropEmpty()
	return l.save(ctx)
}

// Clear empties the cart, called after a successful order submission.
func (l *Ledger) Clear(ctx context.Context) error {
	l.lines = nil
	return l.store.DeleteCart(ctx, l.id)
}

func (l *Ledger) dropEmpty() {
	kept := l.lines[:0]
	for _, line := range l.lines {
		if line.Quantity > 0 {
			kept = append(kept, line)
		}
	}
	l.lines = kept
}

func (l *Ledger) save(ctx context.Context) error {
	snapshot, err := json.Marshal(l.lines)
	if err != nil {
		return fmt.Errorf("marshal cart lines: %w", err)
	}
	return l.store.SaveCart(ctx, l.id, snapshot)
}

// Package store defines the persistence boundary. Two interchangeable
// providers implement it (sqlite via gorm, postgres via pgx); which one
// backs a deployment is purely configuration.
package store

import (
	"context"
	"errors"

	"dimzia-storefront/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("store: not found")

// MenuFilter narrows catalog listings.
type MenuFilter struct {
	Category    models.Category
	PopularOnly bool
}

type MenuStore interface {
	ListMenu(ctx context.Context, filter MenuFilter) ([]models.MenuEntry, error)
	GetMenuEntry(ctx context.Context, id string) (*models.MenuEntry, error)
	CreateMenuEntry(ctx context.Context, entry *models.MenuEntry) error
	UpdateMenuEntry(ctx context.Context, entry *models.MenuEntry) error
	DeleteMenuEntry(ctx context.Context, id string) error
}

type ZoneStore interface {
	ListZones(ctx context.Context) ([]models.DeliveryZone, error)
	CreateZone(ctx context.Context, zone *models.DeliveryZone) error
	DeleteZone(ctx context.Context, id string) error
}

// OrderStore persists immutable orders. CreateOrder assigns the sequential
// order number atomically: two racing submissions can never share a number.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	ListOrders(ctx context.Context) ([]models.Order, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// CartStore persists cart snapshots keyed by cart id, the server-side
// analogue of the browser's local storage.
type CartStore interface {
	LoadCart(ctx context.Context, cartID string) ([]byte, error)
	SaveCart(ctx context.Context, cartID string, snapshot []byte) error
	DeleteCart(ctx context.Context, cartID string) error
}

// Store is the full persistence surface the storefront needs.
type Store interface {
	MenuStore
	ZoneStore
	OrderStore
	UserStore
	CartStore
	Close() error
}

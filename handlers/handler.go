package handlers

import (
	"dimzia-storefront/orders"
	"dimzia-storefront/pricing"
	"dimzia-storefront/store"
)

// Handler carries the injected services every route needs; there is no
// ambient application state.
type Handler struct {
	Store      store.Store
	Pricer     pricing.Pricer
	Composer   *orders.Composer
	JWTSecret  []byte
	AdminEmail string
}

func New(s store.Store, pricer pricing.Pricer, composer *orders.Composer, jwtSecret []byte, adminEmail string) *Handler {
	return &Handler{
		Store:      s,
		Pricer:     pricer,
		Composer:   composer,
		JWTSecret:  jwtSecret,
		AdminEmail: adminEmail,
	}
}

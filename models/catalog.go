package models

import "time"

// Category groups menu entries on the storefront
type Category string

const (
	CategorySteamed Category = "steamed"
	CategoryFried   Category = "fried"
	CategoryBaked   Category = "baked"
	CategoryDessert Category = "dessert"
	CategorySpecial Category = "special"
)

// ValidCategory reports whether c is one of the storefront categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategorySteamed, CategoryFried, CategoryBaked, CategoryDessert, CategorySpecial:
		return true
	}
	return false
}

// MenuEntry is reference data for the storefront; created and edited only
// through the admin back-office.
type MenuEntry struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	ImageURL    string    `json:"image_url"`
	Category    Category  `json:"category" gorm:"not null;default:'steamed'"`
	IsPopular   bool      `json:"is_popular" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DeliveryZone is a flat-fee pricing band, the discrete alternative to
// per-kilometer pricing. BasePrice is in currency minor units.
type DeliveryZone struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ZoneName  string    `json:"zone_name" gorm:"not null"`
	BasePrice int64     `json:"base_price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

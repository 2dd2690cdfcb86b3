// Package gormstore is the default persistence provider, backed by sqlite
// through gorm.
package gormstore

import (
	"context"
	"errors"
	"time"

	"dimzia-storefront/models"
	"dimzia-storefront/store"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// cartRow holds one serialized cart snapshot per cart id.
type cartRow struct {
	CartID    string    `gorm:"primaryKey"`
	Snapshot  []byte    `gorm:"not null"`
	UpdatedAt time.Time
}

func (cartRow) TableName() string { return "carts" }

type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.MenuEntry{},
		&models.DeliveryZone{},
		&models.Order{},
		&models.OrderLine{},
		&cartRow{},
	)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ── Menu ────────────────────────────────────────────────────────────────────

func (s *Store) ListMenu(ctx context.Context, filter store.MenuFilter) ([]models.MenuEntry, error) {
	query := s.db.WithContext(ctx)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.PopularOnly {
		query = query.Where("is_popular = ?", true)
	}
	var entries []models.MenuEntry
	if err := query.Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) GetMenuEntry(ctx context.Context, id string) (*models.MenuEntry, error) {
	var entry models.MenuEntry
	if err := s.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &entry, nil
}

func (s *Store) CreateMenuEntry(ctx context.Context, entry *models.MenuEntry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *Store) UpdateMenuEntry(ctx context.Context, entry *models.MenuEntry) error {
	result := s.db.WithContext(ctx).Model(&models.MenuEntry{}).
		Where("id = ?", entry.ID).
		Select("name", "description", "price", "image_url", "category", "is_popular").
		Updates(entry)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteMenuEntry(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.MenuEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ── Delivery zones ──────────────────────────────────────────────────────────

func (s *Store) ListZones(ctx context.Context) ([]models.DeliveryZone, error) {
	var zones []models.DeliveryZone
	if err := s.db.WithContext(ctx).Order("base_price").Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

func (s *Store) CreateZone(ctx context.Context, zone *models.DeliveryZone) error {
	return s.db.WithContext(ctx).Create(zone).Error
}

func (s *Store) DeleteZone(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.DeliveryZone{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ── Orders ──────────────────────────────────────────────────────────────────

// CreateOrder assigns the next sequential order number and writes the order
// with its line snapshot in one transaction. sqlite serializes writers, so
// MAX+1 inside the transaction cannot race; the unique index on order_number
// backstops it anyway.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var max int64
		if err := tx.Model(&models.Order{}).
			Select("COALESCE(MAX(order_number), 0)").
			Scan(&max).Error; err != nil {
			return err
		}
		order.OrderNumber = int(max) + 1
		return tx.Create(order).Error
	})
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("Lines").
		Order("order_number desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ── Users ───────────────────────────────────────────────────────────────────

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

// ── Carts ───────────────────────────────────────────────────────────────────

func (s *Store) LoadCart(ctx context.Context, cartID string) ([]byte, error) {
	var row cartRow
	err := s.db.WithContext(ctx).First(&row, "cart_id = ?", cartID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Snapshot, nil
}

func (s *Store) SaveCart(ctx context.Context, cartID string, snapshot []byte) error {
	row := cartRow{CartID: cartID, Snapshot: snapshot}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
}

func (s *Store) DeleteCart(ctx context.Context, cartID string) error {
	return s.db.WithContext(ctx).Delete(&cartRow{}, "cart_id = ?", cartID).Error
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}

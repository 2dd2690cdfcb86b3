// Package pgstore is the postgres persistence provider, selected with
// STORE_BACKEND=postgres.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"dimzia-storefront/models"
	"dimzia-storefront/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'customer',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS menu_items (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price DOUBLE PRECISION NOT NULL,
	image_url TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT 'steamed',
	is_popular BOOLEAN NOT NULL DEFAULT false,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS delivery_zones (
	id TEXT PRIMARY KEY,
	zone_name TEXT NOT NULL,
	base_price BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS customer_orders (
	id TEXT PRIMARY KEY,
	order_number INT NOT NULL UNIQUE,
	customer_name TEXT NOT NULL,
	delivery_method TEXT NOT NULL,
	address TEXT NOT NULL DEFAULT '',
	distance_km DOUBLE PRECISION NOT NULL DEFAULT 0,
	delivery_cost BIGINT NOT NULL DEFAULT 0,
	total_items INT NOT NULL,
	subtotal DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS order_lines (
	id BIGSERIAL PRIMARY KEY,
	order_id TEXT NOT NULL REFERENCES customer_orders(id),
	name TEXT NOT NULL,
	quantity INT NOT NULL,
	price DOUBLE PRECISION NOT NULL
);
CREATE TABLE IF NOT EXISTS carts (
	cart_id TEXT PRIMARY KEY,
	snapshot JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

type Store struct {
	pool *pgxpool.Pool
}

// Open connects to postgres and makes sure the schema exists.
func Open(ctx context.Context, connString string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// ── Menu ────────────────────────────────────────────────────────────────────

func (s *Store) ListMenu(ctx context.Context, filter store.MenuFilter) ([]models.MenuEntry, error) {
	q := `
		SELECT id, name, description, price, image_url, category, is_popular, created_at, updated_at
		FROM menu_items WHERE ($1 = '' OR category = $1) AND (NOT $2 OR is_popular)
		ORDER BY id`
	rows, err := s.pool.Query(ctx, q, string(filter.Category), filter.PopularOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MenuEntry
	for rows.Next() {
		var e models.MenuEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Price, &e.ImageURL, &e.Category, &e.IsPopular, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) GetMenuEntry(ctx context.Context, id string) (*models.MenuEntry, error) {
	var e models.MenuEntry
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, description, price, image_url, category, is_popular, created_at, updated_at
		FROM menu_items WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Name, &e.Description, &e.Price, &e.ImageURL, &e.Category, &e.IsPopular, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &e, nil
}

func (s *Store) CreateMenuEntry(ctx context.Context, entry *models.MenuEntry) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO menu_items (id, name, description, price, image_url, category, is_popular)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.Name, entry.Description, entry.Price, entry.ImageURL, entry.Category, entry.IsPopular,
	)
	return err
}

func (s *Store) UpdateMenuEntry(ctx context.Context, entry *models.MenuEntry) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE menu_items SET
			name = $2, description = $3, price = $4, image_url = $5,
			category = $6, is_popular = $7, updated_at = now()
		WHERE id = $1`,
		entry.ID, entry.Name, entry.Description, entry.Price, entry.ImageURL, entry.Category, entry.IsPopular,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteMenuEntry(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ── Delivery zones ──────────────────────────────────────────────────────────

func (s *Store) ListZones(ctx context.Context) ([]models.DeliveryZone, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, zone_name, base_price, created_at
		FROM delivery_zones ORDER BY base_price`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []models.DeliveryZone
	for rows.Next() {
		var z models.DeliveryZone
		if err := rows.Scan(&z.ID, &z.ZoneName, &z.BasePrice, &z.CreatedAt); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (s *Store) CreateZone(ctx context.Context, zone *models.DeliveryZone) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO delivery_zones (id, zone_name, base_price)
		VALUES ($1, $2, $3)`,
		zone.ID, zone.ZoneName, zone.BasePrice,
	)
	return err
}

func (s *Store) DeleteZone(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM delivery_zones WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ── Orders ──────────────────────────────────────────────────────────────────

// CreateOrder assigns order_number inside the insert itself; the UNIQUE
// constraint turns a race between two submitters into an error instead of a
// silent collision.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO customer_orders (
			id, order_number, customer_name, delivery_method, address,
			distance_km, delivery_cost, total_items, subtotal, created_at
		) VALUES (
			$1, (SELECT COALESCE(MAX(order_number), 0) + 1 FROM customer_orders),
			$2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING order_number`,
		order.ID, order.CustomerName, order.Method, order.Address,
		order.DistanceKm, order.DeliveryCost, order.TotalItems, order.Subtotal, order.CreatedAt,
	).Scan(&order.OrderNumber)
	if err != nil {
		return err
	}

	for i := range order.Lines {
		line := &order.Lines[i]
		line.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_lines (order_id, name, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			line.OrderID, line.Name, line.Quantity, line.Price,
		).Scan(&line.ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, order_number, customer_name, delivery_method, address,
		       distance_km, delivery_cost, total_items, subtotal, created_at
		FROM customer_orders ORDER BY order_number DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.Method, &o.Address,
			&o.DistanceKm, &o.DeliveryCost, &o.TotalItems, &o.Subtotal, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := s.loadLines(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (s *Store) loadLines(ctx context.Context, order *models.Order) error {
	rows, err := s.pool.Query(ctx, `
		SELECT id, order_id, name, quantity, price
		FROM order_lines WHERE order_id = $1 ORDER BY id`,
		order.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var l models.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.Name, &l.Quantity, &l.Price); err != nil {
			return err
		}
		order.Lines = append(order.Lines, l)
	}
	return rows.Err()
}

// ── Users ───────────────────────────────────────────────────────────────────

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		user.Name, user.Email, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// ── Carts ───────────────────────────────────────────────────────────────────

func (s *Store) LoadCart(ctx context.Context, cartID string) ([]byte, error) {
	var snapshot []byte
	err := s.pool.QueryRow(ctx, `SELECT snapshot FROM carts WHERE cart_id = $1`, cartID).Scan(&snapshot)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *Store) SaveCart(ctx context.Context, cartID string, snapshot []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO carts (cart_id, snapshot, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (cart_id) DO UPDATE SET
			snapshot = $2,
			updated_at = now()`,
		cartID, snapshot,
	)
	return err
}

func (s *Store) DeleteCart(ctx context.Context, cartID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM carts WHERE cart_id = $1`, cartID)
	return err
}

func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

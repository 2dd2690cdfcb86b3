package gormstore

import (
	"context"
	"errors"
	"testing"

	"dimzia-storefront/models"
	"dimzia-storefront/store"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMenuCRUD(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	entry := models.MenuEntry{ID: "m1", Name: "Har Gow", Price: 6.50, Category: models.CategorySteamed, IsPopular: true}
	if err := s.CreateMenuEntry(ctx, &entry); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateMenuEntry(ctx, &models.MenuEntry{ID: "m2", Name: "Spring Rolls", Price: 4.80, Category: models.CategoryFried}); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetMenuEntry(ctx, "m1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Har Gow" || got.Price != 6.50 {
		t.Errorf("unexpected entry: %+v", got)
	}

	popular, err := s.ListMenu(ctx, store.MenuFilter{PopularOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(popular) != 1 || popular[0].ID != "m1" {
		t.Errorf("popular filter returned %+v", popular)
	}

	fried, err := s.ListMenu(ctx, store.MenuFilter{Category: models.CategoryFried})
	if err != nil {
		t.Fatal(err)
	}
	if len(fried) != 1 || fried[0].ID != "m2" {
		t.Errorf("category filter returned %+v", fried)
	}

	entry.Price = 7.20
	entry.IsPopular = false
	if err := s.UpdateMenuEntry(ctx, &entry); err != nil {
		t.Fatal(err)
	}
	got, _ = s.GetMenuEntry(ctx, "m1")
	if got.Price != 7.20 || got.IsPopular {
		t.Errorf("update not applied: %+v", got)
	}

	if err := s.DeleteMenuEntry(ctx, "m1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetMenuEntry(ctx, "m1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := s.DeleteMenuEntry(ctx, "m1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("double delete err = %v, want ErrNotFound", err)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	if err := store.EnsureSeed(ctx, s); err != nil {
		t.Fatal(err)
	}
	entries, err := s.ListMenu(ctx, store.MenuFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 10 {
		t.Fatalf("seeded %d entries, want 10", len(entries))
	}
	// Seeding twice must not duplicate the catalog.
	if err := store.EnsureSeed(ctx, s); err != nil {
		t.Fatal(err)
	}
	entries, _ = s.ListMenu(ctx, store.MenuFilter{})
	if len(entries) != 10 {
		t.Fatalf("re-seed grew the catalog to %d entries", len(entries))
	}
}

func TestCreateOrderAssignsSequentialNumbers(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	first := models.Order{
		ID:           "o1",
		CustomerName: "Ani",
		Method:       models.MethodPickup,
		TotalItems:   2,
		Subtotal:     13.0,
		Lines:        []models.OrderLine{{Name: "Har Gow", Quantity: 2, Price: 6.50}},
	}
	if err := s.CreateOrder(ctx, &first); err != nil {
		t.Fatal(err)
	}
	if first.OrderNumber != 1 {
		t.Errorf("first order number = %d, want 1", first.OrderNumber)
	}

	second := models.Order{
		ID:           "o2",
		CustomerName: "Budi",
		Method:       models.MethodDelivery,
		Address:      "Jl. Ahmad Yani 12",
		DeliveryCost: 9000,
		TotalItems:   1,
		Subtotal:     3.90,
		Lines:        []models.OrderLine{{Name: "Egg Tarts", Quantity: 1, Price: 3.90}},
	}
	if err := s.CreateOrder(ctx, &second); err != nil {
		t.Fatal(err)
	}
	if second.OrderNumber != 2 {
		t.Errorf("second order number = %d, want 2", second.OrderNumber)
	}

	listed, err := s.ListOrders(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 2 {
		t.Fatalf("listed %d orders, want 2", len(listed))
	}
	// Newest first.
	if listed[0].OrderNumber != 2 {
		t.Errorf("first listed order number = %d, want 2", listed[0].OrderNumber)
	}
	if len(listed[1].Lines) != 1 || listed[1].Lines[0].Name != "Har Gow" {
		t.Errorf("snapshot lines not loaded: %+v", listed[1].Lines)
	}
}

func TestCartSnapshotLifecycle(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	if data, err := s.LoadCart(ctx, "missing"); err != nil || data != nil {
		t.Fatalf("LoadCart(missing) = %v, %v; want nil, nil", data, err)
	}

	if err := s.SaveCart(ctx, "c1", []byte(`[{"quantity":2}]`)); err != nil {
		t.Fatal(err)
	}
	// Overwrite must replace, not duplicate.
	if err := s.SaveCart(ctx, "c1", []byte(`[{"quantity":5}]`)); err != nil {
		t.Fatal(err)
	}
	data, err := s.LoadCart(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[{"quantity":5}]` {
		t.Errorf("snapshot = %s", data)
	}

	if err := s.DeleteCart(ctx, "c1"); err != nil {
		t.Fatal(err)
	}
	if data, _ := s.LoadCart(ctx, "c1"); data != nil {
		t.Error("snapshot should be gone after delete")
	}
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	u := models.User{Name: "Admin", Email: "admin@dimzia.test", PasswordHash: "x", Role: models.RoleAdmin}
	if err := s.CreateUser(ctx, &u); err != nil {
		t.Fatal(err)
	}
	if u.ID == 0 {
		t.Fatal("user ID not assigned")
	}

	byEmail, err := s.GetUserByEmail(ctx, "admin@dimzia.test")
	if err != nil {
		t.Fatal(err)
	}
	if byEmail.Role != models.RoleAdmin {
		t.Errorf("role = %s, want admin", byEmail.Role)
	}

	if _, err := s.GetUserByEmail(ctx, "nobody@dimzia.test"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

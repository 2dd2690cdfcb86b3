package cart

import (
	"context"
	"testing"

	"dimzia-storefront/models"
)

type memStore struct {
	snapshots map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{snapshots: map[string][]byte{}}
}

func (m *memStore) LoadCart(_ context.Context, cartID string) ([]byte, error) {
	return m.snapshots[cartID], nil
}

func (m *memStore) SaveCart(_ context.Context, cartID string, snapshot []byte) error {
	m.snapshots[cartID] = snapshot
	return nil
}

func (m *memStore) DeleteCart(_ context.Context, cartID string) error {
	delete(m.snapshots, cartID)
	return nil
}

func harGow() models.MenuEntry {
	return models.MenuEntry{ID: "1", Name: "Har Gow", Price: 6.50}
}

func siuMai() models.MenuEntry {
	return models.MenuEntry{ID: "2", Name: "Siu Mai", Price: 5.80}
}

func TestAddAccumulates(t *testing.T) {
	ctx := context.Background()
	l := Open(ctx, newMemStore(), "c1")

	ack, err := l.Add(ctx, harGow(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if ack != "2 × Har Gow added to your cart" {
		t.Errorf("unexpected ack: %q", ack)
	}
	if _, err := l.Add(ctx, harGow(), 3); err != nil {
		t.Fatal(err)
	}

	if len(l.Lines()) != 1 {
		t.Fatalf("expected one line, got %d", len(l.Lines()))
	}
	if q := l.Lines()[0].Quantity; q != 5 {
		t.Errorf("quantity = %d, want 5", q)
	}
	if n := l.TotalItems(); n != 5 {
		t.Errorf("TotalItems = %d, want 5", n)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	l := Open(ctx, newMemStore(), "c1")
	if _, err := l.Add(ctx, harGow(), 2); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Add(ctx, siuMai(), 1); err != nil {
		t.Fatal(err)
	}

	if err := l.SetQuantity(ctx, "1", 0); err != nil {
		t.Fatal(err)
	}
	if len(l.Lines()) != 1 || l.Lines()[0].Item.ID != "2" {
		t.Fatalf("expected only Siu Mai left, got %+v", l.Lines())
	}
	if n := l.TotalItems(); n != 1 {
		t.Errorf("TotalItems = %d, want 1", n)
	}
}

func TestRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	l := Open(ctx, store, "c1")
	if _, err := l.Add(ctx, harGow(), 1); err != nil {
		t.Fatal(err)
	}

	if err := l.Remove(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	if len(l.Lines()) != 0 {
		t.Fatalf("expected empty cart after remove, got %+v", l.Lines())
	}

	if _, err := l.Add(ctx, siuMai(), 4); err != nil {
		t.Fatal(err)
	}
	if err := l.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if len(l.Lines()) != 0 || l.TotalItems() != 0 {
		t.Fatal("expected empty cart after clear")
	}
	if _, ok := store.snapshots["c1"]; ok {
		t.Error("clear should delete the persisted snapshot")
	}
}

func TestTotalPrice(t *testing.T) {
	ctx := context.Background()
	l := Open(ctx, newMemStore(), "c1")
	l.Add(ctx, harGow(), 2) // 13.00
	l.Add(ctx, siuMai(), 1) // 5.80

	want := 2*6.50 + 5.80
	if got := l.TotalPrice(); got != want {
		t.Errorf("TotalPrice = %v, want %v", got, want)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	l := Open(ctx, store, "c1")
	l.Add(ctx, siuMai(), 3)
	l.Add(ctx, harGow(), 1)

	reopened := Open(ctx, store, "c1")
	lines := reopened.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines after rehydrate, got %d", len(lines))
	}
	// Insertion order survives the round trip.
	if lines[0].Item.ID != "2" || lines[0].Quantity != 3 {
		t.Errorf("first line = %+v", lines[0])
	}
	if lines[1].Item.ID != "1" || lines[1].Quantity != 1 {
		t.Errorf("second line = %+v", lines[1])
	}
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.snapshots["c1"] = []byte("{not json")

	l := Open(ctx, store, "c1")
	if len(l.Lines()) != 0 {
		t.Fatalf("expected empty cart for corrupt snapshot, got %+v", l.Lines())
	}
	// The cart must stay usable after recovery.
	if _, err := l.Add(ctx, harGow(), 1); err != nil {
		t.Fatal(err)
	}
	if l.TotalItems() != 1 {
		t.Error("cart unusable after corrupt snapshot recovery")
	}
}

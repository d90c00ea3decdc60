package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/logitrack/internal/domain"
)

func snapshot(names ...string) []domain.InventoryItem {
	items := make([]domain.InventoryItem, 0, len(names))
	for i, n := range names {
		items = append(items, domain.InventoryItem{ID: int64(i + 1), Name: n, Quantity: 1})
	}
	return items
}

func TestSetGet_HitMiss(t *testing.T) {
	c := NewSnapshotCache()
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, InventoryListKey); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	c.Set(ctx, InventoryListKey, snapshot("a", "b"), 5*time.Minute)
	got, ok := c.Get(ctx, InventoryListKey)
	if !ok || len(got) != 2 {
		t.Fatalf("expected hit with 2 items, got ok=%v len=%d", ok, len(got))
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewSnapshotCache()
	ctx := context.Background()

	c.Set(ctx, InventoryListKey, snapshot("x"), 100*time.Millisecond)
	if _, ok := c.Get(ctx, InventoryListKey); !ok {
		t.Fatalf("expected hit right after Set")
	}
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get(ctx, InventoryListKey); ok {
		t.Fatalf("expected miss after TTL expires")
	}
}

// Скользящее окно: доступ внутри окна продлевает жизнь записи.
func TestTTL_SlidingWindowRenewedByGet(t *testing.T) {
	c := NewSnapshotCache()
	ctx := context.Background()

	c.Set(ctx, InventoryListKey, snapshot("x"), 200*time.Millisecond)

	// t≈120ms — доступ продлевает окно ещё на 200ms
	time.Sleep(120 * time.Millisecond)
	if _, ok := c.Get(ctx, InventoryListKey); !ok {
		t.Fatalf("expected hit inside the window")
	}

	// t≈240ms от Set — без продления запись бы истекла
	time.Sleep(120 * time.Millisecond)
	if _, ok := c.Get(ctx, InventoryListKey); !ok {
		t.Fatalf("expected hit: window must slide on access")
	}

	// без доступа окно истекает
	time.Sleep(250 * time.Millisecond)
	if _, ok := c.Get(ctx, InventoryListKey); ok {
		t.Fatalf("expected miss after idle period")
	}
}

func TestRemove_Idempotent(t *testing.T) {
	c := NewSnapshotCache()
	ctx := context.Background()

	c.Set(ctx, InventoryListKey, snapshot("x"), 0)
	c.Remove(ctx, InventoryListKey)
	if _, ok := c.Get(ctx, InventoryListKey); ok {
		t.Fatalf("expected miss after Remove")
	}

	// повторный Remove — такой же no-op
	c.Remove(ctx, InventoryListKey)
	if _, ok := c.Get(ctx, InventoryListKey); ok {
		t.Fatalf("expected miss after repeated Remove")
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewSnapshotCache()
	ctx := context.Background()

	orig := snapshot("original")
	c.Set(ctx, InventoryListKey, orig, 0)

	// меняем то, что вернул Get — не должно влиять на кэш
	got1, _ := c.Get(ctx, InventoryListKey)
	got1[0].Name = "changed"

	got2, _ := c.Get(ctx, InventoryListKey)
	if got2[0].Name != "original" {
		t.Fatalf("cache content mutated through returned slice: %q", got2[0].Name)
	}

	// и мутация исходного слайса после Set тоже не видна
	orig[0].Name = "mutated-source"
	got3, _ := c.Get(ctx, InventoryListKey)
	if got3[0].Name != "original" {
		t.Fatalf("cache content aliased with source slice: %q", got3[0].Name)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	c := NewSnapshotCache()
	ctx := context.Background()

	c.Set(ctx, "a", snapshot("a"), 0)
	c.Set(ctx, "b", snapshot("b"), 0)

	c.Remove(ctx, "a")

	if _, ok := c.Get(ctx, "a"); ok {
		t.Fatalf("key a must be gone")
	}
	if _, ok := c.Get(ctx, "b"); !ok {
		t.Fatalf("key b must survive removal of key a")
	}
}

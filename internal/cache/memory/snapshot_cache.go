package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/logitrack/internal/domain"
	"github.com/Gunvolt24/logitrack/internal/ports"
	"github.com/Gunvolt24/logitrack/pkg/metrics"
)

// InventoryListKey — единственный ключ снимка инвентаря в этом сервисе.
const InventoryListKey = "inventoryList"

// Проверка, что SnapshotCache удовлетворяет интерфейсу ports.ListCache.
var _ ports.ListCache = (*SnapshotCache)(nil)

type entry struct {
	items     []domain.InventoryItem
	ttl       time.Duration
	expiresAt time.Time
}

// SnapshotCache — кэш снимков инвентаря со скользящим TTL.
// Истечение ленивое: просроченная запись удаляется при следующем доступе,
// без фонового обхода. Ключи независимы; значения копируются на входе и
// выходе, чтобы внешние мутации не трогали содержимое кэша.
type SnapshotCache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewSnapshotCache — конструктор. Кэш инжектируется в сервисы явно
// (никакого глобального синглтона: тестам нужен свежий экземпляр).
func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{entries: make(map[string]*entry)}
}

// Get — вернуть снимок по ключу. Успешный доступ продлевает окно на ttl
// (скользящее, а не абсолютное истечение).
func (c *SnapshotCache) Get(_ context.Context, key string) ([]domain.InventoryItem, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	if isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		delete(c.entries, key)
		metrics.CacheSize.Set(float64(len(c.entries)))
		return nil, false
	}

	if ent.ttl > 0 {
		ent.expiresAt = now.Add(ent.ttl)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneItems(ent.items), true
}

// Set — сохранить снимок и запустить окно TTL заново. ttl <= 0 — без истечения.
func (c *SnapshotCache) Set(_ context.Context, key string, items []domain.InventoryItem, ttl time.Duration) {
	if key == "" {
		return
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &entry{
		items:     cloneItems(items),
		ttl:       ttl,
		expiresAt: expiryFrom(now, ttl),
	}
	metrics.CacheOps.WithLabelValues("set").Inc()
	metrics.CacheSize.Set(float64(len(c.entries)))
}

// Remove — безусловная инвалидация; повторный вызов для отсутствующего
// ключа — такой же no-op, как и первый.
func (c *SnapshotCache) Remove(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	metrics.CacheOps.WithLabelValues("invalidate").Inc()
	metrics.CacheSize.Set(float64(len(c.entries)))
}

// ------вспомогательные функции------

func isExpired(ent *entry, now time.Time) bool {
	if ent.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func expiryFrom(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

// cloneItems — копия снимка, чтобы изменения у вызывающего
// не отражались на данных внутри кэша.
func cloneItems(items []domain.InventoryItem) []domain.InventoryItem {
	if items == nil {
		return nil
	}
	return append([]domain.InventoryItem(nil), items...)
}

package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/logitrack/internal/domain"
)

// ListCache — кэш денормализованных снимков инвентаря по строковому ключу.
// Требования к реализации: потокобезопасность; скользящий TTL (успешный Get
// продлевает окно); возврат копий значения; ошибки наружу не отдаются —
// истёкшая или отсутствующая запись просто промах.
type ListCache interface {
	// Get — вернуть снимок по ключу; (snapshot, true) при попадании,
	// (nil, false) при промахе или истечении TTL.
	Get(ctx context.Context, key string) ([]domain.InventoryItem, bool)

	// Set — сохранить снимок по ключу и запустить окно TTL заново.
	Set(ctx context.Context, key string, items []domain.InventoryItem, ttl time.Duration)

	// Remove — безусловная инвалидация; no-op для отсутствующего ключа.
	Remove(ctx context.Context, key string)
}

package ports

import (
	"context"

	"github.com/Gunvolt24/logitrack/internal/domain"
)

// InventoryRepository — хранилище складских позиций.
// Каждая мутирующая операция — одна атомарная транзакция.
type InventoryRepository interface {
	// Create — сохраняет позицию и возвращает её копию с назначенным ID.
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)

	// GetByID — вернуть позицию по ID; (nil, nil), если записи нет.
	GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error)

	// List — полный снимок всех позиций (для кэшируемой выдачи).
	List(ctx context.Context) ([]domain.InventoryItem, error)

	// Delete — удалить позицию; (false, nil), если записи не было.
	Delete(ctx context.Context, id int64) (bool, error)
}

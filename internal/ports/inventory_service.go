package ports

import (
	"context"

	"github.com/Gunvolt24/logitrack/internal/domain"
)

// InventoryService — прикладные операции над инвентарём (контракт для транспорта).
type InventoryService interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
	AddItem(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, id int64) error
}

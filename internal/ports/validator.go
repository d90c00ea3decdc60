package ports

import (
	"context"

	"github.com/Gunvolt24/logitrack/internal/domain"
)

// ItemValidator — доменная валидация складской позиции.
type ItemValidator interface {
	Validate(ctx context.Context, item *domain.InventoryItem) error
}

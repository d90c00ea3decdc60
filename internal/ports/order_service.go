package ports

import (
	"context"

	"github.com/Gunvolt24/logitrack/internal/domain"
)

// OrderService — прикладные операции над заказами (контракт для транспорта).
type OrderService interface {
	ListOrders(ctx context.Context, limit, offset int) ([]*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	CreateOrder(ctx context.Context, customerName string, itemIDs []int64) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

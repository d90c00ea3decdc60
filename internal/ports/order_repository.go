package ports

import (
	"context"

	"github.com/Gunvolt24/logitrack/internal/domain"
)

// OrderRepository — хранилище заказов и их связей с позициями.
type OrderRepository interface {
	// Create — транзакционно сохраняет заказ вместе со связями order_items
	// и возвращает копию с назначенным ID. Частичных записей не бывает:
	// либо заказ со всеми связями, либо ничего.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// GetByID — заказ с подгруженными позициями; (nil, nil), если записи нет.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// List — постраничный список заказов с позициями (новые первыми).
	List(ctx context.Context, limit, offset int) ([]*domain.Order, error)

	// Delete — транзакционно удаляет заказ и его связи; (false, nil), если записи не было.
	Delete(ctx context.Context, id int64) (bool, error)
}

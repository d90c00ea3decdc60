package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/logitrack/internal/domain"
	"github.com/Gunvolt24/logitrack/internal/ports"
	"github.com/Gunvolt24/logitrack/pkg/validate"
)

// Проверка, что OrderService удовлетворяет интерфейсу ports.OrderService.
var _ ports.OrderService = (*OrderService)(nil)

// OrderService — прикладная логика заказов. Зависит только от хранилища:
// заказы в этом сервисе не кэшируются.
type OrderService struct {
	orders ports.OrderRepository     // хранилище заказов
	items  ports.InventoryRepository // хранилище позиций (для резолва ссылок)
	log    ports.Logger              // логгер
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	orders ports.OrderRepository,
	items ports.InventoryRepository,
	log ports.Logger,
) *OrderService {
	return &OrderService{
		orders: orders,
		items:  items,
		log:    log,
	}
}

// ListOrders — постраничный список заказов с позициями.
func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) ([]*domain.Order, error) {
	return s.orders.List(ctx, limit, offset)
}

// GetOrder — заказ по ID с позициями. (nil, nil), если записи нет.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// CreateOrder — создаёт заказ из имени клиента и списка ссылок на позиции.
// Валидация ссылочной целостности выполняется ДО любой записи: каждый ID
// резолвится в хранилище, первый неразрешённый прерывает операцию с
// validate.ErrInvalidOrder (с виновным ID) — частичных коммитов не бывает.
// Повторные ID схлопываются (первое вхождение побеждает). OrderDate
// проставляется здесь; клиентская дата игнорируется. Пустой список позиций
// допустим. Атрибуты позиций берутся из хранилища, а не из запроса.
func (s *OrderService) CreateOrder(ctx context.Context, customerName string, itemIDs []int64) (*domain.Order, error) {
	if err := validate.ValidateCustomerName(customerName); err != nil {
		s.log.Warnf(ctx, "order validation failed err=%v", err)
		return nil, err
	}

	order := &domain.Order{
		CustomerName: customerName,
		OrderDate:    time.Now().UTC(),
	}

	for _, id := range itemIDs {
		if order.ContainsItem(id) {
			continue // дубликат в запросе — no-op
		}
		item, err := s.items.GetByID(ctx, id)
		if err != nil {
			s.log.Errorf(ctx, "items.GetByID failed id=%d err=%v", id, err)
			return nil, err
		}
		if item == nil {
			s.log.Warnf(ctx, "order references unknown inventory item id=%d", id)
			return nil, validate.UnknownItemError(id)
		}
		order.AddItem(*item)
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.log.Errorf(ctx, "orders.Create failed customer=%q err=%v", customerName, err)
		return nil, err
	}

	s.log.Infof(ctx, "order created id=%d customer=%q items=%d", created.ID, created.CustomerName, len(created.Items))
	return created, nil
}

// DeleteOrder — удаляет заказ и его связи атомарно; ErrNotFound, если записи нет.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	deleted, err := s.orders.Delete(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "orders.Delete failed id=%d err=%v", id, err)
		return err
	}
	if !deleted {
		return fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}

	s.log.Infof(ctx, "order deleted id=%d", id)
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/logitrack/internal/domain"
	"github.com/Gunvolt24/logitrack/internal/ports"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу ports.OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Create — транзакционно сохраняет заказ и связи order_items.
// Либо коммитится всё (заказ + связи), либо ничего.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if order.CustomerName == "" {
		return nil, errors.New("customer_name is required")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	created := *order
	created.Items = append([]domain.InventoryItem(nil), order.Items...)

	// 1) orders — вставка, ID назначает база.
	if err := transaction.QueryRow(ctx, `
		INSERT INTO orders (customer_name, order_date)
		VALUES ($1, $2)
		RETURNING id
	`, order.CustomerName, order.OrderDate).Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	// 2) order_items — связи через COPY (быстрее, чем INSERT в цикле).
	if len(created.Items) > 0 {
		if err := copyOrderItems(ctx, transaction, created.ID, created.Items); err != nil {
			return nil, err
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &created, nil
}

// GetByID — заказ с позициями; (nil, nil), если записи нет.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order

	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_name, order_date
		FROM orders WHERE id = $1
	`, id).Scan(&order.ID, &order.CustomerName, &order.OrderDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}

	// items (0..N)
	rows, err := r.pool.Query(ctx, `
		SELECT i.id, i.name, i.quantity, i.location
		FROM order_items oi
		JOIN inventory_items i ON i.id = oi.item_id
		WHERE oi.order_id = $1
		ORDER BY i.id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item     domain.InventoryItem
			location sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &location); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		item.Location = location.String
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order items rows: %w", err)
	}

	return &order, nil
}

// List — постраничный список заказов (новые первыми) с позициями.
// Два запроса на страницу: базовые заказы + связи через ANY, склейка в памяти.
func (r *OrderRepository) List(ctx context.Context, limit, offset int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	// 1) База заказов для страницы.
	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_name, order_date
		FROM orders
		ORDER BY order_date DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, limit)
	byID := make(map[int64]*domain.Order, limit)
	ids := make([]int64, 0, limit)

	for rows.Next() {
		order := &domain.Order{}
		if err := rows.Scan(&order.ID, &order.CustomerName, &order.OrderDate); err != nil {
			return nil, fmt.Errorf("scan order base: %w", err)
		}
		orders = append(orders, order)
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil // пустая страница
	}

	// 2) Позиции для всех ID страницы.
	iRows, err := r.pool.Query(ctx, `
		SELECT oi.order_id, i.id, i.name, i.quantity, i.location
		FROM order_items oi
		JOIN inventory_items i ON i.id = oi.item_id
		WHERE oi.order_id = ANY($1::bigint[])
		ORDER BY oi.order_id, i.id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer iRows.Close()

	for iRows.Next() {
		var (
			orderID  int64
			item     domain.InventoryItem
			location sql.NullString
		)
		if err := iRows.Scan(&orderID, &item.ID, &item.Name, &item.Quantity, &location); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		item.Location = location.String
		if order := byID[orderID]; order != nil {
			order.Items = append(order.Items, item)
		}
	}
	if err := iRows.Err(); err != nil {
		return nil, fmt.Errorf("order items rows: %w", err)
	}

	return orders, nil
}

// Delete — транзакционно удаляет связи и сам заказ.
// (false, nil) — записи не было.
func (r *OrderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if _, err := transaction.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return false, fmt.Errorf("delete order items: %w", err)
	}

	tag, err := transaction.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}

	if err := transaction.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// copyOrderItems — вставка связей через COPY (CopyFromRows).
func copyOrderItems(ctx context.Context, tx pgx.Tx, orderID int64, items []domain.InventoryItem) error {
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{orderID, item.ID})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_items"},
		[]string{"order_id", "item_id"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy order items: %w", err)
	}
	return nil
}

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

// Проверка, что InventoryRepository удовлетворяет интерфейсу ports.InventoryRepository.
var _ ports.InventoryRepository = (*InventoryRepository)(nil)

// InventoryRepository — реализация репозитория позиций на Postgres (pgxpool).
type InventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository — конструктор InventoryRepository.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{pool: pool}
}

// Create — вставка позиции; ID назначает база (RETURNING id).
func (r *InventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if item == nil {
		return nil, errors.New("item is nil")
	}

	created := *item
	err := r.pool.QueryRow(ctx, `
		INSERT INTO inventory_items (name, quantity, location)
		VALUES ($1, $2, $3)
		RETURNING id
	`, item.Name, item.Quantity, nullIfEmpty(item.Location)).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert inventory item: %w", err)
	}
	return &created, nil
}

// GetByID — позиция по ID; (nil, nil), если записи нет.
func (r *InventoryRepository) GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	var (
		item     domain.InventoryItem
		location sql.NullString
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, quantity, location
		FROM inventory_items WHERE id = $1
	`, id).Scan(&item.ID, &item.Name, &item.Quantity, &location)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select inventory item: %w", err)
	}
	item.Location = location.String
	return &item, nil
}

// List — полный снимок инвентаря (порядок стабильный, по id).
func (r *InventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, quantity, location
		FROM inventory_items
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select inventory: %w", err)
	}
	defer rows.Close()

	items := make([]domain.InventoryItem, 0)
	for rows.Next() {
		var (
			item     domain.InventoryItem
			location sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &location); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		item.Location = location.String
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("inventory rows: %w", err)
	}
	return items, nil
}

// Delete — удаляет позицию; связи order_items снимает каскад в схеме.
// (false, nil) — записи не было.
func (r *InventoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete inventory item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// nullIfEmpty — пустая строка хранится как NULL (location опционален).
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

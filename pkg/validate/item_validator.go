package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/logitrack/internal/domain"
	"github.com/Gunvolt24/logitrack/internal/ports"
)

// Проверка, что ItemValidator удовлетворяет интерфейсу ports.ItemValidator.
var _ ports.ItemValidator = (*ItemValidator)(nil)

// ErrInvalidItem — базовая (sentinel error) ошибка валидации позиции.
var ErrInvalidItem = errors.New("inventory item validation failed")

// ItemValidator — структура для валидации складской позиции.
type ItemValidator struct{}

// NewItemValidator — конструктор ItemValidator.
// Validate возвращает ErrInvalidItem (с обёрнутой причиной) при любой проблеме.
func NewItemValidator() *ItemValidator { return &ItemValidator{} }

// Validate — проверяет корректность полей позиции.
// Quantity намеренно не ограничиваем: отрицательные остатки пропускаются как есть.
func (v *ItemValidator) Validate(_ context.Context, item *domain.InventoryItem) error {
	if item == nil {
		return fmt.Errorf("%w: позиция не может быть nil", ErrInvalidItem)
	}
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidItem)
	}
	return nil
}

package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/logitrack/internal/domain"
	"github.com/Gunvolt24/logitrack/internal/ports"
)

// ValidateItemFromJSON — валидация складской позиции из JSON.
// Декодирование строгое: неизвестные поля и хвостовые данные — ошибка.
func ValidateItemFromJSON(ctx context.Context, validator ports.ItemValidator, raw []byte) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&item); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных вне объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.Validate(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

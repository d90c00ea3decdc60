package validate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации запроса на заказ.
// Сюда же заворачивается ссылка на несуществующую позицию при создании заказа.
var ErrInvalidOrder = errors.New("order validation failed")

// ValidateCustomerName — проверка обязательного имени клиента.
func ValidateCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return fmt.Errorf("%w: customer_name обязателен", ErrInvalidOrder)
	}
	return nil
}

// UnknownItemError — формирует ошибку для первой неразрешённой ссылки на позицию.
// ID оставляем в тексте, чтобы граница могла назвать виновника.
func UnknownItemError(itemID int64) error {
	return fmt.Errorf("%w: inventory item %d not found", ErrInvalidOrder, itemID)
}

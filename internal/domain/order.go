package domain

import "time"

// Order — заказ с привязанными складскими позициями (many-to-many через
// таблицу order_items). OrderDate проставляется сервисом при создании,
// клиентское значение игнорируется.
type Order struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	OrderDate    time.Time       `json:"order_date"`
	Items        []InventoryItem `json:"items"`
}

// AddItem — идемпотентное добавление позиции по ID:
// повторное добавление уже привязанной позиции — no-op.
func (o *Order) AddItem(item InventoryItem) {
	if o.ContainsItem(item.ID) {
		return
	}
	o.Items = append(o.Items, item)
}

// RemoveItem — идемпотентное удаление позиции по ID:
// удаление отсутствующей позиции — no-op, не ошибка.
func (o *Order) RemoveItem(itemID int64) {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			return
		}
	}
}

// ContainsItem — входит ли позиция с данным ID в заказ.
func (o *Order) ContainsItem(itemID int64) bool {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return true
		}
	}
	return false
}

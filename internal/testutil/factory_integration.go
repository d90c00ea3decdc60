//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/logitrack/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeItem — мини-генератор валидной складской позиции.
func MakeItem(opts ...func(*domain.InventoryItem)) domain.InventoryItem {
	item := domain.InventoryItem{
		Name:     "Widget-" + UniqSuffix(),
		Quantity: 10,
		Location: "Aisle-1",
	}
	for _, fn := range opts {
		fn(&item)
	}
	return item
}

func WithName(name string) func(*domain.InventoryItem) {
	return func(i *domain.InventoryItem) { i.Name = name }
}

func WithQuantity(q int) func(*domain.InventoryItem) {
	return func(i *domain.InventoryItem) { i.Quantity = q }
}

// MakeOrder — заказ без позиций; позиции подвешиваются через AddItem
// после того, как они созданы в хранилище.
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	o := domain.Order{
		CustomerName: "customer-" + UniqSuffix(),
		OrderDate:    time.Now().UTC().Truncate(time.Second),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithCustomer(name string) func(*domain.Order) {
	return func(o *domain.Order) { o.CustomerName = name }
}

package domain

// InventoryItem — складская позиция. ID назначается хранилищем и после
// создания не меняется. Location может отсутствовать.
type InventoryItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Location string `json:"location,omitempty"`
}

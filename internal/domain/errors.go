package domain

import "errors"

// ErrNotFound — операция адресует несуществующий ID.
// Отличается от ошибки валидации: состояние не меняется,
// транспорт отдаёт 404, а не 400.
var ErrNotFound = errors.New("not found")

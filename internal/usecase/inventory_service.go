package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/logitrack/internal/cache/memory"
	"github.com/Gunvolt24/logitrack/internal/domain"
	"github.com/Gunvolt24/logitrack/internal/ports"
)

// Проверка, что InventoryService удовлетворяет интерфейсу ports.InventoryService.
var _ ports.InventoryService = (*InventoryService)(nil)

// InventoryService — прикладная логика инвентаря (без знаний о транспорте).
// Единственное разделяемое изменяемое состояние — снимок по ключу
// memory.InventoryListKey; гонки вида «двойной промах» допустимы:
// оба промаха читают базу, последний Set побеждает, снимки эквивалентны.
type InventoryService struct {
	repo      ports.InventoryRepository // прямой доступ к хранилищу
	cache     ports.ListCache           // кэш снимка инвентаря
	log       ports.Logger              // логгер
	validator ports.ItemValidator       // валидатор позиции
	ttl       time.Duration             // скользящее окно снимка
}

// NewInventoryService — DI-конструктор.
func NewInventoryService(
	repo ports.InventoryRepository,
	cache ports.ListCache,
	log ports.Logger,
	validator ports.ItemValidator,
	ttl time.Duration,
) *InventoryService {
	return &InventoryService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
		ttl:       ttl,
	}
}

// List — cache-aside чтение снимка инвентаря.
// Попадание возвращает кэшированный снимок как есть (допустимая
// устарелость ограничена ttl); промах читает базу целиком и кладёт
// результат в кэш.
func (s *InventoryService) List(ctx context.Context) ([]domain.InventoryItem, error) {
	if items, found := s.cache.Get(ctx, memory.InventoryListKey); found {
		s.log.Infof(ctx, "cache hit for inventory list (%d items)", len(items))
		return items, nil
	}
	s.log.Infof(ctx, "cache miss for inventory list")

	start := time.Now()
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Errorf(ctx, "repo.List failed err=%v", err)
		return nil, err
	}

	s.cache.Set(ctx, memory.InventoryListKey, items, s.ttl)

	s.log.Infof(ctx, "db fetch inventory list items=%d took=%s", len(items), time.Since(start))
	return items, nil
}

// AddItem — валидация, запись в базу и безусловная инвалидация снимка.
// Инвалидация идёт после коммита в рамках той же операции: следующий
// List гарантированно увидит новую позицию.
func (s *InventoryService) AddItem(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if err := s.validator.Validate(ctx, item); err != nil {
		s.log.Warnf(ctx, "item validation failed err=%v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.log.Errorf(ctx, "repo.Create failed name=%q err=%v", item.Name, err)
		return nil, err
	}

	s.cache.Remove(ctx, memory.InventoryListKey)

	s.log.Infof(ctx, "inventory item added id=%d name=%q", created.ID, created.Name)
	return created, nil
}

// DeleteItem — удаление по ID. Отсутствующая запись — ErrNotFound без
// мутаций и без инвалидации; успешное удаление инвалидирует снимок.
func (s *InventoryService) DeleteItem(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.Delete failed id=%d err=%v", id, err)
		return err
	}
	if !deleted {
		return fmt.Errorf("inventory item %d: %w", id, domain.ErrNotFound)
	}

	s.cache.Remove(ctx, memory.InventoryListKey)

	s.log.Infof(ctx, "inventory item deleted id=%d", id)
	return nil
}

// SaveFromMessage — сохранить позицию, пришедшую из интейк-топика (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) —> отлавливаем незадокументированные поля;
//  2. доменная валидация (вернёт validate.ErrInvalidItem при проблемах);
//  3. запись в БД;
//  4. инвалидация снимка инвентаря.
func (s *InventoryService) SaveFromMessage(ctx context.Context, raw []byte) error {
	var item domain.InventoryItem
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&item); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("invalid json: %w", err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("invalid json: trailing data")
	}

	// ID назначает база; пришедшее из сообщения значение игнорируем.
	item.ID = 0

	if _, err := s.AddItem(ctx, &item); err != nil {
		return err
	}
	return nil
}

// WarmUp — прогрев снимка инвентаря на старте (необязательный).
func (s *InventoryService) WarmUp(ctx context.Context) error {
	start := time.Now()
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Errorf(ctx, "warm-up repo.List failed err=%v", err)
		return err
	}
	s.cache.Set(ctx, memory.InventoryListKey, items, s.ttl)
	s.log.Infof(ctx, "inventory cache warmed with %d items in %s", len(items), time.Since(start))
	return nil
}

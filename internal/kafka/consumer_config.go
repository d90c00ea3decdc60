package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ConsumerConfig — настройки консьюмера интейк-топика инвентаря.
type ConsumerConfig struct {
	Brokers        []string
	Topic          string
	GroupID        string
	StartOffset    string
	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// readerConfig — конфигурация kafka.Reader с ручным коммитом оффсетов
// (CommitInterval = 0): оффсет фиксируется только после обработки.
func (c *ConsumerConfig) readerConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
	}

	// Нормализация: регистр и пробелы в значении не важны; всё,
	// кроме "first", трактуем как "last".
	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}

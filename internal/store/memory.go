package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"

	"velo-altitude/internal/metrics"
)

// Memory is an in-process Store. Records are kept encoded so callers never
// share mutable state with the store.
type Memory[T any] struct {
	mu      sync.RWMutex
	records map[Key][]byte
}

func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{records: make(map[Key][]byte)}
}

func (m *Memory[T]) Get(_ context.Context, key Key) (*T, error) {
	m.mu.RLock()
	data, ok := m.records[key]
	m.mu.RUnlock()
	if !ok {
		metrics.StoreOperations.WithLabelValues(opGet, metrics.OutcomeMiss).Inc()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	var record T
	err := json.Unmarshal(data, &record)
	metrics.RecordStoreOp(opGet, err)
	if err != nil {
		return nil, fmt.Errorf("failed to decode record %s: %w", key, err)
	}
	return &record, nil
}

func (m *Memory[T]) Put(_ context.Context, key Key, record *T) error {
	data, err := json.Marshal(record)
	if err != nil {
		metrics.RecordStoreOp(opPut, err)
		return fmt.Errorf("failed to encode record %s: %w", key, err)
	}

	m.mu.Lock()
	m.records[key] = data
	m.mu.Unlock()

	metrics.RecordStoreOp(opPut, nil)
	return nil
}

func (m *Memory[T]) Exists(_ context.Context, key Key) (bool, error) {
	m.mu.RLock()
	_, ok := m.records[key]
	m.mu.RUnlock()

	metrics.RecordStoreOp(opExists, nil)
	return ok, nil
}

func (m *Memory[T]) Delete(_ context.Context, key Key) error {
	m.mu.Lock()
	delete(m.records, key)
	m.mu.Unlock()

	metrics.RecordStoreOp(opDelete, nil)
	return nil
}

// Len returns the number of stored records.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

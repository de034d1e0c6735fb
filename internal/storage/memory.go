package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryStorage is an in-memory Storage implementation, the default for a
// single interactive session. Entries live until the process exits.
type MemoryStorage struct {
	mu      sync.RWMutex
	tariffs []CustomTariff
}

// NewMemory returns an empty MemoryStorage.
func NewMemory() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Close() error { return nil }

func (m *MemoryStorage) Ping(ctx context.Context) error { return nil }

// ListCustomTariffs returns all custom tariffs in insertion order.
func (m *MemoryStorage) ListCustomTariffs(ctx context.Context) ([]CustomTariff, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]CustomTariff, len(m.tariffs))
	copy(out, m.tariffs)
	return out, nil
}

// AppendCustomTariff adds a tariff at the end of the collection.
func (m *MemoryStorage) AppendCustomTariff(ctx context.Context, t CustomTariff) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	t.Seq = int64(len(m.tariffs) + 1)
	m.tariffs = append(m.tariffs, t)
	return nil
}

// CountCustomTariffs returns the number of stored custom tariffs.
func (m *MemoryStorage) CountCustomTariffs(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tariffs), nil
}

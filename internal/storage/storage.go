package storage

import "context"

// Storage abstracts the session-scoped custom tariff collection. The
// collection is append-only: entries are never edited or removed, and
// ListCustomTariffs returns them in insertion order.
type Storage interface {
	ListCustomTariffs(ctx context.Context) ([]CustomTariff, error)
	AppendCustomTariff(ctx context.Context, t CustomTariff) error
	CountCustomTariffs(ctx context.Context) (int, error)

	// Ping reports whether the backend is usable.
	Ping(ctx context.Context) error

	// Close releases any resources (no-op for in-memory).
	Close() error
}

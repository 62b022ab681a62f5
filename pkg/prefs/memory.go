package prefs

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"time"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// MemoryStore is an in-process Store, used by the CLI in offline mode and
// in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	values  map[string]map[string]domain.Preference
	nowFunc func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithNowFunc overrides the clock used for UpdatedAt (for testing).
func WithNowFunc(fn func() time.Time) MemoryOption {
	return func(m *MemoryStore) {
		m.nowFunc = fn
	}
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	m := &MemoryStore{
		values:  make(map[string]map[string]domain.Preference),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetPreference implements Store.
func (m *MemoryStore) GetPreference(
	_ context.Context,
	userID, key string,
) (*domain.Preference, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.values[userID][key]
	if !ok {
		return nil, ErrNotFound
	}
	p.Value = slices.Clone(p.Value)
	return &p, nil
}

// SetPreference implements Store.
func (m *MemoryStore) SetPreference(
	_ context.Context,
	userID, key string,
	value json.RawMessage,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.values[userID] == nil {
		m.values[userID] = make(map[string]domain.Preference)
	}
	m.values[userID][key] = domain.Preference{
		UserID:    userID,
		Key:       key,
		Value:     slices.Clone(value),
		UpdatedAt: m.nowFunc(),
	}
	return nil
}

// DeletePreference implements Store.
func (m *MemoryStore) DeletePreference(_ context.Context, userID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values[userID], key)
	return nil
}

// ListPreferences implements Store. Results are sorted by key.
func (m *MemoryStore) ListPreferences(
	_ context.Context,
	userID string,
) ([]domain.Preference, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Preference, 0, len(m.values[userID]))
	for _, p := range m.values[userID] {
		p.Value = slices.Clone(p.Value)
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b domain.Preference) int {
		return strings.Compare(a.Key, b.Key)
	})
	return out, nil
}

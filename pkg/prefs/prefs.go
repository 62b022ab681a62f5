// Package prefs stores small per-user JSON values such as onboarding flags,
// dismissed tips and cached UI state.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// MaxValueBytes caps a single preference value.
const MaxValueBytes = 64 << 10

var (
	// ErrNotFound is returned when a key has no stored value.
	ErrNotFound = errors.New("preference not found")
	// ErrInvalidKey is returned for keys outside [a-z0-9._-]{1,128}.
	ErrInvalidKey = errors.New("invalid preference key")
	// ErrInvalidValue is returned for values that are not JSON or too large.
	ErrInvalidValue = errors.New("invalid preference value")
)

var keyRegex = regexp.MustCompile(`^[a-z0-9._-]{1,128}$`)

// Store is the key-value backend. Implementations must return ErrNotFound
// (possibly wrapped) for missing keys.
type Store interface {
	GetPreference(ctx context.Context, userID, key string) (*domain.Preference, error)
	SetPreference(ctx context.Context, userID, key string, value json.RawMessage) error
	DeletePreference(ctx context.Context, userID, key string) error
	ListPreferences(ctx context.Context, userID string) ([]domain.Preference, error)
}

// Service validates keys and values before they reach the Store.
type Service struct {
	store Store
}

// NewService wraps a Store.
func NewService(s Store) *Service {
	return &Service{store: s}
}

// ValidateKey checks a preference key.
func ValidateKey(key string) error {
	if !keyRegex.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// Get returns the stored preference.
func (s *Service) Get(ctx context.Context, userID, key string) (*domain.Preference, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return s.store.GetPreference(ctx, userID, key)
}

// Set stores a raw JSON value.
func (s *Service) Set(ctx context.Context, userID, key string, value json.RawMessage) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if len(value) > MaxValueBytes {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrInvalidValue, len(value), MaxValueBytes)
	}
	if !json.Valid(value) {
		return fmt.Errorf("%w: not valid JSON", ErrInvalidValue)
	}
	return s.store.SetPreference(ctx, userID, key, value)
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *Service) Delete(ctx context.Context, userID, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	return s.store.DeletePreference(ctx, userID, key)
}

// List returns every preference for a user.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Preference, error) {
	return s.store.ListPreferences(ctx, userID)
}

// Load decodes a stored value into v. It returns false without error when
// the key is missing.
func Load[T any](ctx context.Context, s *Service, userID, key string, v *T) (bool, error) {
	p, err := s.Get(ctx, userID, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(p.Value, v); err != nil {
		return false, fmt.Errorf("decoding preference %q: %w", key, err)
	}
	return true, nil
}

// Save encodes v and stores it.
func Save[T any](ctx context.Context, s *Service, userID, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding preference %q: %w", key, err)
	}
	return s.Set(ctx, userID, key, b)
}

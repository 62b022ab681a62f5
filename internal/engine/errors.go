package engine

import "errors"

var (
	// ErrNotConnected is returned when the user has no token record for the
	// provider.
	ErrNotConnected = errors.New("provider not connected")

	// ErrReconnectRequired is returned after the provider rejected the
	// stored refresh token. The record has been deleted and the user must
	// connect again.
	ErrReconnectRequired = errors.New("provider reconnect required")
)

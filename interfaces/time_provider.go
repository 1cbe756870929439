package interfaces

import "time"

// TimeProvider supplies the current wall-clock time.
// Injected so tests can drive heartbeats and sweeps with a fixed clock.
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	Now() time.Time
}

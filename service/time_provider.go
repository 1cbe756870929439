package service

import (
	"time"

	"myregistrar/helpers"
	"myregistrar/interfaces"
)

// timeProvider implements interfaces.TimeProvider on top of an injected now func.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via the given now func. Panics on nil now.
// cmd/main passes time.Now().UTC; tests pass a fixed or stepping clock.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

func (t *timeProvider) Now() time.Time {
	return t.now()
}

package interfaces

import (
	"context"

	"myregistrar/domain"
)

// RegistryStore is the shared hash of instance id -> last seen timestamp.
//
//go:generate moq -stub -out mock/registry_store.go -pkg mock . RegistryStore
type RegistryStore interface {
	// SetEntry writes (upserts) the timestamp for id.
	// Returns:
	// 1) nil on success;
	// 2) store_error when the storage write fails.
	SetEntry(ctx context.Context, id domain.InstanceID, ts domain.Timestamp) error

	// AllEntries reads the whole registry in one call.
	// Returns:
	// 1) (snapshot, nil) on success, an empty snapshot when the registry is empty.
	//    Values that can't be decoded are reported as domain.UnreadableTimestamp;
	// 2) (nil, store_error) when the storage read fails.
	AllEntries(ctx context.Context) (domain.Snapshot, error)

	// DeleteEntry removes id from the registry. Deleting an absent id is not an error.
	// Returns:
	// 1) nil on success;
	// 2) store_error when the storage delete fails.
	DeleteEntry(ctx context.Context, id domain.InstanceID) error
}

package myredis

import (
	"context"
	"fmt"

	"myregistrar/domain"
	"myregistrar/helpers"
	"myregistrar/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
)

type registryStore struct {
	client redis.UniversalClient
	hash   string
	logger log.Logger
}

// NewRegistryStore creates redis implementation of interfaces.RegistryStore
// on top of a single hash (field: instance id, value: millis as decimal text).
func NewRegistryStore(client redis.UniversalClient, hash string, logger log.Logger) *registryStore {
	return &registryStore{
		client: helpers.NilPanic(client, "myredis.registry_store.go: client is required"),
		hash:   helpers.StrPanic(hash, "myredis.registry_store.go: hash is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "myredis.registry_store.go: logger is required"), "component", "RegistryStore"),
	}
}

func (s *registryStore) SetEntry(ctx context.Context, id domain.InstanceID, ts domain.Timestamp) error {
	err := s.client.HSet(ctx, s.hash, string(id), ts.String()).Err()
	if err != nil {
		return service.NewStoreError("Redis hset error", fmt.Errorf("can't write entry to redis (hash='%s', id='%s'), err: %w", s.hash, id, err))
	}
	return nil
}

// AllEntries reads the whole hash. A field whose value is not a non-negative
// millisecond integer is logged and reported with domain.UnreadableTimestamp.
func (s *registryStore) AllEntries(ctx context.Context) (domain.Snapshot, error) {
	raw, err := s.client.HGetAll(ctx, s.hash).Result()
	if err != nil {
		return nil, service.NewStoreError("Redis hgetall error", fmt.Errorf("can't read entries from redis (hash='%s'), err: %w", s.hash, err))
	}

	snapshot := make(domain.Snapshot, len(raw))
	for field, value := range raw {
		ts, err := domain.ParseTimestamp(value)
		if err != nil {
			level.Warn(s.logger).Log(
				"msg", "Unreadable registry entry",
				"op", "hgetall",
				"hash", s.hash,
				"instance_id", field,
				"value", value,
				"err", service.NewStoreError("Redis value decode error", err),
			)
			ts = domain.UnreadableTimestamp
		}
		snapshot[domain.InstanceID(field)] = ts
	}

	return snapshot, nil
}

func (s *registryStore) DeleteEntry(ctx context.Context, id domain.InstanceID) error {
	err := s.client.HDel(ctx, s.hash, string(id)).Err()
	if err != nil {
		return service.NewStoreError("Redis hdel error", fmt.Errorf("can't delete entry from redis (hash='%s', id='%s'), err: %w", s.hash, id, err))
	}
	return nil
}

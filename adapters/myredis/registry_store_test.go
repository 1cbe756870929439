package myredis

import (
	"bytes"
	"context"
	"testing"
	"time"

	"myregistrar/domain"
	"myregistrar/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-kit/log"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHash = "SERVER_ID_HASH"

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, redis.UniversalClient) {
	t.Helper()
	server := miniredis.RunT(t)
	client, err := NewRedisUniversalClient("redis://" + server.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return server, client
}

func TestNewRegistryStore_Panics(t *testing.T) {
	_, client := setupTestRedis(t)

	assert.PanicsWithValue(t, "myredis.registry_store.go: client is required", func() {
		NewRegistryStore(nil, testHash, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "myredis.registry_store.go: hash is required", func() {
		NewRegistryStore(client, "", log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "myredis.registry_store.go: logger is required", func() {
		NewRegistryStore(client, testHash, nil)
	})
}

func TestRegistryStore_SetEntry(t *testing.T) {
	ctx := context.Background()
	server, client := setupTestRedis(t)
	store := NewRegistryStore(client, testHash, log.NewNopLogger())

	t.Run("writes millis as decimal text", func(t *testing.T) {
		require.NoError(t, store.SetEntry(ctx, "inst-1", 1771502400000))
		assert.Equal(t, "1771502400000", server.HGet(testHash, "inst-1"))
	})

	t.Run("overwrites previous value", func(t *testing.T) {
		require.NoError(t, store.SetEntry(ctx, "inst-1", 1771502400000))
		require.NoError(t, store.SetEntry(ctx, "inst-1", 1771502580000))
		assert.Equal(t, "1771502580000", server.HGet(testHash, "inst-1"))
		keys, err := server.HKeys(testHash)
		require.NoError(t, err)
		assert.Len(t, keys, 1)
	})

	t.Run("when Redis write fails returns store_error", func(t *testing.T) {
		server.SetError("ERR simulated failure")
		defer server.SetError("")

		err := store.SetEntry(ctx, "inst-2", 1)
		require.Error(t, err)
		assert.True(t, service.IsStoreError(err))
	})

	t.Run("closed client returns store_error", func(t *testing.T) {
		closedClient, err := NewRedisUniversalClient("redis://" + server.Addr())
		require.NoError(t, err)
		closedClient.Close()

		err = NewRegistryStore(closedClient, testHash, log.NewNopLogger()).SetEntry(ctx, "x", 1)
		require.Error(t, err)
		assert.True(t, service.IsStoreError(err))
	})
}

func TestRegistryStore_AllEntries(t *testing.T) {
	ctx := context.Background()
	server, client := setupTestRedis(t)
	store := NewRegistryStore(client, testHash, log.NewNopLogger())

	t.Run("missing hash returns empty snapshot", func(t *testing.T) {
		got, err := store.AllEntries(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("returns all entries", func(t *testing.T) {
		server.HSet(testHash, "a", "1000")
		server.HSet(testHash, "b", "2000")

		got, err := store.AllEntries(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.Snapshot{"a": 1000, "b": 2000}, got)
	})

	t.Run("reports and logs values that are not millis", func(t *testing.T) {
		var buf bytes.Buffer
		loggedStore := NewRegistryStore(client, testHash, log.NewLogfmtLogger(&buf))
		server.HSet(testHash, "broken", "not-a-number")
		server.HSet(testHash, "negative", "-9223372036854775808")
		defer server.HDel(testHash, "broken")
		defer server.HDel(testHash, "negative")

		got, err := loggedStore.AllEntries(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.Snapshot{
			"a":        1000,
			"b":        2000,
			"broken":   domain.UnreadableTimestamp,
			"negative": domain.UnreadableTimestamp,
		}, got)

		out := buf.String()
		assert.Contains(t, out, "level=warn")
		assert.Contains(t, out, "instance_id=broken")
		assert.Contains(t, out, "value=not-a-number")
		assert.Contains(t, out, "instance_id=negative")
		assert.Contains(t, out, "store_error")
	})

	t.Run("ignores other hashes", func(t *testing.T) {
		server.HSet("OTHER_HASH", "c", "3000")

		got, err := store.AllEntries(ctx)
		require.NoError(t, err)
		assert.NotContains(t, got, domain.InstanceID("c"))
	})

	t.Run("when Redis read fails returns store_error", func(t *testing.T) {
		server.SetError("ERR simulated failure")
		defer server.SetError("")

		got, err := store.AllEntries(ctx)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, service.IsStoreError(err))
	})
}

func TestRegistryStore_DeleteEntry(t *testing.T) {
	ctx := context.Background()
	server, client := setupTestRedis(t)
	store := NewRegistryStore(client, testHash, log.NewNopLogger())

	t.Run("deletes entry", func(t *testing.T) {
		require.NoError(t, store.SetEntry(ctx, "inst-del", 1000))
		require.NoError(t, store.SetEntry(ctx, "inst-keep", 1000))

		require.NoError(t, store.DeleteEntry(ctx, "inst-del"))
		keys, err := server.HKeys(testHash)
		require.NoError(t, err)
		assert.Equal(t, []string{"inst-keep"}, keys)
	})

	t.Run("absent id is not an error", func(t *testing.T) {
		require.NoError(t, store.DeleteEntry(ctx, "never-registered"))
		require.NoError(t, store.DeleteEntry(ctx, "inst-del"))
	})

	t.Run("when Redis delete fails returns store_error", func(t *testing.T) {
		server.SetError("ERR simulated failure")
		defer server.SetError("")

		err := store.DeleteEntry(ctx, "inst-keep")
		require.Error(t, err)
		assert.True(t, service.IsStoreError(err))
	})
}

func TestRegistryStore_SweepEvictsUnreadableEntries(t *testing.T) {
	ctx := context.Background()
	server, client := setupTestRedis(t)
	store := NewRegistryStore(client, testHash, log.NewNopLogger())

	now := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)
	server.HSet(testHash, "corrupt", "abc")
	server.HSet(testHash, "neg", "-9223372036854775808")
	server.HSet(testHash, "alive", domain.TimestampFromTime(now.Add(-time.Minute)).String())

	registrar := service.NewRegistrar(
		service.NewUUIDGenerator(),
		store,
		service.NewTimeProvider(func() time.Time { return now }),
		service.RegistrarConfig{StalenessThreshold: 5 * time.Minute, StoreTimeout: time.Second},
		nil,
		log.NewNopLogger(),
	)

	result := registrar.Sweep(ctx)
	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, []domain.InstanceID{"corrupt", "neg"}, result.Evicted)
	assert.Empty(t, result.Failed)

	keys, err := server.HKeys(testHash)
	require.NoError(t, err)
	assert.Equal(t, []string{"alive"}, keys)
}

package myredis

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultRegistryHash is the Redis hash holding instance id -> last seen millis.
const DefaultRegistryHash = "SERVER_ID_HASH"

// RedisConfig locates the registry: a redis:// URL and the hash name.
type RedisConfig struct {
	Addr string
	Hash string
}

// ConfigOption adjusts the options parsed from the URL before the client is built.
type ConfigOption func(*redis.Options)

// WithTimeouts bounds dialing, socket reads and socket writes by d.
func WithTimeouts(d time.Duration) ConfigOption {
	return func(o *redis.Options) {
		o.DialTimeout = d
		o.ReadTimeout = d
		o.WriteTimeout = d
	}
}

// NewRedisUniversalClient creates a redis client for redisAddr (redis:// or rediss:// URL).
func NewRedisUniversalClient(redisAddr string, options ...ConfigOption) (redis.UniversalClient, error) {
	parsed, err := redis.ParseURL(redisAddr)
	if err != nil {
		return nil, fmt.Errorf("cant parse redis url: %w", err)
	}
	for _, opt := range options {
		opt(parsed)
	}
	return redis.NewUniversalClient(universalOptions(parsed)), nil
}

// universalOptions carries the single-node options produced by ParseURL and ConfigOption.
func universalOptions(o *redis.Options) *redis.UniversalOptions {
	return &redis.UniversalOptions{
		Addrs:        []string{o.Addr},
		DB:           o.DB,
		Username:     o.Username,
		Password:     o.Password,
		TLSConfig:    o.TLSConfig,
		DialTimeout:  o.DialTimeout,
		ReadTimeout:  o.ReadTimeout,
		WriteTimeout: o.WriteTimeout,
		MaxRetries:   o.MaxRetries,
		PoolSize:     o.PoolSize,
		PoolTimeout:  o.PoolTimeout,
		MinIdleConns: o.MinIdleConns,
		IdleTimeout:  o.IdleTimeout,
	}
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"myregistrar/adapters/myredis"
	"myregistrar/service"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envConfigPath         = "CONFIG_PATH"
	envRedisAddr          = "REDIS_ADDR"
	envRegistryHash       = "REGISTRY_HASH"
	envHTTPPort           = "SERVICE_PORT_HTTP"
	envHeartbeatSchedule  = "HEARTBEAT_SCHEDULE"
	envSweepSchedule      = "SWEEP_SCHEDULE"
	envStalenessThreshold = "STALENESS_THRESHOLD"
	envStoreTimeout       = "STORE_TIMEOUT"
)

// Defaults: heartbeat every 3 minutes, sweep every 10 minutes, evict after 5 minutes of silence.
const (
	defaultHTTPPort           = 8080
	defaultStalenessThreshold = 5 * time.Minute
	defaultStoreTimeout       = 5 * time.Second
)

type MyRegistrarConfig struct {
	Redis     myredis.RedisConfig
	HTTPPort  int
	Schedule  service.ScheduleConfig
	Registrar service.RegistrarConfig
}

// yamlConfig is the optional file pointed to by CONFIG_PATH. Empty fields keep defaults.
type yamlConfig struct {
	RedisAddr          string `yaml:"redis_addr"`
	RegistryHash       string `yaml:"registry_hash"`
	HTTPPort           int    `yaml:"http_port"`
	HeartbeatSchedule  string `yaml:"heartbeat_schedule"`
	SweepSchedule      string `yaml:"sweep_schedule"`
	StalenessThreshold string `yaml:"staleness_threshold"`
	StoreTimeout       string `yaml:"store_timeout"`
}

// LoadConfig loads configuration from defaults, then the optional YAML file
// at CONFIG_PATH, then environment variables. REDIS_ADDR is required.
func LoadConfig() (*MyRegistrarConfig, error) {
	raw := yamlConfig{
		RegistryHash:       myredis.DefaultRegistryHash,
		HTTPPort:           defaultHTTPPort,
		HeartbeatSchedule:  service.DefaultHeartbeatSchedule,
		SweepSchedule:      service.DefaultSweepSchedule,
		StalenessThreshold: defaultStalenessThreshold.String(),
		StoreTimeout:       defaultStoreTimeout.String(),
	}

	if path := os.Getenv(envConfigPath); path != "" {
		if err := loadYAML(path, &raw); err != nil {
			return nil, err
		}
	}

	overrideString(&raw.RedisAddr, envRedisAddr)
	overrideString(&raw.RegistryHash, envRegistryHash)
	overrideString(&raw.HeartbeatSchedule, envHeartbeatSchedule)
	overrideString(&raw.SweepSchedule, envSweepSchedule)
	overrideString(&raw.StalenessThreshold, envStalenessThreshold)
	overrideString(&raw.StoreTimeout, envStoreTimeout)
	if v := os.Getenv(envHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envHTTPPort, err)
		}
		raw.HTTPPort = port
	}

	return buildConfig(raw)
}

func loadYAML(path string, raw *yamlConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	var fromFile yamlConfig
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	mergeString(&raw.RedisAddr, fromFile.RedisAddr)
	mergeString(&raw.RegistryHash, fromFile.RegistryHash)
	mergeString(&raw.HeartbeatSchedule, fromFile.HeartbeatSchedule)
	mergeString(&raw.SweepSchedule, fromFile.SweepSchedule)
	mergeString(&raw.StalenessThreshold, fromFile.StalenessThreshold)
	mergeString(&raw.StoreTimeout, fromFile.StoreTimeout)
	if fromFile.HTTPPort != 0 {
		raw.HTTPPort = fromFile.HTTPPort
	}
	return nil
}

func buildConfig(raw yamlConfig) (*MyRegistrarConfig, error) {
	if raw.RedisAddr == "" {
		return nil, fmt.Errorf("%s is required", envRedisAddr)
	}
	if raw.RegistryHash == "" {
		return nil, fmt.Errorf("%s must not be empty", envRegistryHash)
	}
	if raw.HTTPPort <= 0 || raw.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid %s: %d", envHTTPPort, raw.HTTPPort)
	}
	if err := service.ValidateSchedule(raw.HeartbeatSchedule); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envHeartbeatSchedule, err)
	}
	if err := service.ValidateSchedule(raw.SweepSchedule); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envSweepSchedule, err)
	}
	threshold, err := positiveDuration(envStalenessThreshold, raw.StalenessThreshold)
	if err != nil {
		return nil, err
	}
	storeTimeout, err := positiveDuration(envStoreTimeout, raw.StoreTimeout)
	if err != nil {
		return nil, err
	}

	return &MyRegistrarConfig{
		Redis: myredis.RedisConfig{
			Addr: raw.RedisAddr,
			Hash: raw.RegistryHash,
		},
		HTTPPort: raw.HTTPPort,
		Schedule: service.ScheduleConfig{
			Heartbeat: raw.HeartbeatSchedule,
			Sweep:     raw.SweepSchedule,
		},
		Registrar: service.RegistrarConfig{
			StalenessThreshold: threshold,
			StoreTimeout:       storeTimeout,
		},
	}, nil
}

func positiveDuration(name, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %s", name, d)
	}
	return d, nil
}

func overrideString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

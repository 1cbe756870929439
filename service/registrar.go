package service

import (
	"context"
	"sync"
	"time"

	"myregistrar/domain"
	"myregistrar/helpers"
	"myregistrar/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Store operation names used in logs and metrics.
const (
	opRegister  = "register"
	opHeartbeat = "heartbeat"
	opSweepRead = "sweep_read"
	opEvict     = "evict"
)

// RegistrarConfig holds the timing of the registrar.
type RegistrarConfig struct {
	// StalenessThreshold is the largest tolerated age of an entry. Older entries are evicted by Sweep.
	StalenessThreshold time.Duration
	// StoreTimeout bounds every single store call.
	StoreTimeout time.Duration
}

// SweepResult describes one Sweep run.
type SweepResult struct {
	Skipped bool
	Scanned int
	Evicted []domain.InstanceID
	Failed  []domain.InstanceID
}

// Registrar keeps this process present in the shared registry and evicts
// entries of processes that stopped reporting.
//
// Register is called once at startup; Heartbeat and Sweep are called
// periodically by the Scheduler. None of them return store errors: failures
// are logged and the next scheduled run is the only retry.
type Registrar struct {
	idGenerator  interfaces.IDGenerator
	store        interfaces.RegistryStore
	clock        interfaces.TimeProvider
	threshold    time.Duration
	storeTimeout time.Duration
	metrics      *Metrics
	logger       log.Logger

	mu sync.RWMutex
	id domain.InstanceID

	// at most one run per task at a time
	heartbeatRunning sync.Mutex
	sweepRunning     sync.Mutex
}

// NewRegistrar creates a Registrar. Panics on nil dependencies or non-positive durations.
// metrics may be nil.
func NewRegistrar(
	idGenerator interfaces.IDGenerator,
	store interfaces.RegistryStore,
	clock interfaces.TimeProvider,
	config RegistrarConfig,
	metrics *Metrics,
	logger log.Logger,
) *Registrar {
	return &Registrar{
		idGenerator:  helpers.NilPanic(idGenerator, "service.registrar.go: idGenerator is required"),
		store:        helpers.NilPanic(store, "service.registrar.go: store is required"),
		clock:        helpers.NilPanic(clock, "service.registrar.go: clock is required"),
		threshold:    helpers.PositivePanic(config.StalenessThreshold, "service.registrar.go: staleness threshold must be positive"),
		storeTimeout: helpers.PositivePanic(config.StoreTimeout, "service.registrar.go: store timeout must be positive"),
		metrics:      metrics,
		logger:       log.WithPrefix(helpers.NilPanic(logger, "service.registrar.go: logger is required"), "component", "Registrar"),
	}
}

// ID returns the id of this process, or "" before Register.
func (r *Registrar) ID() domain.InstanceID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id
}

// Register generates the id of this process and writes its first entry.
// A store failure is logged, not returned: the first heartbeat will create the entry.
// Repeated calls keep the first id.
func (r *Registrar) Register(ctx context.Context) domain.InstanceID {
	r.mu.Lock()
	if r.id != "" {
		id := r.id
		r.mu.Unlock()
		level.Warn(r.logger).Log("msg", "Instance already registered", "instance_id", id)
		return id
	}
	r.id = r.idGenerator.NewID()
	id := r.id
	r.mu.Unlock()

	ts := r.now()
	level.Info(r.logger).Log("msg", "Instance started", "instance_id", id)
	if err := r.setEntry(ctx, opRegister, id, ts); err != nil {
		level.Error(r.logger).Log(
			"msg", "Failed to register instance",
			"op", opRegister,
			"instance_id", id,
			"timestamp", ts,
			"err", err,
		)
		return id
	}

	level.Info(r.logger).Log("msg", "Instance registered", "instance_id", id, "timestamp", ts)
	return id
}

// Heartbeat refreshes the entry of this process with the current time.
// On failure the existing entry is left as is.
func (r *Registrar) Heartbeat(ctx context.Context) {
	if !r.heartbeatRunning.TryLock() {
		level.Warn(r.logger).Log("msg", "Previous heartbeat still running, skipping tick")
		r.metrics.heartbeat(ResultSkipped)
		return
	}
	defer r.heartbeatRunning.Unlock()

	id := r.ID()
	if id == "" {
		level.Warn(r.logger).Log("msg", "Heartbeat before registration, skipping tick")
		r.metrics.heartbeat(ResultSkipped)
		return
	}

	ts := r.now()
	if err := r.setEntry(ctx, opHeartbeat, id, ts); err != nil {
		level.Error(r.logger).Log(
			"msg", "Failed to report heartbeat",
			"op", opHeartbeat,
			"instance_id", id,
			"timestamp", ts,
			"err", err,
		)
		r.metrics.heartbeat(ResultFailure)
		return
	}

	level.Debug(r.logger).Log("msg", "Heartbeat reported", "instance_id", id, "timestamp", ts)
	r.metrics.heartbeat(ResultSuccess)
}

// Sweep reads the registry and deletes every entry older than the staleness threshold.
// Deletions are independent: a failed delete is logged and the remaining ones still run.
func (r *Registrar) Sweep(ctx context.Context) SweepResult {
	if !r.sweepRunning.TryLock() {
		level.Warn(r.logger).Log("msg", "Previous sweep still running, skipping tick")
		r.metrics.sweep(ResultSkipped)
		return SweepResult{Skipped: true}
	}
	defer r.sweepRunning.Unlock()

	id := r.ID()
	snapshot, err := r.allEntries(ctx)
	if err != nil {
		level.Error(r.logger).Log(
			"msg", "Failed to read registry",
			"op", opSweepRead,
			"instance_id", id,
			"err", err,
		)
		r.metrics.sweep(ResultFailure)
		return SweepResult{}
	}

	now := r.now()
	stale := staleEntries(snapshot, now, r.threshold)
	level.Info(r.logger).Log(
		"msg", "Registry checked",
		"instance_id", id,
		"timestamp", now,
		"entries", len(snapshot),
		"stale", stale.Len(),
	)

	result := SweepResult{Scanned: len(snapshot)}
	for _, staleID := range stale.Sorted() {
		if err := r.deleteEntry(ctx, staleID); err != nil {
			level.Error(r.logger).Log(
				"msg", "Failed to evict stale instance",
				"op", opEvict,
				"instance_id", staleID,
				"last_seen", snapshot[staleID],
				"err", err,
			)
			result.Failed = append(result.Failed, staleID)
			r.metrics.eviction(ResultFailure)
			continue
		}
		level.Info(r.logger).Log(
			"msg", "Stale instance evicted",
			"instance_id", staleID,
			"last_seen", snapshot[staleID],
			"unreadable", snapshot[staleID] == domain.UnreadableTimestamp,
		)
		result.Evicted = append(result.Evicted, staleID)
		r.metrics.eviction(ResultSuccess)
	}

	r.metrics.setEntries(result.Scanned)
	r.metrics.sweep(ResultSuccess)
	return result
}

// staleEntries returns the ids whose last report is older than threshold at now.
func staleEntries(snapshot domain.Snapshot, now domain.Timestamp, threshold time.Duration) domain.IDSet {
	stale := make(domain.IDSet)
	for id, lastSeen := range snapshot {
		if domain.IsStale(now, lastSeen, threshold) {
			stale.Add(id)
		}
	}
	return stale
}

func (r *Registrar) now() domain.Timestamp {
	return domain.TimestampFromTime(r.clock.Now())
}

func (r *Registrar) setEntry(ctx context.Context, op string, id domain.InstanceID, ts domain.Timestamp) error {
	ctx, cancel := context.WithTimeout(ctx, r.storeTimeout)
	defer cancel()

	start := time.Now()
	err := r.store.SetEntry(ctx, id, ts)
	r.metrics.observeStoreOp(op, time.Since(start))
	return err
}

func (r *Registrar) allEntries(ctx context.Context) (domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, r.storeTimeout)
	defer cancel()

	start := time.Now()
	snapshot, err := r.store.AllEntries(ctx)
	r.metrics.observeStoreOp(opSweepRead, time.Since(start))
	return snapshot, err
}

func (r *Registrar) deleteEntry(ctx context.Context, id domain.InstanceID) error {
	ctx, cancel := context.WithTimeout(ctx, r.storeTimeout)
	defer cancel()

	start := time.Now()
	err := r.store.DeleteEntry(ctx, id)
	r.metrics.observeStoreOp(opEvict, time.Since(start))
	return err
}

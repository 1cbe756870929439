package service

import (
	"context"
	"fmt"
	"time"

	"myregistrar/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/robfig/cron/v3"
)

// Default schedules, cron syntax with a leading seconds field.
// Heartbeat: second 1 of every third minute starting at minute 1.
// Sweep: second 30 of every tenth minute starting at minute 1.
const (
	DefaultHeartbeatSchedule = "1 1/3 * * * *"
	DefaultSweepSchedule     = "30 1/10 * * * *"
)

var scheduleParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateSchedule reports whether spec is a valid schedule for the Scheduler.
func ValidateSchedule(spec string) error {
	if _, err := scheduleParser.Parse(spec); err != nil {
		return NewBadParameterError(fmt.Sprintf("invalid schedule %q", spec), err)
	}
	return nil
}

// ScheduleConfig holds the cron specs of the two periodic tasks.
type ScheduleConfig struct {
	Heartbeat string
	Sweep     string
}

// Scheduler drives a Registrar: one registration on Start, then heartbeat and
// sweep on their own wall-clock aligned schedules. The two tasks run on
// separate goroutines and never wait for each other.
type Scheduler struct {
	registrar *Registrar
	cron      *cron.Cron
	logger    log.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a Scheduler. Returns bad_parameter error when a schedule does not parse.
func NewScheduler(registrar *Registrar, config ScheduleConfig, logger log.Logger) (*Scheduler, error) {
	logger = log.WithPrefix(helpers.NilPanic(logger, "service.scheduler.go: logger is required"), "component", "Scheduler")
	cronLog := cronLogger{logger: logger}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		registrar: helpers.NilPanic(registrar, "service.scheduler.go: registrar is required"),
		cron: cron.New(
			cron.WithParser(scheduleParser),
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog)),
		),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	if _, err := s.cron.AddFunc(config.Heartbeat, func() { s.registrar.Heartbeat(s.ctx) }); err != nil {
		cancel()
		return nil, NewBadParameterError(fmt.Sprintf("invalid heartbeat schedule %q", config.Heartbeat), err)
	}
	if _, err := s.cron.AddFunc(config.Sweep, func() { s.registrar.Sweep(s.ctx) }); err != nil {
		cancel()
		return nil, NewBadParameterError(fmt.Sprintf("invalid sweep schedule %q", config.Sweep), err)
	}

	return s, nil
}

// Start registers the instance and starts the periodic tasks. It does not block.
func (s *Scheduler) Start(ctx context.Context) {
	s.registrar.Register(ctx)
	s.cron.Start()
	level.Info(s.logger).Log("msg", "Scheduler started", "instance_id", s.registrar.ID())
}

// Stop stops future runs and waits for running ones until ctx is done.
// The instance entry is intentionally left in the registry: it disappears
// through the sweep of a surviving instance.
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	defer s.cancel()

	select {
	case <-stopped.Done():
		level.Info(s.logger).Log("msg", "Scheduler stopped", "instance_id", s.registrar.ID())
		return nil
	case <-ctx.Done():
		level.Warn(s.logger).Log("msg", "Scheduler stop timed out, cancelling running tasks", "err", ctx.Err())
		return ctx.Err()
	}
}

// cronLogger adapts go-kit log to cron.Logger. Cron's info messages fire on
// every wake-up, so they go to debug level.
type cronLogger struct {
	logger log.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	level.Debug(l.logger).Log(append([]interface{}{"msg", msg}, keysAndValues...)...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	level.Error(l.logger).Log(append([]interface{}{"msg", msg, "err", err}, keysAndValues...)...)
}

// Package scheduler runs the periodic persistence flush.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DisabledSchedule = "off"

var ErrInvalidSchedule = errors.New("invalid flush schedule")

type Flusher interface {
	Flush(ctx context.Context) error
}

// FlushScheduler flushes the registry on a cron schedule so that a crash
// between mutations loses at most one interval of writes.
type FlushScheduler struct {
	cron    *cron.Cron
	flusher Flusher
	timeout time.Duration
	logger  *zap.Logger
	enabled bool
}

// NewFlushScheduler parses spec ("@every 5m", "*/10 * * * *", ...). An empty
// spec or "off" yields a scheduler whose Start and Stop are no-ops.
func NewFlushScheduler(spec string, flusher Flusher, timeout time.Duration, logger *zap.Logger) (*FlushScheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	s := &FlushScheduler{flusher: flusher, timeout: timeout, logger: logger}

	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, DisabledSchedule) {
		return s, nil
	}

	s.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSchedule, spec, err)
	}
	s.enabled = true
	return s, nil
}

func (s *FlushScheduler) Enabled() bool {
	return s.enabled
}

func (s *FlushScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.flusher.Flush(ctx); err != nil {
		s.logger.Error("[scheduler][flush] periodic flush failed", zap.Error(err))
		return
	}
	s.logger.Debug("[scheduler][flush] periodic flush done")
}

func (s *FlushScheduler) Start() {
	if !s.enabled {
		s.logger.Info("[scheduler][flush] disabled")
		return
	}
	s.cron.Start()
	s.logger.Info("[scheduler][flush] started")
}

// Stop halts the schedule and waits for a running flush, or for ctx.
func (s *FlushScheduler) Stop(ctx context.Context) error {
	if !s.enabled {
		return nil
	}
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

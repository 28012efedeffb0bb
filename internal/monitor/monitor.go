package monitor

import (
	"context"
	"io"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"aping/internal/config"
	"aping/internal/latch"
	"aping/internal/models"
)

// Interval is the fixed pause after every ping
const Interval = 1 * time.Second

// Monitor runs the ping cycle against a single destination
type Monitor struct {
	config   config.Config
	pinger   models.Pinger
	alerter  models.Alerter
	store    models.Store
	latch    *latch.Latch
	out      io.Writer
	logger   log.Logger
	interval time.Duration
	sleep    func(time.Duration)
	stats    models.Stats
}

// New creates a new Monitor. store may be nil.
func New(cfg config.Config, pinger models.Pinger, alerter models.Alerter, store models.Store,
	l *latch.Latch, out io.Writer, logger log.Logger) *Monitor {
	return &Monitor{
		config:   cfg,
		pinger:   pinger,
		alerter:  alerter,
		store:    store,
		latch:    l,
		out:      out,
		logger:   logger,
		interval: Interval,
		sleep:    time.Sleep,
	}
}

// Run pings until the latch is set and returns the final statistics.
// The latch is checked once per cycle; an in-flight ping and the sleep after
// it always complete.
func (m *Monitor) Run(ctx context.Context) models.Stats {
	_ = level.Info(m.logger).Log("msg", "Starting monitor", "target", m.config.Destination,
		"inverse", m.config.Inverse, "interval", m.interval)

	for !m.latch.IsSet() {
		m.performPing(ctx)
		m.sleep(m.interval)
	}

	_ = level.Info(m.logger).Log("msg", "Monitor stopped", "sent", m.stats.Sent, "received", m.stats.Received)
	return m.stats
}

// Stats returns the statistics gathered so far
func (m *Monitor) Stats() models.Stats {
	return m.stats
}

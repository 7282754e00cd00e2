// Package poller drives a snapshot fetcher on a fixed cadence: one fetch at
// start, then one per interval until stopped.
//
// There is no overlap guard: every tick dispatches its own fetch, so a slow
// response can land after a newer one. Each outcome carries its issue
// sequence number and the consumer decides what to do with it.
package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/portfolio-site/pkg/snapshot"
	"github.com/portfolio-site/pkg/view"
)

const DefaultInterval = 30 * time.Second

type Poller struct {
	fetcher  snapshot.Fetcher
	sched    Scheduler
	interval time.Duration
	sink     func(view.Outcome)

	seq     atomic.Uint64
	stopped atomic.Bool

	// held for reading while an outcome is handed to sink; Stop takes it
	// for writing
	deliverMu sync.RWMutex

	mu        sync.Mutex
	ctx       context.Context
	started   bool
	stopTimer func()
	stopOnce  sync.Once
}

type Option func(*Poller)

func WithScheduler(s Scheduler) Option {
	return func(p *Poller) { p.sched = s }
}

func WithInterval(d time.Duration) Option {
	return func(p *Poller) { p.interval = d }
}

// New builds a poller that hands every outcome to sink. sink is called from
// fetch goroutines and must do its own synchronization.
func New(f snapshot.Fetcher, sink func(view.Outcome), opts ...Option) *Poller {
	p := &Poller{
		fetcher:  f,
		sched:    CronScheduler{},
		interval: DefaultInterval,
		sink:     sink,
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start issues the first fetch immediately and arms the repeating timer.
// Fetches run under ctx. Calling Start again, or after Stop, does nothing.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started || p.stopped.Load() {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.ctx = ctx
	p.stopTimer = p.sched.Every(p.interval, p.issue)
	p.mu.Unlock()

	log.Info().Dur("interval", p.interval).Msg("📡 token poller started")
	p.issue()
}

// Run starts the poller and blocks until ctx is done, then stops it.
func (p *Poller) Run(ctx context.Context) error {
	p.Start(ctx)
	<-ctx.Done()
	p.Stop()
	return ctx.Err()
}

// Trigger issues one fetch outside the cadence, e.g. a manual refresh. The
// timer is not reset.
func (p *Poller) Trigger() {
	p.issue()
}

// Stop releases the timer exactly once. In-flight fetches are not cancelled,
// but their outcomes are no longer delivered. Stop waits for a delivery that
// is already running, so sink must not call Stop.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.deliverMu.Lock()
		p.stopped.Store(true)
		p.deliverMu.Unlock()

		p.mu.Lock()
		stop := p.stopTimer
		p.mu.Unlock()
		if stop != nil {
			stop()
		}
		log.Info().Uint64("issued", p.seq.Load()).Msg("token poller stopped")
	})
}

// Issued is the number of fetches dispatched so far.
func (p *Poller) Issued() uint64 {
	return p.seq.Load()
}

func (p *Poller) issue() {
	if p.stopped.Load() {
		return
	}
	p.mu.Lock()
	ctx := p.ctx
	p.mu.Unlock()

	seq := p.seq.Add(1)
	go func() {
		recs, err := p.fetcher.Fetch(ctx)
		if err != nil {
			log.Warn().Err(err).Uint64("seq", seq).Msg("token snapshot fetch failed")
		} else {
			log.Debug().Int("records", len(recs)).Uint64("seq", seq).Msg("token snapshot fetched")
		}
		p.deliverMu.RLock()
		defer p.deliverMu.RUnlock()
		if p.stopped.Load() {
			return
		}
		p.sink(view.Outcome{Seq: seq, Records: recs, Err: err})
	}()
}

package poller

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-site/pkg/tokens"
	"github.com/portfolio-site/pkg/view"
)

// fakeScheduler fires registered jobs synchronously as simulated time passes.
type fakeScheduler struct {
	mu    sync.Mutex
	jobs  []*fakeJob
	now   time.Duration
	stops int
}

type fakeJob struct {
	every    time.Duration
	next     time.Duration
	fn       func()
	canceled bool
}

func (s *fakeScheduler) Every(d time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := &fakeJob{every: d, next: s.now + d, fn: fn}
	s.jobs = append(s.jobs, j)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		j.canceled = true
		s.stops++
	}
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		var due *fakeJob
		for _, j := range s.jobs {
			if !j.canceled && j.next <= target && (due == nil || j.next < due.next) {
				due = j
			}
		}
		if due == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = due.next
		due.next += due.every
		fn := due.fn
		s.mu.Unlock()
		fn()
	}
}

type countingFetcher struct {
	calls atomic.Int64
	recs  []tokens.Record
	err   error
}

func (f *countingFetcher) Fetch(ctx context.Context) ([]tokens.Record, error) {
	f.calls.Add(1)
	return f.recs, f.err
}

type outcomeLog struct {
	mu  sync.Mutex
	out []view.Outcome
}

func (l *outcomeLog) add(o view.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = append(l.out, o)
}

func (l *outcomeLog) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.out)
}

func TestPollerCadence(t *testing.T) {
	sched := &fakeScheduler{}
	fetcher := &countingFetcher{recs: []tokens.Record{{Token: "0x1"}}}
	var outcomes outcomeLog

	p := New(fetcher, outcomes.add, WithScheduler(sched), WithInterval(30*time.Second))
	p.Start(context.Background())

	steps := []struct {
		advance time.Duration
		want    int64
	}{
		{0, 1},
		{30 * time.Second, 2},
		{30 * time.Second, 3},
	}
	for _, st := range steps {
		sched.Advance(st.advance)
		assert.Equal(t, uint64(st.want), p.Issued())
		require.Eventually(t, func() bool { return fetcher.calls.Load() == st.want },
			time.Second, 5*time.Millisecond, "after +%s", st.advance)
	}

	p.Stop()
	sched.Advance(5 * time.Minute)
	assert.Equal(t, uint64(3), p.Issued())
	assert.Never(t, func() bool { return fetcher.calls.Load() > 3 }, 50*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, 1, sched.stops)
}

func TestPollerFiresRegardlessOfFailures(t *testing.T) {
	sched := &fakeScheduler{}
	fetcher := &countingFetcher{err: errors.New("offline")}
	var outcomes outcomeLog

	p := New(fetcher, outcomes.add, WithScheduler(sched))
	p.Start(context.Background())
	sched.Advance(2 * DefaultInterval)

	require.Eventually(t, func() bool { return outcomes.len() == 3 }, time.Second, 5*time.Millisecond)
	for _, o := range outcomes.out {
		assert.Error(t, o.Err)
	}
	p.Stop()
}

func TestPollerSequencesOutcomes(t *testing.T) {
	sched := &fakeScheduler{}
	fetcher := &countingFetcher{}
	var outcomes outcomeLog

	p := New(fetcher, outcomes.add, WithScheduler(sched))
	p.Start(context.Background())
	p.Trigger()
	sched.Advance(DefaultInterval)

	require.Eventually(t, func() bool { return outcomes.len() == 3 }, time.Second, 5*time.Millisecond)
	seen := map[uint64]bool{}
	for _, o := range outcomes.out {
		seen[o.Seq] = true
	}
	assert.Equal(t, map[uint64]bool{1: true, 2: true, 3: true}, seen)
	p.Stop()
}

func TestPollerStopIsIdempotent(t *testing.T) {
	sched := &fakeScheduler{}
	p := New(&countingFetcher{}, func(view.Outcome) {}, WithScheduler(sched))
	p.Start(context.Background())
	p.Stop()
	p.Stop()
	assert.Equal(t, 1, sched.stops)

	p.Start(context.Background())
	p.Trigger()
	assert.Equal(t, uint64(1), p.Issued(), "a stopped poller stays stopped")
}

// blockingFetcher holds each call until released, to exercise late delivery.
type blockingFetcher struct {
	release chan struct{}
	calls   atomic.Int64
}

func (f *blockingFetcher) Fetch(ctx context.Context) ([]tokens.Record, error) {
	f.calls.Add(1)
	<-f.release
	return []tokens.Record{}, nil
}

func TestPollerDropsOutcomesAfterStop(t *testing.T) {
	sched := &fakeScheduler{}
	fetcher := &blockingFetcher{release: make(chan struct{})}
	var outcomes outcomeLog

	p := New(fetcher, outcomes.add, WithScheduler(sched))
	p.Start(context.Background())
	require.Eventually(t, func() bool { return fetcher.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	p.Stop()
	close(fetcher.release)
	assert.Never(t, func() bool { return outcomes.len() > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestRunStopsOnCancel(t *testing.T) {
	sched := &fakeScheduler{}
	p := New(&countingFetcher{}, func(view.Outcome) {}, WithScheduler(sched))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.Eventually(t, func() bool { return p.Issued() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, 1, sched.stops)
}

func TestStopWaitsForRunningDelivery(t *testing.T) {
	sched := &fakeScheduler{}
	entered := make(chan struct{})
	release := make(chan struct{})
	var delivered atomic.Int64

	sink := func(view.Outcome) {
		if delivered.Add(1) == 1 {
			close(entered)
			<-release
		}
	}
	p := New(&countingFetcher{}, sink, WithScheduler(sched))
	p.Start(context.Background())
	<-entered

	stopped := make(chan struct{})
	go func() {
		p.Stop()
		close(stopped)
	}()
	assert.Never(t, func() bool {
		select {
		case <-stopped:
			return true
		default:
			return false
		}
	}, 50*time.Millisecond, 5*time.Millisecond, "Stop returned while sink was running")

	close(release)
	<-stopped

	p.Trigger()
	sched.Advance(time.Minute)
	assert.Never(t, func() bool { return delivered.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

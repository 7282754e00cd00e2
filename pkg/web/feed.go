package web

import (
	"sync"
	"time"

	"github.com/portfolio-site/pkg/view"
)

// TokenFeed is the server's copy of the dashboard state. Apply is the poller
// sink; handlers read panels from it.
type TokenFeed struct {
	mu    sync.RWMutex
	state *view.State
	proj  view.Projector
	now   func() time.Time
}

func NewTokenFeed(opts view.Options, proj view.Projector) *TokenFeed {
	return &TokenFeed{state: view.New(opts), proj: proj, now: time.Now}
}

func (f *TokenFeed) Apply(o view.Outcome) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Apply(o)
}

func (f *TokenFeed) Panel() view.Panel {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.proj.Panel(f.state, f.now())
}

package api

import (
	"context"
	"sync"
	"time"

	icache "Nivesh/internal/service/cache"
	imetrics "Nivesh/internal/service/metrics"
	"Nivesh/internal/usecase"
	xlogger "Nivesh/pkg/logger"

	"github.com/google/uuid"
)

// Viewer is one browser of the web dashboard. Each viewer owns exactly one
// detail view.
type Viewer struct {
	ID   string
	View *usecase.DetailView
}

// Sessions holds the viewers seen recently. Idle viewers expire and their
// views are closed.
type Sessions struct {
	mu      sync.Mutex
	cache   *icache.TTLCache
	newView usecase.DetailViewFactory
	ttl     time.Duration
	logger  *xlogger.Logger
	onEvict func(id string)
}

func NewSessions(newView usecase.DetailViewFactory, idleTTL time.Duration, logger *xlogger.Logger) *Sessions {
	if logger == nil {
		logger = xlogger.Nop()
	}
	s := &Sessions{newView: newView, ttl: idleTTL, logger: logger}
	s.cache = icache.NewTTLCache(icache.WithEvictFunc(s.evicted))
	return s
}

// Acquire returns the viewer with id, creating a fresh one with a new id when
// id is empty or unknown.
func (s *Sessions) Acquire(id string) (*Viewer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if v, ok := s.cache.Get(id); ok {
			return v.(*Viewer), false
		}
	}
	v := &Viewer{ID: uuid.NewString(), View: s.newView()}
	s.cache.Set(v.ID, v, s.ttl)
	imetrics.ActiveViewers.Set(float64(s.cache.Len()))
	s.logger.Debug("viewer created", xlogger.String("viewer", v.ID))
	return v, true
}

// Sweep closes the viewers idle for longer than the TTL.
func (s *Sessions) Sweep() int {
	n := s.cache.Sweep()
	imetrics.ActiveViewers.Set(float64(s.cache.Len()))
	return n
}

// Run sweeps every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Info("expired idle viewers", xlogger.Int("count", n))
			}
		}
	}
}

// Len is the number of live viewers.
func (s *Sessions) Len() int {
	return s.cache.Len()
}

// Close closes every viewer.
func (s *Sessions) Close() {
	s.cache.Clear()
	imetrics.ActiveViewers.Set(0)
}

func (s *Sessions) evicted(id string, v any) {
	if vw, ok := v.(*Viewer); ok {
		vw.View.Close()
	}
	if s.onEvict != nil {
		s.onEvict(id)
	}
}

// OnEvict registers fn to run after a viewer is dropped. Call it before the
// sessions are shared.
func (s *Sessions) OnEvict(fn func(id string)) {
	s.onEvict = fn
}

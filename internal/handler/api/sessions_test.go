package api

import (
	"context"
	"testing"
	"time"

	"Nivesh/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsAcquire(t *testing.T) {
	api := &stubMarket{}
	s := NewSessions(func() *usecase.DetailView { return usecase.NewDetailView(api, api, nil) }, time.Hour, nil)
	defer s.Close()

	v1, created := s.Acquire("")
	require.True(t, created)
	require.NotEmpty(t, v1.ID)

	again, created := s.Acquire(v1.ID)
	assert.False(t, created)
	assert.Same(t, v1, again)

	other, created := s.Acquire("unknown")
	assert.True(t, created)
	assert.NotEqual(t, v1.ID, other.ID)
	assert.Equal(t, 2, s.Len())
}

func TestSessionsExpireIdleViewers(t *testing.T) {
	api := &stubMarket{}
	s := NewSessions(func() *usecase.DetailView { return usecase.NewDetailView(api, api, nil) }, time.Millisecond, nil)
	defer s.Close()

	var evicted []string
	s.OnEvict(func(id string) { evicted = append(evicted, id) })

	v, _ := s.Acquire("")
	v.View.Open("TCS")
	time.Sleep(5 * time.Millisecond)

	assert.Equal(t, 1, s.Sweep())
	assert.Zero(t, s.Len())
	assert.Equal(t, []string{v.ID}, evicted)
}

func TestSessionsRunStopsWithContext(t *testing.T) {
	s := NewSessions(func() *usecase.DetailView { return usecase.NewDetailView(&stubMarket{}, &stubMarket{}, nil) }, time.Hour, nil)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not return")
	}
}

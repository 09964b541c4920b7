package delta

import (
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/net/context"
)

type nopBackend struct{}

func (nopBackend) Transition(epoch Epoch) error { return nil }
func (nopBackend) Flush(epoch Epoch) error      { return nil }

func TestTransitionFlagElection(t *testing.T) {
	s := NewState(nopBackend{}, 0)
	const n = 64
	var wins uint32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if s.tryBeginTransition() {
				atomic.AddUint32(&wins, 1)
			}
		}()
	}
	wg.Wait()
	if g, e := wins, uint32(1); g != e {
		t.Errorf("wrong number of election winners: %d != %d", g, e)
	}

	s.endTransition()
	if !s.tryBeginTransition() {
		t.Error("flag was not released by endTransition")
	}
}

func TestCommitPendingHandoff(t *testing.T) {
	s := NewState(nopBackend{}, 0)
	if s.takeCommitPending() {
		t.Fatal("nothing was posted yet")
	}
	s.markCommitPending()

	const n = 64
	var wins uint32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if s.takeCommitPending() {
				atomic.AddUint32(&wins, 1)
			}
		}()
	}
	wg.Wait()
	if g, e := wins, uint32(1); g != e {
		t.Errorf("wrong number of handoff winners: %d != %d", g, e)
	}
}

func TestBroadcastWakesAllWaiters(t *testing.T) {
	s := NewState(nopBackend{}, 0)
	var mu sync.Mutex
	ready := false

	const n = 8
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			err := s.wait(context.Background(), func() (bool, error) {
				mu.Lock()
				defer mu.Unlock()
				return ready, nil
			})
			if err != nil {
				t.Errorf("wait: %v", err)
			}
		}()
	}

	mu.Lock()
	ready = true
	mu.Unlock()
	s.mu.Lock()
	s.broadcast()
	s.mu.Unlock()
	wg.Wait()
}

func TestWaitInterrupted(t *testing.T) {
	s := NewState(nopBackend{}, 0)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.wait(ctx, func() (bool, error) { return false, nil })
	}()
	cancel()
	if g, e := <-done, context.Canceled; g != e {
		t.Errorf("wrong interruption error: %v != %v", g, e)
	}
}

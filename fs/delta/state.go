package delta

import (
	"sync"
	"sync/atomic"

	"golang.org/x/net/context"
)

// Backend is the storage collaborator that does the actual durable
// work. The coordination core decides when its methods run and
// guarantees both are entered by at most one thread at a time.
type Backend interface {
	// Transition durably prepares the sealed epoch's metadata and
	// hands it off for commit. No new references can join the epoch
	// by the time this runs, but writers holding references may
	// still be draining.
	Transition(epoch Epoch) error

	// Flush durably writes the epoch's data to stable storage. It is
	// called at most once per epoch, and only after the epoch's last
	// reference is gone.
	Flush(epoch Epoch) error
}

// Commit state flags. Only the test-and-set and test-and-clear
// helpers below may touch these bits; exactly one caller observes
// each 0->1 or 1->0 edge.
const (
	transitionRunning uint32 = 1 << iota
	commitPending
)

// State is the shared commit state of one volume. All methods are
// safe for concurrent use from any number of goroutines.
type State struct {
	backend Backend

	// serializes Sync callers; never held by the transition or
	// flush bodies, so a Sync caller and the flusher daemon
	// cooperate instead of deadlocking
	syncMu sync.Mutex

	flags uint32 // atomic

	mu        sync.Mutex
	wake      chan struct{} // closed and replaced on every broadcast
	staging   Epoch         // highest epoch whose transition has run
	committed Epoch         // highest epoch flushed to stable storage
	open      *Ref          // the delta new writers join
	sealed    *Ref          // last sealed delta, possibly still draining
	fault     error         // first fatal error, sticky
}

// NewState returns the commit state for a volume whose last durable
// delta is committed. New writers join delta committed+1.
func NewState(backend Backend, committed Epoch) *State {
	s := &State{
		backend:   backend,
		wake:      make(chan struct{}),
		staging:   committed,
		committed: committed,
	}
	s.open = &Ref{state: s, epoch: committed.next()}
	return s
}

// Staging returns the highest epoch whose transition has run.
func (s *State) Staging() Epoch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.staging
}

// Committed returns the highest epoch flushed to stable storage.
func (s *State) Committed() Epoch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed
}

// Idle reports whether a flush would have nothing to do: no writes
// against the open delta, no sealed delta still on its way to stable
// storage.
func (s *State) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault != nil {
		return false
	}
	if s.open.dirty || s.commitIsPending() {
		return false
	}
	return s.sealed == nil || s.committed.AfterEq(s.sealed.epoch)
}

// tryBeginTransition claims the transition driver role. A true
// return means this caller newly owns the role and must either run
// the transition or call endTransition without doing work.
func (s *State) tryBeginTransition() bool {
	for {
		old := atomic.LoadUint32(&s.flags)
		if old&transitionRunning != 0 {
			return false
		}
		if atomic.CompareAndSwapUint32(&s.flags, old, old|transitionRunning) {
			return true
		}
	}
}

func (s *State) endTransition() {
	for {
		old := atomic.LoadUint32(&s.flags)
		if atomic.CompareAndSwapUint32(&s.flags, old, old&^transitionRunning) {
			return
		}
	}
}

// markCommitPending posts a drained, sealed delta for flushing.
func (s *State) markCommitPending() {
	for {
		old := atomic.LoadUint32(&s.flags)
		if atomic.CompareAndSwapUint32(&s.flags, old, old|commitPending) {
			return
		}
	}
}

// takeCommitPending claims the posted delta for flushing. True means
// this caller must run the flush body.
func (s *State) takeCommitPending() bool {
	for {
		old := atomic.LoadUint32(&s.flags)
		if old&commitPending == 0 {
			return false
		}
		if atomic.CompareAndSwapUint32(&s.flags, old, old&^commitPending) {
			return true
		}
	}
}

func (s *State) commitIsPending() bool {
	return atomic.LoadUint32(&s.flags)&commitPending != 0
}

// poison records the first fatal error. Callers must hold mu.
func (s *State) poison(op string, epoch Epoch, err error) {
	if s.fault == nil {
		s.fault = &FatalError{Op: op, Epoch: epoch, Err: err}
	}
}

// broadcast wakes every waiter. Callers must hold mu.
//
// Every state mutation must end in a broadcast: a waiter's predicate
// may have become true through a change the waiter did not make.
func (s *State) broadcast() {
	close(s.wake)
	s.wake = make(chan struct{})
}

// wait blocks until poll reports done, rechecking after every
// broadcast. The wake channel is captured before polling, so a
// broadcast between the poll and the block cannot be lost.
func (s *State) wait(ctx context.Context, poll func() (bool, error)) error {
	for {
		s.mu.Lock()
		wake := s.wake
		s.mu.Unlock()

		done, err := poll()
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wake:
		}
	}
}

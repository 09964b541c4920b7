package delta

import (
	"golang.org/x/net/context"
)

// Unify controls whether a commit may be forced when nothing is
// pending. The disposition of unify itself belongs to the storage
// backend; the core only uses it to decide whether an idle volume
// still commits.
type Unify int

const (
	// UnifyAllow lets the backend unify if it wants to. Idle volumes
	// skip the commit entirely.
	UnifyAllow Unify = iota
	// UnifyNone commits without unifying.
	UnifyNone
	// UnifyForce commits even when the volume is idle. Not supported
	// with an externally driven flusher; see fs.Volume.Sync.
	UnifyForce
)

// WaitForTransition blocks until the transition for target has run.
// Whichever waiter wins the transition-running flag drives the
// transition itself; the rest sleep until the broadcast.
//
// Returns ctx.Err if the wait is interrupted, or the recorded fatal
// error if the volume is poisoned.
func (s *State) WaitForTransition(ctx context.Context, target Epoch) error {
	return s.wait(ctx, func() (bool, error) {
		return s.tryTransitionUntil(target)
	})
}

// WaitForCommit blocks until target is durable on stable storage,
// driving the flush from this thread if the pending handoff is won.
func (s *State) WaitForCommit(ctx context.Context, target Epoch) error {
	return s.wait(ctx, func() (bool, error) {
		return s.tryFlushUntil(target)
	})
}

// tryFlushUntil is one wait_for_commit poll: done once target is
// committed, otherwise run the flush body if this caller wins the
// commit-pending handoff.
func (s *State) tryFlushUntil(target Epoch) (bool, error) {
	s.mu.Lock()
	if s.fault != nil {
		err := s.fault
		s.mu.Unlock()
		return false, err
	}
	if s.committed.AfterEq(target) {
		s.mu.Unlock()
		return true, nil
	}
	s.mu.Unlock()

	if err := s.flushPending(); err != nil {
		return false, err
	}

	s.mu.Lock()
	done := s.committed.AfterEq(target)
	s.mu.Unlock()
	return done, nil
}

// flushPending runs the flush body if a sealed delta is posted and
// this caller wins the handoff. No-op otherwise.
func (s *State) flushPending() error {
	s.mu.Lock()
	if s.fault != nil {
		err := s.fault
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	if !s.takeCommitPending() {
		return nil
	}

	s.mu.Lock()
	epoch := s.staging
	s.mu.Unlock()

	// Single-threaded per epoch: the commit-pending handoff is won
	// by exactly one caller, and the bit is only posted again after
	// the next transition.
	err := s.backend.Flush(epoch)

	s.mu.Lock()
	if err != nil {
		s.poison("flush", epoch, err)
		err = s.fault
	} else {
		s.committed = epoch
	}
	s.broadcast()
	s.mu.Unlock()
	return err
}

// Sync makes every delta up to the current one durable: note the
// current epoch, make sure its transition has run, then wait until
// it is committed. Sync callers are serialized against each other,
// but the transition and flush election stays open to other threads,
// so a concurrent flusher pass helps rather than deadlocks.
func (s *State) Sync(ctx context.Context, unify Unify) error {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	if unify != UnifyForce && s.Idle() {
		// nothing written since the last commit; don't run an empty
		// transition just to prove it
		return nil
	}

	ref := s.Acquire()
	target := ref.Epoch()
	ref.Release()

	if err := s.WaitForTransition(ctx, target); err != nil {
		return err
	}
	return s.WaitForCommit(ctx, target)
}

package delta

// tryTransitionUntil is one wait_for_transition poll: done once the
// transition for target has run, otherwise try to become the
// transition driver and run it.
func (s *State) tryTransitionUntil(target Epoch) (bool, error) {
	s.mu.Lock()
	if s.fault != nil {
		err := s.fault
		s.mu.Unlock()
		return false, err
	}
	if s.staging.AfterEq(target) {
		s.mu.Unlock()
		return true, nil
	}
	if !s.tryBeginTransition() {
		// someone else is driving; wait for their broadcast
		s.mu.Unlock()
		return false, nil
	}
	// Recheck after winning the flag: the transition may have run
	// between the read above and the win. Running another one here
	// would seal a delta nobody asked to seal.
	if s.staging.AfterEq(target) {
		s.endTransition()
		s.broadcast()
		s.mu.Unlock()
		return true, nil
	}
	if prev := s.sealed; prev != nil && (prev.refs > 0 || !s.committed.AfterEq(prev.epoch)) {
		// The previous delta is still in flight: writers draining,
		// or its flush has not finished. Only one sealed delta may
		// exist at a time, so stand down; the drain or commit
		// broadcast restarts the election.
		s.endTransition()
		s.mu.Unlock()
		// Drive the posted flush from here so a transition waiter
		// makes progress even with no commit waiter around.
		if err := s.flushPending(); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.advanceTransition(); err != nil {
		return false, err
	}
	s.mu.Lock()
	done := s.staging.AfterEq(target)
	s.mu.Unlock()
	return done, nil
}

// advanceTransition runs the transition driver body: seal the open
// delta, stage it through the backend, advance the staging counter,
// and post the delta for flushing if its writers are already gone.
//
// Caller holds mu and owns the transition-running flag; both are
// released here.
func (s *State) advanceTransition() error {
	old := s.open
	old.sealed = true
	s.sealed = old
	s.open = &Ref{state: s, epoch: old.epoch.next()}
	s.mu.Unlock()

	// Single-threaded by the transition-running flag. Acquire keeps
	// working concurrently; new writers land in the next delta.
	err := s.backend.Transition(old.epoch)

	s.mu.Lock()
	if err != nil {
		s.poison("transition", old.epoch, err)
		err = s.fault
	} else {
		s.staging = old.epoch
		if old.refs == 0 {
			s.markCommitPending()
		}
	}
	s.endTransition()
	s.broadcast()
	s.mu.Unlock()
	return err
}

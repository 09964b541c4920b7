package delta

// Ref attributes a writer to the open delta. Acquire and Release
// never block; the commit machinery learns from the last Release of
// a sealed delta that its data is complete.
type Ref struct {
	state *State
	epoch Epoch

	// guarded by state.mu
	refs   int
	sealed bool
	dirty  bool
}

// Acquire joins the open delta and returns a handle for it. Callers
// must Release the handle when the write it covers is done.
func (s *State) Acquire() *Ref {
	s.mu.Lock()
	ref := s.open
	ref.refs++
	s.mu.Unlock()
	return ref
}

// Epoch returns the delta this handle is attributed to.
func (r *Ref) Epoch() Epoch {
	return r.epoch
}

// MarkDirty records that the delta carries changes. A delta nobody
// marked dirty is skipped by the Sync fast path.
func (r *Ref) MarkDirty() {
	s := r.state
	s.mu.Lock()
	r.dirty = true
	s.mu.Unlock()
}

// Release drops the handle. The last release of a sealed delta posts
// it for flushing.
func (r *Ref) Release() {
	s := r.state
	s.mu.Lock()
	r.refs--
	if r.refs < 0 {
		s.mu.Unlock()
		panic("delta: ref released twice")
	}
	if r.sealed && r.refs == 0 && s.staging.AfterEq(r.epoch) {
		s.markCommitPending()
	}
	s.broadcast()
	s.mu.Unlock()
}

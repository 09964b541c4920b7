// Package delta implements the commit coordination core of a tux3
// volume.
//
// Writes are batched into numbered deltas. Writers join the open
// delta with Acquire and leave it with Release. Any thread may ask
// for a delta to be staged (WaitForTransition) or made durable
// (WaitForCommit); the work itself is claimed through atomic state
// flags, so whichever thread wins the election runs the transition or
// flush body and everybody else just waits. Sync combines both waits
// into the fsync-style "make everything up to now durable" entry
// point.
//
// The package owns no storage; durable staging and flushing are
// delegated to a Backend.
package delta

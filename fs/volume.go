// Package fs implements tux3 volumes: write buffering, delta
// commits and segment storage.
package fs

import (
	"log"
	"sync"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"tux3.org/tux3/db"
	"tux3.org/tux3/fs/delta"
	"tux3.org/tux3/fs/wire"
	"tux3.org/tux3/kv"
)

// Volume buffers writes per delta and makes them durable through the
// delta commit machinery. Writes go to the open delta; a commit
// seals the delta, encodes its records into a segment and stores the
// segment in the KV under its content hash.
type Volume struct {
	db    *db.DB
	volID db.VolumeID
	store kv.KV
	state *delta.State

	flusher struct {
		// set once by InitFlusher before the volume is shared,
		// read-only after that
		mode   FlusherMode
		cancel context.CancelFunc
		grp    *errgroup.Group
	}

	buf struct {
		sync.Mutex
		// records written against each delta, moved to storage by
		// the flush of that delta
		records map[delta.Epoch][]*wire.Record
		// running count of records flushed to storage
		flushed uint64
	}
}

// Open returns the volume stored under the given ID. The last
// committed delta is loaded from the database; writes resume against
// the next delta.
//
// Caller guarantees the volume ID exists at least as long as the
// volume is in use.
func Open(database *db.DB, store kv.KV, volumeID *db.VolumeID) (*Volume, error) {
	v := &Volume{
		db:    database,
		volID: *volumeID,
		store: store,
	}
	v.buf.records = make(map[delta.Epoch][]*wire.Record)
	var committed delta.Epoch
	view := func(tx *db.Tx) error {
		vol, err := tx.Volumes().GetByVolumeID(volumeID)
		if err != nil {
			return err
		}
		committed, err = vol.Committed()
		return err
	}
	if err := database.View(view); err != nil {
		return nil, err
	}
	v.state = delta.NewState(commitBackend{v}, committed)
	return v, nil
}

// Close shuts down the flusher, committing buffered writes first.
func (v *Volume) Close() error {
	return v.ExitFlusher()
}

func (v *Volume) bucket(tx *db.Tx) *db.Volume {
	vol, err := tx.Volumes().GetByVolumeID(&v.volID)
	if err != nil {
		log.Printf("volume has disappeared: %v: %v", &v.volID, err)
	}
	return vol
}

// Write buffers one record against the open delta. The data is not
// durable until the delta commits.
func (v *Volume) Write(name string, data []byte) error {
	ref := v.state.Acquire()
	defer ref.Release()
	ref.MarkDirty()

	rec := &wire.Record{
		Name: name,
		Data: append([]byte(nil), data...),
	}
	v.buf.Lock()
	v.buf.records[ref.Epoch()] = append(v.buf.records[ref.Epoch()], rec)
	v.buf.Unlock()
	return nil
}

// Sync commits everything written so far and waits until it is
// durable. A forced unify is downgraded when commit scheduling
// belongs to an external driver, as forcing empty deltas from two
// schedulers at once has no useful meaning.
func (v *Volume) Sync(ctx context.Context, unify delta.Unify) error {
	if unify == delta.UnifyForce && v.flusher.mode == ExternalDriven {
		log.Printf("tux3: forced unify not supported with an external flusher, downgrading")
		unify = delta.UnifyAllow
	}
	return v.state.Sync(ctx, unify)
}

// Committed returns the latest delta known durable on stable
// storage.
func (v *Volume) Committed() delta.Epoch {
	return v.state.Committed()
}

func (v *Volume) flushedRecords() uint64 {
	v.buf.Lock()
	defer v.buf.Unlock()
	return v.buf.flushed
}

// ReadSegment loads the flushed segment of the given delta from
// storage and decodes its records.
func (v *Volume) ReadSegment(ctx context.Context, epoch delta.Epoch) ([]*wire.Record, error) {
	var hash []byte
	view := func(tx *db.Tx) error {
		h, err := v.bucket(tx).Segments().Get(epoch)
		if err != nil {
			return err
		}
		hash = append([]byte(nil), h...)
		return nil
	}
	if err := v.db.View(view); err != nil {
		return nil, err
	}
	buf, err := v.store.Get(ctx, hash)
	if err != nil {
		return nil, err
	}
	_, recs, err := decodeSegment(buf)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// commitBackend adapts a Volume to the delta commit machinery. The
// machinery guarantees each method runs single-threaded.
type commitBackend struct {
	v *Volume
}

var _ = delta.Backend(commitBackend{})

// Transition durably stages the delta: once the staging marker is in
// the database, the delta is frozen and owes storage a segment.
// Record data may still be arriving from draining writers; it is
// captured at flush time.
func (b commitBackend) Transition(epoch delta.Epoch) error {
	v := b.v
	update := func(tx *db.Tx) error {
		return v.bucket(tx).SetStaging(epoch)
	}
	return v.db.Update(update)
}

// Flush writes the delta's segment to storage and records the commit
// in the database. Runs only after the delta's last writer is gone,
// so the record buffer is complete.
func (b commitBackend) Flush(epoch delta.Epoch) error {
	v := b.v

	v.buf.Lock()
	recs := v.buf.records[epoch]
	delete(v.buf.records, epoch)
	v.buf.Unlock()

	buf, err := encodeSegment(epoch, recs)
	if err != nil {
		return err
	}
	hash := segmentHash(buf)

	ctx := context.Background()
	if err := v.store.Put(ctx, hash, buf); err != nil {
		return err
	}

	update := func(tx *db.Tx) error {
		vol := v.bucket(tx)
		if err := vol.Segments().Add(epoch, hash); err != nil {
			return err
		}
		return vol.SetCommitted(epoch)
	}
	if err := v.db.Update(update); err != nil {
		return err
	}

	v.buf.Lock()
	v.buf.flushed += uint64(len(recs))
	v.buf.Unlock()
	return nil
}

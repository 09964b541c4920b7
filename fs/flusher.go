package fs

import (
	"log"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"tux3.org/tux3/fs/delta"
)

// FlusherMode says who schedules delta commits for a volume.
type FlusherMode int

const (
	// SelfDriven runs a flusher goroutine that periodically commits
	// buffered writes.
	SelfDriven FlusherMode = iota
	// ExternalDriven leaves commit scheduling to the caller, who is
	// expected to call Writeback.
	ExternalDriven
)

// FlusherConfig configures commit scheduling for a volume.
type FlusherConfig struct {
	Mode FlusherMode
	// Interval between flusher passes. Zero means
	// DefaultFlushInterval. Ignored unless Mode is SelfDriven.
	Interval time.Duration
}

const DefaultFlushInterval = 10 * time.Second

// InitFlusher starts commit scheduling for the volume. With
// SelfDriven a background goroutine commits buffered writes every
// interval; with ExternalDriven nothing runs until Writeback is
// called.
//
// Must be called before the volume is shared with other goroutines.
func (v *Volume) InitFlusher(conf FlusherConfig) {
	v.flusher.mode = conf.Mode
	if conf.Mode != SelfDriven {
		return
	}
	interval := conf.Interval
	if interval == 0 {
		interval = DefaultFlushInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	grp, ctx := errgroup.WithContext(ctx)
	v.flusher.cancel = cancel
	v.flusher.grp = grp
	grp.Go(func() error {
		return v.flushLoop(ctx, interval)
	})
}

// ExitFlusher stops the flusher, running one last pass so buffered
// writes are not lost. Safe to call when no flusher was started.
func (v *Volume) ExitFlusher() error {
	if v.flusher.cancel == nil {
		return nil
	}
	v.flusher.cancel()
	err := v.flusher.grp.Wait()
	v.flusher.cancel = nil
	v.flusher.grp = nil
	return err
}

func (v *Volume) flushLoop(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			// final pass, with a fresh context; buffered writes
			// still need to reach storage
			if _, err := v.Writeback(context.Background()); err != nil {
				return err
			}
			return nil
		case <-ticker.C:
			if _, err := v.Writeback(ctx); err != nil {
				if ctx.Err() != nil {
					continue
				}
				if _, fatal := err.(*delta.FatalError); fatal {
					// the volume is poisoned; ticking again would
					// just repeat the same error
					return err
				}
				log.Printf("tux3: writeback: %v", err)
			}
		}
	}
}

// Writeback commits everything written so far and reports how many
// records reached stable storage during the pass. An idle volume
// does nothing.
func (v *Volume) Writeback(ctx context.Context) (records uint64, err error) {
	before := v.flushedRecords()
	if err := v.state.Sync(ctx, delta.UnifyAllow); err != nil {
		return 0, err
	}
	return v.flushedRecords() - before, nil
}

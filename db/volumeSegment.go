package db

import (
	"errors"

	"github.com/boltdb/bolt"

	"tux3.org/tux3/fs/delta"
)

var (
	ErrSegmentNotFound = errors.New("delta segment not found")
)

// VolumeSegments indexes the flushed delta segments of a volume by
// delta number.
type VolumeSegments struct {
	b *bolt.Bucket
}

// Add records the content hash naming the segment for the given
// delta.
func (vs *VolumeSegments) Add(epoch delta.Epoch, hash []byte) error {
	key, err := epoch.MarshalBinary()
	if err != nil {
		return err
	}
	return vs.b.Put(key, hash)
}

// Get returns the content hash for the given delta.
//
// Returned value is valid only while the transaction is alive.
func (vs *VolumeSegments) Get(epoch delta.Epoch) ([]byte, error) {
	key, err := epoch.MarshalBinary()
	if err != nil {
		return nil, err
	}
	hash := vs.b.Get(key)
	if hash == nil {
		return nil, ErrSegmentNotFound
	}
	return hash, nil
}

// List calls fn for each flushed segment, in delta order.
func (vs *VolumeSegments) List(fn func(epoch delta.Epoch, hash []byte) error) error {
	c := vs.b.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		var epoch delta.Epoch
		if err := epoch.UnmarshalBinary(k); err != nil {
			return err
		}
		if err := fn(epoch, v); err != nil {
			return err
		}
	}
	return nil
}

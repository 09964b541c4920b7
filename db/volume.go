package db

import (
	"crypto/rand"
	"errors"

	"github.com/boltdb/bolt"

	"tux3.org/tux3/fs/delta"
	"tux3.org/tux3/tokens"
)

var (
	ErrVolNameInvalid   = errors.New("invalid volume name")
	ErrVolNameNotFound  = errors.New("volume name not found")
	ErrVolNameExist     = errors.New("volume name exists already")
	ErrVolumeIDNotFound = errors.New("volume ID not found")
)

var (
	bucketVolume         = []byte(tokens.BucketVolume)
	bucketVolName        = []byte(tokens.BucketVolName)
	volumeStateCommitted = []byte(tokens.VolumeStateCommitted)
	volumeStateStaging   = []byte(tokens.VolumeStateStaging)
	volumeStateSegment   = []byte(tokens.VolumeStateSegment)
)

func (tx *Tx) initVolumes() error {
	if _, err := tx.CreateBucketIfNotExists(bucketVolume); err != nil {
		return err
	}
	if _, err := tx.CreateBucketIfNotExists(bucketVolName); err != nil {
		return err
	}
	return nil
}

func (tx *Tx) Volumes() *Volumes {
	p := &Volumes{
		volumes: tx.Bucket(bucketVolume),
		names:   tx.Bucket(bucketVolName),
	}
	return p
}

type Volumes struct {
	volumes *bolt.Bucket
	names   *bolt.Bucket
}

func (b *Volumes) GetByName(name string) (*Volume, error) {
	volID := b.names.Get([]byte(name))
	if volID == nil {
		return nil, ErrVolNameNotFound
	}
	bv := b.volumes.Bucket(volID)
	v := &Volume{
		b:  bv,
		id: volID,
	}
	return v, nil
}

func (b *Volumes) GetByVolumeID(volID *VolumeID) (*Volume, error) {
	bv := b.volumes.Bucket(volID[:])
	if bv == nil {
		return nil, ErrVolumeIDNotFound
	}
	v := &Volume{
		b:  bv,
		id: append([]byte(nil), volID[:]...),
	}
	return v, nil
}

// Create a totally new volume.
//
// If the name exists already, returns ErrVolNameExist.
func (b *Volumes) Create(name string) (*Volume, error) {
	if name == "" {
		return nil, ErrVolNameInvalid
	}
	n := []byte(name)
	if v := b.names.Get(n); v != nil {
		return nil, ErrVolNameExist
	}

random:
	id, err := randomVolumeID()
	if err != nil {
		return nil, err
	}
	bv, err := b.volumes.CreateBucket(id[:])
	if err == bolt.ErrBucketExists {
		goto random
	}
	if err != nil {
		return nil, err
	}

	if err := b.names.Put(n, id[:]); err != nil {
		return nil, err
	}
	if _, err := bv.CreateBucket(volumeStateSegment); err != nil {
		return nil, err
	}
	v := &Volume{
		b:  bv,
		id: id[:],
	}
	if err := v.SetCommitted(delta.Epoch(0)); err != nil {
		return nil, err
	}
	if err := v.SetStaging(delta.Epoch(0)); err != nil {
		return nil, err
	}
	return v, nil
}

func randomVolumeID() (*VolumeID, error) {
	var id VolumeID
	_, err := rand.Read(id[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

type Volume struct {
	b  *bolt.Bucket
	id []byte
}

// VolumeID copies the volume ID to out.
//
// out is valid after the transaction.
func (v *Volume) VolumeID(out *VolumeID) {
	copy(out[:], v.id)
}

// Committed returns the latest committed delta of the volume.
//
// Returned value is valid after the transaction.
func (v *Volume) Committed() (delta.Epoch, error) {
	val := v.b.Get(volumeStateCommitted)
	var epoch delta.Epoch
	if err := epoch.UnmarshalBinary(val); err != nil {
		return 0, err
	}
	return epoch, nil
}

// SetCommitted records the latest committed delta. The value is only
// safe to trust if the transaction commits.
func (v *Volume) SetCommitted(epoch delta.Epoch) error {
	buf, err := epoch.MarshalBinary()
	if err != nil {
		return err
	}
	if err := v.b.Put(volumeStateCommitted, buf); err != nil {
		return err
	}
	return nil
}

// Staging returns the latest staged delta of the volume.
//
// Returned value is valid after the transaction.
func (v *Volume) Staging() (delta.Epoch, error) {
	val := v.b.Get(volumeStateStaging)
	var epoch delta.Epoch
	if err := epoch.UnmarshalBinary(val); err != nil {
		return 0, err
	}
	return epoch, nil
}

// SetStaging records the latest staged delta. The value is only safe
// to trust if the transaction commits.
func (v *Volume) SetStaging(epoch delta.Epoch) error {
	buf, err := epoch.MarshalBinary()
	if err != nil {
		return err
	}
	if err := v.b.Put(volumeStateStaging, buf); err != nil {
		return err
	}
	return nil
}

// Segments provides access to the index of flushed delta segments of
// this volume.
func (v *Volume) Segments() *VolumeSegments {
	b := v.b.Bucket(volumeStateSegment)
	return &VolumeSegments{b}
}

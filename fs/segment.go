package fs

import (
	"bytes"
	"fmt"

	"github.com/codahale/blake2"

	"tux3.org/tux3/fs/delta"
	"tux3.org/tux3/fs/wire"
	"tux3.org/tux3/pb"
)

// segmentHashSize is the length of the content hash naming a segment
// in storage.
const segmentHashSize = 32

const hashPersonalization = "tux3:segment"

// segmentHash names a segment by its content.
func segmentHash(data []byte) []byte {
	var pers [blake2.PersonalSize]byte
	copy(pers[:], hashPersonalization)
	config := &blake2.Config{
		Size:     segmentHashSize,
		Personal: pers[:],
	}
	h := blake2.New(config)
	_, _ = h.Write(data)
	return h.Sum(nil)
}

// encodeSegment serializes a flushed delta: a Segment header
// followed by the delta's records, all uvarint length prefixed.
func encodeSegment(epoch delta.Epoch, recs []*wire.Record) ([]byte, error) {
	head := &wire.Segment{
		Delta:   uint32(epoch),
		Records: uint64(len(recs)),
	}
	buf, err := pb.MarshalPrefixBytes(head)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		b, err := pb.MarshalPrefixBytes(rec)
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
	}
	return buf, nil
}

// decodeSegment parses a segment back into its delta number and
// records.
func decodeSegment(buf []byte) (delta.Epoch, []*wire.Record, error) {
	rat := bytes.NewReader(buf)
	var off int64

	var head wire.Segment
	n, err := pb.UnmarshalPrefixAt(rat, off, &head)
	if err != nil && err != pb.ErrEmptyMessage {
		return 0, nil, fmt.Errorf("bad segment header: %v", err)
	}
	off += int64(n)

	recs := make([]*wire.Record, 0, head.Records)
	for i := uint64(0); i < head.Records; i++ {
		rec := &wire.Record{}
		n, err := pb.UnmarshalPrefixAt(rat, off, rec)
		if err == pb.ErrEmptyMessage {
			// a record with no name and no data marshals to zero
			// bytes; the frame is still there and the record counts
			err = nil
		}
		if err != nil {
			return 0, nil, fmt.Errorf("bad segment record: %v", err)
		}
		off += int64(n)
		recs = append(recs, rec)
	}
	return delta.Epoch(head.Delta), recs, nil
}

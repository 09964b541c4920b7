package tokens

// Keys in the bucket BucketVolume/VOLID
const (
	// Key holding the latest committed delta number, 4 bytes big
	// endian.
	VolumeStateCommitted = "committed"

	// Key holding the latest staged delta number, 4 bytes big
	// endian. May run ahead of committed while a flush is in
	// flight.
	VolumeStateStaging = "staging"

	// The DB bucket that indexes flushed delta segments. Key is the
	// delta number, 4 bytes big endian; value is the content hash
	// naming the segment in storage.
	VolumeStateSegment = "segment"
)

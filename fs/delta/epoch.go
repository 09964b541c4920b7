package delta

import (
	"encoding"
	"encoding/binary"
	"errors"
)

// Epoch numbers a delta, one atomically committed generation of
// writes. The counter wraps around; compare epochs with AfterEq,
// never with plain < or >.
type Epoch uint32

// MaxDistance is the largest distance between two live epochs for
// which AfterEq still orders them correctly.
const MaxDistance = 1<<31 - 1

// AfterEq reports whether a is the same delta as b or a later one.
//
// The subtraction is done on the unsigned counter and the result
// reinterpreted as signed, so the order survives wraparound as long
// as a and b are within MaxDistance of each other.
func (a Epoch) AfterEq(b Epoch) bool {
	return int32(a-b) >= 0
}

func (e Epoch) next() Epoch {
	return e + 1
}

var _ = encoding.BinaryMarshaler(Epoch(0))

func (e Epoch) MarshalBinary() ([]byte, error) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(e))
	return tmp[:], nil
}

var _ = encoding.BinaryUnmarshaler((*Epoch)(nil))

func (e *Epoch) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return errors.New("binary epoch is wrong length")
	}
	*e = Epoch(binary.BigEndian.Uint32(data))
	return nil
}

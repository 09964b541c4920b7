package db

import (
	"encoding"
	"flag"
	"fmt"

	"github.com/tv42/zbase32"
)

const VolumeIDLen = 32

type VolumeID [VolumeIDLen]byte

var _ encoding.BinaryMarshaler = (*VolumeID)(nil)

func (p *VolumeID) MarshalBinary() (data []byte, err error) {
	return p[:], nil
}

var _ encoding.BinaryUnmarshaler = (*VolumeID)(nil)

func (p *VolumeID) UnmarshalBinary(data []byte) error {
	if len(data) != len(p) {
		return fmt.Errorf("volume id must be exactly %d bytes", VolumeIDLen)
	}
	copy(p[:], data)
	return nil
}

var _ flag.Value = (*VolumeID)(nil)

func (k *VolumeID) String() string {
	return zbase32.EncodeToString(k[:])
}

func (k *VolumeID) Set(value string) error {
	buf, err := zbase32.DecodeString(value)
	if err != nil {
		return fmt.Errorf("not a valid volume id: %v", err)
	}
	if len(buf) != VolumeIDLen {
		return fmt.Errorf("not a valid volume id: wrong size")
	}
	copy(k[:], buf)
	return nil
}

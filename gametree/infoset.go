package gametree

import (
	"github.com/pkg/errors"
)

type infoSet struct {
	player uint8
}

// Key implements cfr.InfoSet.
func (is *infoSet) Key() string {
	return string([]byte{is.player})
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (is *infoSet) MarshalBinary() ([]byte, error) {
	return []byte{is.player}, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (is *infoSet) UnmarshalBinary(buf []byte) error {
	if len(buf) != 1 {
		return errors.Errorf("expected 1 byte, got %d", len(buf))
	}

	is.player = buf[0]
	return nil
}

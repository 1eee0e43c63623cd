package ints_ints

import (
	"encoding/binary"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// SerializeInt32s writes the length of the list followed by each value as
// a big endian word. Non-negative values therefore sort numerically inside
// the B+tree.
func SerializeInt32s(list []int32) []byte {
	bytes := make([]byte, 4*(1+len(list)))
	binary.BigEndian.PutUint32(bytes[0:4], uint32(len(list)))
	s := 4
	for _, i := range list {
		binary.BigEndian.PutUint32(bytes[s:s+4], uint32(i))
		s += 4
	}
	return bytes
}

func DeserializeInt32s(bytes []byte) ([]int32, error) {
	if len(bytes) < 4 {
		return nil, errors.Errorf("int32 list too short (%d bytes)", len(bytes))
	}
	size := int(binary.BigEndian.Uint32(bytes[0:4]))
	if len(bytes) != 4*(size+1) {
		return nil, errors.Errorf("int32 list claims %d items but has %d bytes", size, len(bytes))
	}
	list := make([]int32, 0, size)
	for s := 4; s < len(bytes); s += 4 {
		list = append(list, int32(binary.BigEndian.Uint32(bytes[s:s+4])))
	}
	return list, nil
}

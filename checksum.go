package bunk

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math/bits"
)

// checksum is a streaming 32-bit FNV-1a hash. It yields the checksum bytes
// and, while encoding, the seed for decorations.
type checksum struct {
	h   hash.Hash32
	one [1]byte
}

func newChecksum() *checksum {
	return &checksum{h: fnv.New32a()}
}

func (c *checksum) update(b byte) {
	c.one[0] = b
	c.h.Write(c.one[:])
}

// seed is the number of set bits of the current hash value.
func (c *checksum) seed() int {
	return bits.OnesCount32(c.h.Sum32())
}

// digest returns the current hash value in little-endian byte order.
func (c *checksum) digest() [4]byte {
	var d [4]byte
	binary.LittleEndian.PutUint32(d[:], c.h.Sum32())
	return d
}

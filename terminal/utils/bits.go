package utils

import (
	"math/bits"
	"sync/atomic"
)

const bitSetSize = 64 // Number of bits in a uint64

// StaticBitSet is a fixed size bit set. The buffer uses one bit per row to
// remember which rows changed since the last paint. Bits are updated
// atomically: windows writing disjoint cells of the same row from different
// goroutines touch the same word.
type StaticBitSet struct {
	words []uint64
	size  int
}

// NewStaticBitSet creates a new StaticBitSet with the given size.
func NewStaticBitSet(size int) *StaticBitSet {
	Assert(size >= 0, "negative bit set size")
	return &StaticBitSet{
		words: make([]uint64, (size+bitSetSize-1)/bitSetSize),
		size:  size,
	}
}

// NewStaticBitSetFull creates a StaticBitSet with all bits set to 1.
func NewStaticBitSetFull(size int) *StaticBitSet {
	set := NewStaticBitSet(size)
	set.SetRange(0, size)
	return set
}

// Size returns the number of addressable bits.
func (s *StaticBitSet) Size() int {
	return s.size
}

// Set sets the bit at the given idx to 1
func (s *StaticBitSet) Set(idx int) {
	s.check(idx)
	atomic.OrUint64(&s.words[idx/bitSetSize], 1<<(idx%bitSetSize))
}

// Unset clears the bit at the given idx
func (s *StaticBitSet) Unset(idx int) {
	s.check(idx)
	atomic.AndUint64(&s.words[idx/bitSetSize], ^(uint64(1) << (idx % bitSetSize)))
}

// IsSet returns if bit at given idx is set
func (s *StaticBitSet) IsSet(idx int) bool {
	s.check(idx)
	return atomic.LoadUint64(&s.words[idx/bitSetSize])&(1<<(idx%bitSetSize)) != 0
}

// SetRange sets every bit in [start, end).
func (s *StaticBitSet) SetRange(start, end int) {
	Assert(0 <= start && start <= end, "invalid range")
	Assert(end <= s.size, "End index out of bounds")
	for idx := start; idx < end; {
		word, offset := idx/bitSetSize, idx%bitSetSize
		n := min(bitSetSize-offset, end-idx)
		var mask uint64 = ^uint64(0)
		if n < bitSetSize {
			mask = ((1 << n) - 1) << offset
		}
		atomic.OrUint64(&s.words[word], mask)
		idx += n
	}
}

// Count counts the number of bits set
func (s *StaticBitSet) Count() int {
	total := 0
	for i := range s.words {
		total += bits.OnesCount64(atomic.LoadUint64(&s.words[i]))
	}
	return total
}

// Clear clears the bits set
func (s *StaticBitSet) Clear() {
	for i := range s.words {
		atomic.StoreUint64(&s.words[i], 0)
	}
}

func (s *StaticBitSet) check(idx int) {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
}

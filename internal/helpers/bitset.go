package helpers

// A set of byte offsets into a single source file. The parser uses one of
// these to remember the positions where a speculative arrow function parse
// has already failed so that the attempt is never repeated.
type BitSet struct {
	entries []byte
}

func NewBitSet(bitCount uint) BitSet {
	return BitSet{make([]byte, (bitCount+7)/8)}
}

func (bs BitSet) HasBit(bit uint) bool {
	if bit/8 >= uint(len(bs.entries)) {
		return false
	}
	return (bs.entries[bit/8] & (1 << (bit & 7))) != 0
}

// Bits past the end of the set are silently ignored
func (bs BitSet) SetBit(bit uint) {
	if bit/8 < uint(len(bs.entries)) {
		bs.entries[bit/8] |= 1 << (bit & 7)
	}
}

func (bs BitSet) Count() int {
	count := 0
	for _, b := range bs.entries {
		for ; b != 0; b &= b - 1 {
			count++
		}
	}
	return count
}

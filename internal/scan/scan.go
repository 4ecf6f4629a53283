package scan

// WordBits is the number of bits per storage word.
const WordBits = 64

const (
	wordShift = 6
	bitMask   = WordBits - 1
)

// Position is a point in a scan: the word holding the bit, a single-bit mask
// selecting it within that word, and the absolute bit index.
//
// While Index < capacity, Word == Index/64 and Mask == 1<<(Index%64).
type Position struct {
	Word  int
	Mask  uint64
	Index int
}

// At returns the Position of bit index.
func At(index int) Position {
	return Position{
		Word:  index >> wordShift,
		Mask:  uint64(1) << (index & bitMask),
		Index: index,
	}
}

// Before returns the Position just before bit 0. Stepping from it lands on
// bit 0 of word 0.
func Before() Position {
	return Position{Word: -1, Mask: 0, Index: -1}
}

// WordCount returns the number of words needed to hold capacity bits.
// It does not overflow for capacities up to math.MaxInt.
func WordCount(capacity int) int {
	n := capacity / WordBits
	if capacity%WordBits != 0 {
		n++
	}
	return n
}

// Seek returns the first set bit at or after p, or false if there is none
// below capacity. len(words) must be at least WordCount(capacity).
func Seek(words []uint64, capacity int, p Position) (Position, bool) {
	for p.Index < capacity {
		if p.Mask&words[p.Word] != 0 {
			return p, true
		}
		p = step(words, capacity, p)
	}
	return p, false
}

// Advance steps one bit past p and seeks from there.
func Advance(words []uint64, capacity int, p Position) (Position, bool) {
	if p.Index >= capacity {
		return p, false
	}
	return Seek(words, capacity, step(words, capacity, p))
}

// step moves p to the next bit. When the mask runs off the top of the word it
// starts the next word and jumps over every zero word, stopping early once
// the index reaches capacity so storage is never read past the last word.
func step(words []uint64, capacity int, p Position) Position {
	p.Mask <<= 1
	p.Index++

	if p.Mask != 0 {
		return p
	}

	p.Mask = 1
	p.Word++
	for p.Index < capacity && words[p.Word] == 0 {
		p.Word++
		p.Index += WordBits
	}
	return p
}

// Linear is the bit-by-bit scan without word skipping. It returns the same
// answers as Seek and exists as a reference for it.
func Linear(words []uint64, capacity int, start int) (int, bool) {
	for i := max(start, 0); i < capacity; i++ {
		if words[i>>wordShift]&(uint64(1)<<(i&bitMask)) != 0 {
			return i, true
		}
	}
	return -1, false
}

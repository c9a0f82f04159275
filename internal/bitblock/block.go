package bitblock

import (
	"math/bits"

	"github.com/gostreak/hbtree/internal/bitops"
)

// Block is a fixed-width bitmask of `width` logical bits, backed by one or
// more 64-bit words. width is always 2^W for some per-level index width W.
type Block struct {
	width int
	words []uint64
}

// New returns a zeroed Block of the given logical bit width.
func New(width int) Block {
	if width <= 0 {
		panic("bitblock: width must be positive")
	}
	return Block{
		width: width,
		words: make([]uint64, (width+63)/64),
	}
}

// Width returns the logical bit width of the block (2^W).
func (b Block) Width() int { return b.width }

func wordIndex(i int) int { return i >> 6 }
func bitMask(i int) uint64 { return uint64(1) << uint(i&63) }

// IsSet reports whether bit i is set.
func (b Block) IsSet(i int) bool {
	return b.words[wordIndex(i)]&bitMask(i) != 0
}

// Set sets bit i.
func (b Block) Set(i int) {
	b.words[wordIndex(i)] |= bitMask(i)
}

// Clear clears bit i.
func (b Block) Clear(i int) {
	b.words[wordIndex(i)] &^= bitMask(i)
}

// IsZero reports whether no bit is set.
func (b Block) IsZero() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// PopCount returns the total number of set bits.
func (b Block) PopCount() int {
	return bitops.PopcountWords(b.words)
}

// Rank returns the number of set bits strictly below index i:
// popcount(block AND ((1 << i) - 1)), generalized across words for
// widths greater than 64 bits (sum of popcounts of lower words plus a
// partial popcount of the word containing i).
func (b Block) Rank(i int) int {
	wi := wordIndex(i)
	count := 0
	if wi > 0 {
		count = bitops.PopcountWords(b.words[:wi])
	}
	if rem := i & 63; rem != 0 {
		count += bits.OnesCount64(b.words[wi] & (bitMask(rem) - 1))
	}
	return count
}

// FirstSet returns the index of the lowest set bit and true, or (0, false)
// if the block is zero.
func (b Block) FirstSet() (int, bool) {
	for wi, w := range b.words {
		if w != 0 {
			return wi*64 + bits.TrailingZeros64(w), true
		}
	}
	return 0, false
}

// NextSet returns the lowest set bit at index >= from, and true, or
// (0, false) if none exists, so a set-bit scan can resume at from.
func (b Block) NextSet(from int) (int, bool) {
	if from >= b.width {
		return 0, false
	}
	wi := wordIndex(from)
	w := b.words[wi] &^ (bitMask(from) - 1)
	if w != 0 {
		return wi*64 + bits.TrailingZeros64(w), true
	}
	for wi++; wi < len(b.words); wi++ {
		if b.words[wi] != 0 {
			return wi*64 + bits.TrailingZeros64(b.words[wi]), true
		}
	}
	return 0, false
}

// IterSet returns the ascending set-bit indices of the block, implemented by
// repeatedly clearing the lowest set bit of a scratch copy.
func (b Block) IterSet() []int {
	out := make([]int, 0, b.PopCount())
	scratch := make([]uint64, len(b.words))
	copy(scratch, b.words)
	for wi, w := range scratch {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, wi*64+tz)
			w &= w - 1
		}
	}
	return out
}

// Clone returns an independent copy of the block.
func (b Block) Clone() Block {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return Block{width: b.width, words: words}
}

// And returns the bitwise AND of b and other. Both must share the same width.
func And(b, other Block) Block {
	out := New(b.width)
	bitops.AndWords(out.words, b.words, other.words)
	return out
}

// Or returns the bitwise OR of b and other. Both must share the same width.
func Or(b, other Block) Block {
	out := New(b.width)
	bitops.OrWords(out.words, b.words, other.words)
	return out
}

// AndMany reduces AND across one or more blocks, short-circuiting to a zero
// block as soon as an operand is found to be zero.
func AndMany(blocks []Block) Block {
	out := blocks[0].Clone()
	for _, blk := range blocks[1:] {
		if out.IsZero() {
			return out
		}
		out = And(out, blk)
	}
	return out
}

// OrMany reduces OR across one or more blocks.
func OrMany(blocks []Block) Block {
	out := New(blocks[0].width)
	for _, blk := range blocks {
		out = Or(out, blk)
	}
	return out
}

package bitops

import "math/bits"

// Kernel function pointers. Generic implementations are the default;
// platform-specific init() functions may override these with SIMD-backed
// versions when available (see capability.go).
var (
	kernelAndWords      = andWordsGeneric
	kernelOrWords       = orWordsGeneric
	kernelAndNotWords   = andNotWordsGeneric
	kernelPopcountWords = popcountWordsGeneric
)

// AndWords computes dst[i] = a[i] & b[i] for all words into dst.
// len(a), len(b) and len(dst) must be equal.
func AndWords(dst, a, b []uint64) {
	kernelAndWords(dst, a, b)
}

// OrWords computes dst[i] = a[i] | b[i] for all words into dst.
func OrWords(dst, a, b []uint64) {
	kernelOrWords(dst, a, b)
}

// AndNotWords computes dst[i] = a[i] &^ b[i] for all words into dst.
func AndNotWords(dst, a, b []uint64) {
	kernelAndNotWords(dst, a, b)
}

// PopcountWords returns the total number of set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

func andWordsGeneric(dst, a, b []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = a[i] & b[i]
		dst[i+1] = a[i+1] & b[i+1]
		dst[i+2] = a[i+2] & b[i+2]
		dst[i+3] = a[i+3] & b[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] & b[i]
	}
}

func orWordsGeneric(dst, a, b []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = a[i] | b[i]
		dst[i+1] = a[i+1] | b[i+1]
		dst[i+2] = a[i+2] | b[i+2]
		dst[i+3] = a[i+3] | b[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] | b[i]
	}
}

func andNotWordsGeneric(dst, a, b []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = a[i] &^ b[i]
		dst[i+1] = a[i+1] &^ b[i+1]
		dst[i+2] = a[i+2] &^ b[i+2]
		dst[i+3] = a[i+3] &^ b[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] &^ b[i]
	}
}

func popcountWordsGeneric(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

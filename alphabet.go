package sais

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/bits"
	"slices"
)

// linearCount estimates the number of distinct symbols in text using a
// probabilistic counting scheme: each symbol is hashed into a bit position
// of a scratch bitmap, then the fraction of still-zero bits is plugged into
// the linear-counting formula. Used only to size the compaction map below,
// never to decide correctness.
func linearCount(text []int32, tmp []int32) uint64 {
	n := len(text)
	totalBits := uint64(n * 32)

	var buf [4]byte
	h := fnv.New64a()

	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(buf[:], uint32(text[i]))
		h.Reset()
		h.Write(buf[:])
		x := h.Sum64()
		bitIndex := x % totalBits
		slot := bitIndex / 32
		bit := uint32(bitIndex % 32)
		tmp[slot] |= int32(1 << bit)
	}

	zeroBits := 0
	for i := 0; i < n; i++ {
		val := uint32(tmp[i])
		zeroBits += bits.OnesCount32(^val)
		tmp[i] = 0
	}

	if zeroBits == 0 {
		return totalBits
	}
	estimate := -float64(totalBits) * math.Log(float64(zeroBits)/float64(totalBits))
	return uint64(estimate + 0.5)
}

// compactAlphabet maps the distinct values of symbols onto a dense
// [0, alphabetSize) domain that preserves their relative order, so
// lexicographic order over the compacted codes matches lexicographic order
// over the original symbols.
func compactAlphabet(symbols []int32) ([]uint32, int) {
	n := len(symbols)
	if n == 0 {
		return []uint32{}, 0
	}

	tmp := make([]int32, n)
	hint := int(linearCount(symbols, tmp))
	if hint < 1 {
		hint = 1
	}

	seen := make(map[int32]struct{}, hint+hint/10)
	for _, s := range symbols {
		seen[s] = struct{}{}
	}
	distinct := make([]int32, 0, len(seen))
	for s := range seen {
		distinct = append(distinct, s)
	}
	slices.Sort(distinct)

	code := make(map[int32]uint32, len(distinct))
	for i, s := range distinct {
		code[s] = uint32(i)
	}

	compacted := make([]uint32, n)
	for i, s := range symbols {
		compacted[i] = code[s]
	}
	return compacted, len(distinct)
}

// BuildSuffixArrayArbitrary builds a suffix array over a sequence of
// arbitrary int32 symbols (runes, token ids, or any comparable 32-bit
// quantity) rather than bytes. Symbols are compacted onto a dense alphabet
// before delegating to the same generic core the byte-alphabet entry points
// use; the returned SA is a permutation of [0, len(symbols)) exactly as for
// BuildSuffixArray, and needs no translation since it indexes text
// positions, not compacted codes.
func BuildSuffixArrayArbitrary[I Unsigned](symbols []int32) []I {
	compacted, alphabetSize := compactAlphabet(symbols)
	sa := make([]I, len(compacted))
	types := make([]Kind, len(compacted))
	buckets := make([]I, alphabetSize+1)
	SortGenericWithScratch[uint32, I](compacted, sa, types, &buckets, alphabetSize)
	return sa
}

package sais

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMississippi(t *testing.T) {
	text := []byte("mississippi")
	types := make([]Kind, len(text))
	classify(text, types)

	// m  i  s  s  i  s  s  i  p  p  i
	// L  S  L  L  S  L  L  S  L  L  L   (canonical SA-IS classification)
	want := []Kind{TypeL, TypeS, TypeL, TypeL, TypeS, TypeL, TypeL, TypeS, TypeL, TypeL, TypeL}
	assert.Equal(t, want, types)
}

func TestClassifySingleByte(t *testing.T) {
	types := make([]Kind, 1)
	classify([]byte{7}, types)
	assert.Equal(t, []Kind{TypeL}, types)
}

func TestClassifySubSliceRestoresSamePrefix(t *testing.T) {
	text := []byte("ACGTGCCTAGCCTACCGTGCC")
	full := make([]Kind, len(text))
	classify(text, full)

	partial := make([]Kind, len(text))
	partial[len(text)-1] = full[len(text)-1]
	classifySuffix(text, partial)
	assert.Equal(t, full, partial)
}

func TestIsLMSMississippi(t *testing.T) {
	text := []byte("mississippi")
	types := make([]Kind, len(text))
	classify(text, types)

	var lms []int
	for i := 1; i < len(text); i++ {
		if isLMS(i, types) {
			lms = append(lms, i)
		}
	}
	assert.Equal(t, []int{1, 4, 7}, lms)
}

// TestLMSEqualityLaw checks property 6: the reducer names two LMS positions
// identically iff their LMS substrings are byte-wise and type-wise equal.
func TestLMSEqualityLaw(t *testing.T) {
	text := []byte("aababab")
	types := make([]Kind, len(text))
	classify(text, types)

	var lmsPositions []int
	for i := 1; i < len(text); i++ {
		if isLMS(i, types) {
			lmsPositions = append(lmsPositions, i)
		}
	}
	assert.GreaterOrEqual(t, len(lmsPositions), 2)

	// lmsSubstringsEqual must be symmetric and reflexive.
	for _, a := range lmsPositions {
		aEnd := lmsSubstringEnd(a, types)
		assert.True(t, lmsSubstringsEqual(text, types, a, aEnd, a, aEnd))
		for _, b := range lmsPositions {
			bEnd := lmsSubstringEnd(b, types)
			assert.Equal(t,
				lmsSubstringsEqual(text, types, a, aEnd, b, bEnd),
				lmsSubstringsEqual(text, types, b, bEnd, a, aEnd))
		}
	}

	// Run the reducer over a pre-sorted LMS order (the suffix array
	// restricted to LMS positions) and check that two positions receive the
	// same name exactly when their substrings compare equal.
	sa := BuildSuffixArray[uint32](text)
	var sortedLMS []int
	isLMSPos := make(map[int]bool, len(lmsPositions))
	for _, p := range lmsPositions {
		isLMSPos[p] = true
	}
	for _, s := range sa {
		if isLMSPos[int(s)] {
			sortedLMS = append(sortedLMS, int(s))
		}
	}

	suffixes := make([]uint32, len(text))
	for i, p := range sortedLMS {
		suffixes[i] = uint32(p)
	}
	r := reduce[byte, uint32](text, types, suffixes)

	// reducedStr lists the names in text order of the LMS positions.
	nameOf := make(map[int]uint32, len(lmsPositions))
	for i, p := range lmsPositions {
		nameOf[p] = r.reducedStr[i]
	}
	for _, a := range lmsPositions {
		aEnd := lmsSubstringEnd(a, types)
		for _, b := range lmsPositions {
			bEnd := lmsSubstringEnd(b, types)
			equal := lmsSubstringsEqual(text, types, a, aEnd, b, bEnd)
			assert.Equal(t, equal, nameOf[a] == nameOf[b], "positions %d,%d", a, b)
		}
	}
}

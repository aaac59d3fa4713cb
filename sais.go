package sais

// ByteAlphabetSize is the alphabet size of the outer call: bytes range over
// [0, 256).
const ByteAlphabetSize = 256

// BuildSuffixArray allocates scratch buffers and returns the suffix array of
// text. It panics if len(text) exceeds the largest length the index type I
// can address (nilIndex[I]() - 1).
func BuildSuffixArray[I Unsigned](text []byte) []I {
	sa := make([]I, len(text))
	types := make([]Kind, len(text))
	buckets := make([]I, ByteAlphabetSize+1)
	SortWithScratch(text, sa, types, &buckets)
	return sa
}

// SortWithScratch is the main entry point. Preconditions:
//
//	len(sa) == len(types) == len(text)
//	len(*buckets) >= ByteAlphabetSize + 1
//	len(text) <= nilIndex[I]() - 1
//
// sa's initial contents are ignored; types and *buckets are treated as
// uninitialised scratch. *buckets may grow during the call to accommodate
// deeper recursion levels and is restored to its original length before
// return. On success sa holds the suffix array of text.
//
// Violated preconditions panic with ErrLengthMismatch, ErrAlphabetTooSmall,
// or ErrIndexOverflow; these are contract bugs in the caller, not recoverable
// runtime conditions.
func SortWithScratch[I Unsigned](text []byte, sa []I, types []Kind, buckets *[]I) {
	SortGenericWithScratch[byte, I](text, sa, types, buckets, ByteAlphabetSize)
}

// SortGenericWithScratch is SortWithScratch generalised over the character
// type, for callers whose alphabet isn't a byte (see the arbitrary-alphabet
// front end). alphabetSize replaces the hardcoded ByteAlphabetSize.
func SortGenericWithScratch[C, I Unsigned](text []C, sa []I, types []Kind, buckets *[]I, alphabetSize int) {
	if len(sa) != len(text) || len(types) != len(text) {
		panic(ErrLengthMismatch)
	}
	if len(*buckets) < alphabetSize+1 {
		panic(ErrAlphabetTooSmall)
	}
	if uint64(len(text)) > uint64(nilIndex[I]())-1 {
		panic(ErrIndexOverflow)
	}
	if len(text) == 0 {
		return
	}
	inducedSort[C, I](text, sa, types, buckets)
}

// growBuckets resizes *buckets to exactly required slots, all zeroed. It
// reuses the existing backing array when it has enough capacity.
func growBuckets[I Unsigned](buckets *[]I, required int) {
	b := *buckets
	if required <= cap(b) {
		b = b[:required]
	} else {
		b = make([]I, required)
	}
	clearBuckets(b)
	*buckets = b
}

// inducedSort is the recursive SA-IS core (§4.6 of the design): classify,
// seed and induce the LMS order, reduce to a shorter string, recurse (or
// accept already-unique names), translate the recursive result back to text
// positions, and re-induce the full array.
//
// C is the character type of this level: byte for the outer call, I for
// every recursive call, since the reduced string is a sequence of
// lexicographic names stored at index width I.
func inducedSort[C, I Unsigned](text []C, sa []I, types []Kind, buckets *[]I) {
	classify(text, types)

	r := induce[C, I](text, types, sa, *buckets)
	if r != nil {
		lmsCount := len(r.lmsSorted)
		assertInvariant(lmsCount == len(r.reducedStr))

		if r.maxOrder < len(r.reducedStr)-1 {
			// Some LMS substrings tied on name: recurse to resolve the order.
			sub := r.lmsSorted
			oldLen := len(*buckets)
			growBuckets(buckets, r.maxOrder+1)

			inducedSort[I, I](r.reducedStr, sub, types[:len(sub)], buckets)

			// Restore types without rescanning the sentinel boundary.
			classifySuffix(text, types[:len(sub)+1])
			growBuckets(buckets, oldLen)

			// Gather LMS positions in text order, then translate the
			// recursive result (indices into that order) back to positions.
			suffixIndices := r.reducedStr
			k := 0
			for pos := 1; pos < len(types); pos++ {
				if isLMS(pos, types) {
					suffixIndices[k] = I(pos)
					k++
				}
			}
			assertInvariant(k == lmsCount)
			for i := 0; i < lmsCount; i++ {
				sub[i] = suffixIndices[int(sub[i])]
			}
		}
		// Else: names were already unique, so lmsSorted is already the
		// correct order of LMS positions.

		nilV := nilIndex[I]()
		for i := lmsCount; i < len(sa); i++ {
			sa[i] = nilV
		}

		clearBuckets(*buckets)
		makeEnds(text, *buckets)
		for i := lmsCount - 1; i >= 0; i-- {
			suf := sa[i]
			sa[i] = nilV
			c := int(text[int(suf)])
			sa[nextReverse(*buckets, c)] = suf
		}
		clearBuckets(*buckets)
	}

	induceLS(text, types, *buckets, sa)
}

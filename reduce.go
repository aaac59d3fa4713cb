package sais

// retain moves every value matching keep to the front of values, preserving
// their relative order, and returns the matched prefix and the remaining
// suffix. The contents of the remaining suffix are unspecified afterwards.
func retain[I Unsigned](values []I, keep func(I) bool) (kept, rest []I) {
	w := 0
	for _, v := range values {
		if keep(v) {
			values[w] = v
			w++
		}
	}
	return values[:w], values[w:]
}

// reduce compacts the sorted LMS positions in suffixes to its front, assigns
// each LMS substring a lexicographic name (comparing value and L/S type
// against its predecessor), and packs the names into a reduced string in
// text order. Assumes suffixes already holds the LMS positions in sorted
// order (possibly interleaved with other induced entries) and that at least
// one LMS position exists.
func reduce[C, I Unsigned](text []C, types []Kind, suffixes []I) reduced[I] {
	lmsSorted, rest := retain(suffixes, func(v I) bool {
		return v != 0 && isLMS(int(v), types)
	})

	nilV := nilIndex[I]()
	for i := range rest {
		rest[i] = nilV
	}

	// LMS positions are at least two apart, so suffix/2 is injective over them.
	first := int(lmsSorted[0])
	rest[first/2] = 0
	lastStart, lastEnd := first, lmsSubstringEnd(first, types)

	var order int
	for _, suf := range lmsSorted[1:] {
		s := int(suf)
		end := lmsSubstringEnd(s, types)
		if !lmsSubstringsEqual(text, types, lastStart, lastEnd, s, end) {
			order++
		}
		rest[s/2] = I(order)
		lastStart, lastEnd = s, end
	}

	reducedStr, _ := retain(rest, func(v I) bool { return v != nilV })
	return reduced[I]{lmsSorted: lmsSorted, reducedStr: reducedStr, maxOrder: order}
}

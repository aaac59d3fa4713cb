package sais

// isLMS reports whether position is a leftmost S-type position: an S-type
// suffix whose immediate left neighbour is L-type. position must be >= 1;
// position 0 is never LMS by definition.
func isLMS(position int, types []Kind) bool {
	return types[position-1] == TypeL && types[position] == TypeS
}

// lmsSubstringEnd returns the exclusive end of the LMS substring starting at
// index: the position just after the next LMS position at or after
// index+1, or len(types) if none follows.
func lmsSubstringEnd(index int, types []Kind) int {
	for i := index + 1; i < len(types); i++ {
		if isLMS(i, types) {
			return i + 1
		}
	}
	return len(types)
}

// lmsSubstringsEqual reports whether the LMS substrings [i, iEnd) and
// [j, jEnd) are equal: same length, same bytes, and same L/S type at every
// corresponding position.
func lmsSubstringsEqual[C Unsigned](text []C, types []Kind, i, iEnd, j, jEnd int) bool {
	if iEnd-i != jEnd-j {
		return false
	}
	for k := 0; k < iEnd-i; k++ {
		if text[i+k] != text[j+k] || types[i+k] != types[j+k] {
			return false
		}
	}
	return true
}

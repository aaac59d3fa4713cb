package sais

// assertInvariant panics with errInternalInvariantViolated when cond is
// false. Unlike the LengthMismatch/AlphabetTooSmall/IndexOverflow checks at
// the public entry points, a failure here indicates a bug in the induction
// or reduction logic itself rather than a caller error, so it is checked
// unconditionally rather than compiled out in a release mode.
func assertInvariant(cond bool) {
	if !cond {
		panic(errInternalInvariantViolated)
	}
}

package sais

// config holds the settings Build dispatches on.
type config struct {
	radix     bool
	noCompact bool
}

// Option is a functional option for Build.
type Option func(*config)

// WithRadix selects the in-place radix suffix sort instead of SA-IS. Useful
// when the text is short or the alphabet is small enough that radix's
// simpler recursion outperforms the induction/reduction machinery.
func WithRadix() Option {
	return func(c *config) {
		c.radix = true
	}
}

// WithoutAlphabetCompaction skips the arbitrary-alphabet front end's dense
// re-coding and runs the byte-alphabet core directly. Only meaningful
// together with text that is already byte-valued; has no effect otherwise
// since Build always receives []byte.
func WithoutAlphabetCompaction() Option {
	return func(c *config) {
		c.noCompact = true
	}
}

// Build is the single discoverable entry point over BuildSuffixArray,
// BuildSuffixArrayRadix, and BuildSuffixArrayArbitrary: callers who don't
// need to pick a construction strategy by hand can call this instead and
// reach for an Option only when they do.
func Build[I Unsigned](text []byte, opts ...Option) []I {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.radix {
		return BuildSuffixArrayRadix[I](text)
	}
	if cfg.noCompact {
		return BuildSuffixArray[I](text)
	}
	widened := make([]int32, len(text))
	for i, b := range text {
		widened[i] = int32(b)
	}
	return BuildSuffixArrayArbitrary[I](widened)
}

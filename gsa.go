package sais

import "sort"

// GSA is a suffix array built over a set of documents joined with synthetic
// separator symbols that sort strictly below every real byte and strictly
// decrease from one document to the next, so a suffix that runs into a
// separator sorts before a suffix of a later document that continues the
// same prefix with a real byte. Where the later document's suffix runs into
// its own separator right after that same prefix, the later one sorts first,
// since its separator is smaller. Built via the arbitrary-alphabet front end, since separators
// need symbol values outside the byte range.
type GSA[I Unsigned] struct {
	text      []int32
	sa        []I
	docStarts []int
	docEnds   []int
	rank      []I
}

// BuildGSA concatenates docs with per-document separators and builds the
// suffix array of the result.
func BuildGSA[I Unsigned](docs [][]byte) *GSA[I] {
	total := 0
	for _, d := range docs {
		total += len(d) + 1
	}
	text := make([]int32, 0, total)
	docStarts := make([]int, len(docs))
	docEnds := make([]int, len(docs))
	for i, d := range docs {
		docStarts[i] = len(text)
		for _, b := range d {
			text = append(text, int32(b))
		}
		docEnds[i] = len(text)
		text = append(text, int32(-(i + 1)))
	}

	sa := BuildSuffixArrayArbitrary[I](text)
	rank := make([]I, len(sa))
	for i, pos := range sa {
		rank[int(pos)] = I(i)
	}
	return &GSA[I]{text: text, sa: sa, docStarts: docStarts, docEnds: docEnds, rank: rank}
}

// docOf returns the document owning the given global text position.
func (g *GSA[I]) docOf(position int) int {
	return sort.Search(len(g.docStarts), func(i int) bool { return g.docStarts[i] > position }) - 1
}

// Lookup returns the SA index owning the suffix starting at (doc, offset).
func (g *GSA[I]) Lookup(doc, offset int) int {
	return int(g.rank[g.docStarts[doc]+offset])
}

// LookupTextOrder is the inverse of Lookup: given a global SA index, returns
// the document and local offset of the suffix at sa[globalIndex].
func (g *GSA[I]) LookupTextOrder(globalIndex int) (doc, offset int) {
	pos := int(g.sa[globalIndex])
	doc = g.docOf(pos)
	return doc, pos - g.docStarts[doc]
}

// LookupSuffix returns the suffix of the owning document starting at the
// given global text position, trimmed at the document's separator.
func (g *GSA[I]) LookupSuffix(position int) []byte {
	doc := g.docOf(position)
	end := g.docEnds[doc]
	out := make([]byte, 0, end-position)
	for _, c := range g.text[position:end] {
		out = append(out, byte(c))
	}
	return out
}

// comparePrefix compares a suffix against a prefix lexicographically,
// truncating the comparison to the shorter of the two.
func comparePrefix(suf, prefix []int32) int {
	n := len(suf)
	if n > len(prefix) {
		n = len(prefix)
	}
	for i := 0; i < n; i++ {
		if suf[i] < prefix[i] {
			return -1
		}
		if suf[i] > prefix[i] {
			return 1
		}
	}
	if len(suf) < len(prefix) {
		return -1
	}
	return 0
}

// LookupPrefix returns the [lo, hi) range of SA indices whose suffix has
// pattern as a prefix.
func (g *GSA[I]) LookupPrefix(pattern []byte) (lo, hi int) {
	p := make([]int32, len(pattern))
	for i, b := range pattern {
		p[i] = int32(b)
	}
	lo = sort.Search(len(g.sa), func(i int) bool {
		return comparePrefix(g.text[int(g.sa[i]):], p) >= 0
	})
	hi = lo + sort.Search(len(g.sa)-lo, func(i int) bool {
		return comparePrefix(g.text[int(g.sa[lo+i]):], p) > 0
	})
	return lo, hi
}

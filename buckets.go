package sais

// clearBuckets zeroes the bucket table. Required between a "heads" phase and
// a subsequent "ends" phase (or vice versa), since both reuse the same count
// step.
func clearBuckets[I Unsigned](b []I) {
	for i := range b {
		b[i] = 0
	}
}

// countOccurrences tallies each symbol of text (used as a bucket index) into
// b. b must already be zeroed by the caller.
func countOccurrences[C, I Unsigned](text []C, b []I) {
	for _, c := range text {
		b[int(c)]++
	}
}

// bucketStarts converts per-symbol counts into an exclusive prefix sum, so
// b[c] becomes the first free write slot of bucket c.
func bucketStarts[I Unsigned](b []I) {
	var sum I
	for i, n := range b {
		b[i] = sum
		sum += n
	}
}

// bucketEnds converts per-symbol counts into an inclusive prefix sum, so
// b[c] becomes one past the last slot of bucket c.
func bucketEnds[I Unsigned](b []I) {
	var sum I
	for i, n := range b {
		sum += n
		b[i] = sum
	}
}

// makeStarts counts text into b (already zeroed) and turns the counts into
// bucket head cursors.
func makeStarts[C, I Unsigned](text []C, b []I) {
	countOccurrences(text, b)
	bucketStarts(b)
}

// makeEnds counts text into b (already zeroed) and turns the counts into
// bucket tail cursors.
func makeEnds[C, I Unsigned](text []C, b []I) {
	countOccurrences(text, b)
	bucketEnds(b)
}

// next returns the bucket-c head cursor, then advances it forward. Used by
// L-induction, which fills buckets left to right.
func next[I Unsigned](b []I, c int) I {
	v := b[c]
	b[c]++
	return v
}

// nextReverse retreats the bucket-c tail cursor, then returns it. Used by LMS
// seeding and S-induction, which fill buckets right to left.
func nextReverse[I Unsigned](b []I, c int) I {
	b[c]--
	return b[c]
}

// Package bloom provides a probabilistic set for screening URL lookups.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a Bloom filter over strings. A negative Test is definite;
// a positive Test may be a false positive.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a Filter sized for n expected items with the given
// false positive rate. n is raised to 1 when zero.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add inserts s into the filter.
func (f *Filter) Add(s string) {
	f.f.AddString(s)
}

// Test returns true if s might be in the filter.
func (f *Filter) Test(s string) bool {
	return f.f.TestString(s)
}

// TestAndAdd inserts s and reports whether it might have been present before.
func (f *Filter) TestAndAdd(s string) bool {
	return f.f.TestAndAddString(s)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

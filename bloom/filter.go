// Package bloom provides approximate seen-URL tracking for link discovery.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenFilter tracks URLs that have already been observed within one
// discovery pass. False positives are possible (a never-seen URL may be
// reported as seen); false negatives are not.
type SeenFilter struct {
	f *bloom.BloomFilter
}

// NewSeenFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewSeenFilter(n uint, fpRate float64) *SeenFilter {
	return &SeenFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether the URL was observed before and records it.
func (f *SeenFilter) Seen(url string) bool {
	return f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of URLs recorded.
func (f *SeenFilter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Package bloom deduplicates batch input URLs with a Bloom filter, so the
// same post is never extracted twice in one batch run even when the input
// file repeats it under cosmetic variations.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// DefaultCapacity sizes the filter for a typical batch file.
const DefaultCapacity = 10_000

// DefaultFalsePositiveRate trades a negligible chance of skipping a novel
// URL for a compact filter.
const DefaultFalsePositiveRate = 0.001

// Deduper tracks which URLs a batch run has already dispatched. False
// positives are possible (a novel URL very rarely reported as seen); false
// negatives are not, so a URL reported unseen is always safe to extract.
type Deduper struct {
	filter *bloom.BloomFilter
	added  uint
}

// NewDeduper sizes a deduper for n expected URLs at the given false
// positive rate. Zero values fall back to the package defaults.
func NewDeduper(n uint, fpRate float64) *Deduper {
	if n == 0 {
		n = DefaultCapacity
	}
	if fpRate <= 0 {
		fpRate = DefaultFalsePositiveRate
	}
	return &Deduper{filter: bloom.NewWithEstimates(n, fpRate)}
}

// Seen reports whether url was already dispatched in this batch and marks
// it as dispatched otherwise. URLs differing only in surrounding space, a
// fragment, or a trailing slash count as the same post.
func (d *Deduper) Seen(url string) bool {
	key := canonical(url)
	if d.filter.TestString(key) {
		return true
	}
	d.filter.AddString(key)
	d.added++
	return false
}

// Count returns the number of distinct URLs marked so far.
func (d *Deduper) Count() uint {
	return d.added
}

// canonical strips the variations that do not change which post a URL
// addresses.
func canonical(url string) string {
	url = strings.TrimSpace(url)
	if i := strings.IndexByte(url, '#'); i >= 0 {
		url = url[:i]
	}
	return strings.TrimSuffix(url, "/")
}

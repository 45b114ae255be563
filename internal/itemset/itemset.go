// Package itemset implements a set of 32-bit item identifiers backed by a
// Roaring Bitmap. It is used to deduplicate query candidates gathered from
// multiple grid cells; iteration order is ascending by identifier.
package itemset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a set of 32-bit item IDs.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		rb: roaring.New(),
	}
}

// Add adds id to the set.
func (s *Set) Add(id uint32) {
	s.rb.Add(id)
}

// Contains checks if id is in the set.
func (s *Set) Contains(id uint32) bool {
	return s.rb.Contains(id)
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of elements in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Or computes the union of two sets in place.
func (s *Set) Or(other *Set) {
	s.rb.Or(other.rb)
}

// All returns an iterator over the set in ascending order.
func (s *Set) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Slice returns the set contents as a sorted slice.
func (s *Set) Slice() []uint32 {
	return s.rb.ToArray()
}

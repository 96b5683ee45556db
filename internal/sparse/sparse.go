// Package sparse implements the classic sparse/dense set over a small integer
// universe. Insert, Contains and Clear are all O(1) and iteration touches
// only live elements, which is exactly the profile the automaton simulator
// needs: two sets per search, each cleared once per input symbol.
package sparse

// Set holds uint32 values below a fixed capacity. The sparse array maps a
// value to its slot in the dense array; a value is a member when that slot is
// live and points back at it, so Clear never has to zero the sparse array.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// NewSet returns an empty set able to hold values in [0, capacity).
func NewSet(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds v and reports whether it was absent.
// v must be below the set's capacity.
func (s *Set) Insert(v uint32) bool {
	if s.Contains(v) {
		return false
	}
	s.sparse[v] = uint32(len(s.dense))
	s.dense = append(s.dense, v)
	return true
}

// Contains reports whether v is a member. Values at or above the capacity
// are never members.
func (s *Set) Contains(v uint32) bool {
	if int(v) >= len(s.sparse) {
		return false
	}
	i := s.sparse[v]
	return int(i) < len(s.dense) && s.dense[i] == v
}

// Clear empties the set in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// Values returns the members in insertion order.
// The slice aliases internal storage and is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}

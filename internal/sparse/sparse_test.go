package sparse

import (
	"reflect"
	"testing"
)

func TestSet_InsertContains(t *testing.T) {
	s := NewSet(10)

	if s.Len() != 0 {
		t.Fatalf("new set Len = %d", s.Len())
	}
	if !s.Insert(3) {
		t.Error("Insert(3) reported already present")
	}
	if s.Insert(3) {
		t.Error("second Insert(3) reported absent")
	}
	if !s.Contains(3) {
		t.Error("Contains(3) = false")
	}
	if s.Contains(4) {
		t.Error("Contains(4) = true")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestSet_InsertionOrder(t *testing.T) {
	s := NewSet(10)
	for _, v := range []uint32{7, 2, 9, 2, 0} {
		s.Insert(v)
	}
	want := []uint32{7, 2, 9, 0}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v, want %v", got, want)
	}
}

func TestSet_Clear(t *testing.T) {
	s := NewSet(5)
	for v := uint32(0); v < 5; v++ {
		s.Insert(v)
	}
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d", s.Len())
	}
	for v := uint32(0); v < 5; v++ {
		if s.Contains(v) {
			t.Errorf("Contains(%d) = true after Clear", v)
		}
	}

	// Stale sparse slots from the previous generation must not leak
	// membership into the new one.
	if !s.Insert(2) || !s.Contains(2) || s.Contains(3) {
		t.Error("set not reusable after Clear")
	}
}

func TestSet_OutOfRange(t *testing.T) {
	s := NewSet(4)
	if s.Contains(4) || s.Contains(100) {
		t.Error("Contains reported membership above capacity")
	}
}

func TestSet_ZeroCapacity(t *testing.T) {
	s := NewSet(0)
	if s.Len() != 0 || s.Contains(0) {
		t.Error("zero-capacity set misbehaves")
	}
}

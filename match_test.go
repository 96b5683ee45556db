package rematch

import "testing"

func TestMatch_Accessors(t *testing.T) {
	word := []byte("abc123xyz")
	m := NewMatch(3, 6, word)

	if m.Start() != 3 || m.End() != 6 {
		t.Errorf("Start/End = %d/%d, want 3/6", m.Start(), m.End())
	}
	if start, end := m.Span(); start != 3 || end != 6 {
		t.Errorf("Span = (%d, %d), want (3, 6)", start, end)
	}
	if m.Len() != 3 {
		t.Errorf("Len = %d, want 3", m.Len())
	}
	if m.IsEmpty() {
		t.Error("IsEmpty = true")
	}
	if got := m.String(); got != "123" {
		t.Errorf("String = %q, want %q", got, "123")
	}
}

func TestMatch_BytesIsView(t *testing.T) {
	word := []byte("hello")
	m := NewMatch(1, 3, word)

	b := m.Bytes()
	if string(b) != "el" {
		t.Fatalf("Bytes = %q", b)
	}
	word[1] = 'E'
	if string(m.Bytes()) != "El" {
		t.Error("Bytes does not alias the searched word")
	}
}

func TestMatch_Empty(t *testing.T) {
	m := NewMatch(2, 2, []byte("abcd"))
	if !m.IsEmpty() || m.Len() != 0 || m.String() != "" {
		t.Errorf("empty match misbehaves: %v %d %q", m.IsEmpty(), m.Len(), m.String())
	}
}

func TestMatch_OutOfRangeSpan(t *testing.T) {
	m := NewMatch(3, 10, []byte("ab"))
	if m.Bytes() != nil {
		t.Errorf("Bytes on out-of-range span = %q, want nil", m.Bytes())
	}
}

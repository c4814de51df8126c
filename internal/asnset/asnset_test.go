package asnset

import "testing"

func TestSetAddHasLen(t *testing.T) {
	s := New()
	if s.Len() != 0 {
		t.Fatalf("new set Len() = %d, want 0", s.Len())
	}
	s.Add(65001)
	s.Add(65002)
	s.Add(65001) // duplicate, must not grow the set

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Has(65001) || !s.Has(65002) {
		t.Error("expected both added ASNs to be members")
	}
	if s.Has(1) {
		t.Error("1 was never added")
	}
}

func TestSetClone(t *testing.T) {
	s := New()
	s.Add(1)
	s.Add(2)

	c := s.Clone()
	c.Add(3)

	if s.Has(3) {
		t.Error("adding to the clone must not affect the original")
	}
	if !c.Has(1) || !c.Has(2) || !c.Has(3) {
		t.Error("clone should carry the original members plus its own addition")
	}
}

func TestSetSorted(t *testing.T) {
	s := New()
	for _, asn := range []int{300, 100, 200} {
		s.Add(asn)
	}
	got := s.Sorted()
	want := []int{100, 200, 300}
	if len(got) != len(want) {
		t.Fatalf("Sorted() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sorted()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

package tree

import (
	"strings"
	"testing"
)

func TestTreeAddBuildsNestedPaths(t *testing.T) {
	root := Tree{}
	noop := func(int, interface{}) {}
	root.Add([]int{1, 2, 3}, noop, noop, nil)
	root.Add([]int{1, 2, 4}, noop, noop, nil)

	node1, ok := root[1]
	if !ok {
		t.Fatal("expected 1 at the root")
	}
	node2, ok := node1[2]
	if !ok {
		t.Fatal("expected 2 under 1")
	}
	if _, ok := node2[3]; !ok {
		t.Error("expected 3 under 1 -> 2")
	}
	if _, ok := node2[4]; !ok {
		t.Error("expected 4 under 1 -> 2")
	}
}

func TestTreeAddCallsAbsentOncePresentOnRevisit(t *testing.T) {
	root := Tree{}
	var absent, present []int
	onAbsent := func(asn int, _ interface{}) { absent = append(absent, asn) }
	onPresent := func(asn int, _ interface{}) { present = append(present, asn) }

	root.Add([]int{1, 2}, onAbsent, onPresent, nil)
	root.Add([]int{1, 3}, onAbsent, onPresent, nil)

	if len(absent) != 3 {
		t.Fatalf("absent calls = %v, want 3 entries (1, 2, 3)", absent)
	}
	if len(present) != 1 || present[0] != 1 {
		t.Errorf("present calls = %v, want [1] (second path revisits 1)", present)
	}
}

func TestTreeFprintSortsChildrenAscending(t *testing.T) {
	root := Tree{}
	noop := func(int, interface{}) {}
	root.Add([]int{1, 30}, noop, noop, nil)
	root.Add([]int{1, 10}, noop, noop, nil)
	root.Add([]int{1, 20}, noop, noop, nil)

	var b strings.Builder
	root[1].Fprint(&b, true, "")

	out := b.String()
	i10, i20, i30 := strings.Index(out, "10"), strings.Index(out, "20"), strings.Index(out, "30")
	if !(i10 < i20 && i20 < i30) {
		t.Errorf("Fprint output not ascending by ASN:\n%s", out)
	}
}

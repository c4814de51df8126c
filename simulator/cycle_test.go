package simulator

import "testing"

func TestCheckForCyclesAcyclic(t *testing.T) {
	path := writeRelFile(t, "1|2|-1\n1|3|-1\n3|4|-1\n1|3|0\n")
	nodes, err := loadRelationships(path)
	if err != nil {
		t.Fatalf("loadRelationships: %v", err)
	}
	if err := checkForCycles(nodes); err != nil {
		t.Errorf("checkForCycles on an acyclic graph returned %v, want nil", err)
	}
}

func TestCheckForCyclesDirect(t *testing.T) {
	path := writeRelFile(t, "1|2|-1\n2|1|-1\n")
	nodes, err := loadRelationships(path)
	if err != nil {
		t.Fatalf("loadRelationships: %v", err)
	}
	if err := checkForCycles(nodes); err == nil {
		t.Error("expected a cycle error for a direct 1<->2 provider loop")
	}
}

func TestCheckForCyclesIndirect(t *testing.T) {
	path := writeRelFile(t, "1|2|-1\n2|3|-1\n3|1|-1\n")
	nodes, err := loadRelationships(path)
	if err != nil {
		t.Fatalf("loadRelationships: %v", err)
	}
	if err := checkForCycles(nodes); err == nil {
		t.Error("expected a cycle error for a 3-node provider cycle")
	}
}

func TestCheckForCyclesIgnoresPeerEdges(t *testing.T) {
	// A peer-only mesh has no customer->provider edges at all, so it
	// cannot trip the cycle check regardless of how many peer links exist.
	path := writeRelFile(t, "1|2|0\n2|3|0\n3|1|0\n")
	nodes, err := loadRelationships(path)
	if err != nil {
		t.Fatalf("loadRelationships: %v", err)
	}
	if err := checkForCycles(nodes); err != nil {
		t.Errorf("checkForCycles on a peer-only mesh returned %v, want nil", err)
	}
}

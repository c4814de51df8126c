package simulator

import "github.com/anaximander-sim/rovsim/internal/asnset"

// CustomerCone returns every ASN transitively reachable from asn via
// customer edges (asn's customers, their customers, and so on), sorted
// ascending. The customer→provider relation is acyclic (checked at
// construction time), so this always terminates.
func (s *Simulator) CustomerCone(asn int) []int {
	node, ok := s.nodes[asn]
	if !ok {
		return nil
	}

	seen := asnset.New()
	queue := node.Customers.Sorted()
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen.Has(next) {
			continue
		}
		seen.Add(next)
		if child, ok := s.nodes[next]; ok {
			queue = append(queue, child.Customers.Sorted()...)
		}
	}
	return seen.Sorted()
}

// DirectCustomers returns asn's immediate customers, sorted ascending —
// the one level of the cone the "cone" CLI subcommand walks to build its
// ASCII tree.
func (s *Simulator) DirectCustomers(asn int) []int {
	node, ok := s.nodes[asn]
	if !ok {
		return nil
	}
	return node.Customers.Sorted()
}

package simulator

import "github.com/anaximander-sim/rovsim/internal/asnset"

// Simulator owns the whole AS graph: nodes are created lazily during
// relationship ingestion and the graph is frozen (no node addition) once
// constructed. Grounded on orig:simulator.h.
type Simulator struct {
	nodes   map[int]*ASNode
	ranks   [][]int
	rovASNs asnset.Set
}

// NewSimulator loads an AS-relationship file, verifies the customer→
// provider relation is acyclic, and assigns propagation ranks, in that
// order (load, check_for_cycles, build_propagation_ranks). It fails with
// a wrapped ErrTopologyLoad or ErrCycle.
func NewSimulator(relationshipsFile string) (*Simulator, error) {
	nodes, err := loadRelationships(relationshipsFile)
	if err != nil {
		return nil, err
	}
	if err := checkForCycles(nodes); err != nil {
		return nil, err
	}
	ranks := buildPropagationRanks(nodes)

	return &Simulator{
		nodes:   nodes,
		ranks:   ranks,
		rovASNs: asnset.New(),
	}, nil
}

// AddAnnouncement installs a freshly-constructed Announcement directly
// into seedASN's local RIB under prefix, overwriting unconditionally if a
// prior entry exists — seeding is an authoritative act. Fails with
// ErrUnknownOrigin if seedASN is not in the graph.
func (s *Simulator) AddAnnouncement(seedASN int, prefix string, rovInvalid bool) error {
	node, ok := s.nodes[seedASN]
	if !ok {
		return ErrUnknownOrigin
	}
	node.LocalRIB[prefix] = NewAnnouncement(prefix, seedASN, rovInvalid)
	return nil
}

// AddROVASN replaces asn's policy with ROV and adds it to the ROV set.
// Missing ASNs are silently ignored — they may legitimately reference
// ASes not present in a truncated topology.
func (s *Simulator) AddROVASN(asn int) {
	node, ok := s.nodes[asn]
	if !ok {
		return
	}
	node.Policy = ROVPolicy{}
	s.rovASNs.Add(asn)
}

// ASN reports whether asn is present in the graph, and its rank/ROV status
// if so. Useful for tests and diagnostics, and harmless to expose on the
// already-frozen graph.
func (s *Simulator) ASN(asn int) (node *ASNode, ok bool) {
	node, ok = s.nodes[asn]
	return node, ok
}

// MaxRank returns the highest propagation rank assigned.
func (s *Simulator) MaxRank() int {
	return len(s.ranks) - 1
}

// RankASNs returns the ASNs at propagation rank r, or nil if r is out of
// range.
func (s *Simulator) RankASNs(r int) []int {
	if r < 0 || r >= len(s.ranks) {
		return nil
	}
	return s.ranks[r]
}

// IsROV reports whether asn has been marked ROV-enabled.
func (s *Simulator) IsROV(asn int) bool {
	return s.rovASNs.Has(asn)
}

// clone returns an independent Simulator with this one's already-
// validated topology (copied edge sets, shared rank buckets) but with every node's
// RIB, received queue, policy, and ROV marking reset to a fresh state.
// Used by RunBatch so a batch of scenarios pays the relationship-file
// load, cycle check, and rank assignment exactly once instead of once per
// scenario.
func (s *Simulator) clone() *Simulator {
	nodes := make(map[int]*ASNode, len(s.nodes))
	for asn, n := range s.nodes {
		nodes[asn] = &ASNode{
			ASN:             n.ASN,
			Customers:       n.Customers.Clone(),
			Peers:           n.Peers.Clone(),
			Providers:       n.Providers.Clone(),
			LocalRIB:        make(map[string]Announcement),
			ReceivedQueue:   make(map[string][]Announcement),
			PropagationRank: n.PropagationRank,
			Policy:          BGPPolicy{},
		}
	}

	// Rank buckets are read-only ASN lists computed once from the shared
	// topology; sharing the backing slices across clones is safe since no
	// code ever mutates a rank bucket after buildPropagationRanks returns.
	ranks := make([][]int, len(s.ranks))
	copy(ranks, s.ranks)

	return &Simulator{
		nodes:   nodes,
		ranks:   ranks,
		rovASNs: asnset.New(),
	}
}

package simulator

import "sort"

// Propagate executes the three-phase valley-free flood: propagate_up,
// then propagate_across, then propagate_down. Idempotency is not
// guaranteed — calling it twice continues from the current RIB state.
func (s *Simulator) Propagate() {
	s.propagateUp()
	s.propagateAcross()
	s.propagateDown()
}

// propagateUp floods customer→provider, ascending rank order. Ranks are
// totally ordered by customer-provider depth, so by the time a higher-rank
// AS processes, all its customers have already forwarded this cycle.
// Grounded on orig:simulator.cpp's propagate_up.
func (s *Simulator) propagateUp() {
	for _, asns := range s.ranks {
		for _, asn := range asns {
			s.nodes[asn].processReceived()
		}
		for _, asn := range asns {
			node := s.nodes[asn]
			for _, ann := range node.LocalRIB {
				forwarded := ann.clone()
				forwarded.NextHopASN = asn
				forwarded.ReceivedFrom = Customer
				for _, provider := range node.Providers.Sorted() {
					s.nodes[provider].receiveAnnouncement(forwarded)
				}
			}
		}
	}
}

// propagateAcross floods peer↔peer exactly once: every AS forwards its
// current local RIB to every peer, then every AS processes its queue once,
// in ascending ASN order for deterministic tie-breaks under equal-quality
// peer routes arriving in arbitrary order. Grounded on
// orig:simulator.cpp's propagate_across.
func (s *Simulator) propagateAcross() {
	for asn, node := range s.nodes {
		for _, ann := range node.LocalRIB {
			forwarded := ann.clone()
			forwarded.NextHopASN = asn
			forwarded.ReceivedFrom = Peer
			for _, peer := range node.Peers.Sorted() {
				s.nodes[peer].receiveAnnouncement(forwarded)
			}
		}
	}

	asns := make([]int, 0, len(s.nodes))
	for asn := range s.nodes {
		asns = append(asns, asn)
	}
	sort.Ints(asns)
	for _, asn := range asns {
		s.nodes[asn].processReceived()
	}
}

// propagateDown mirrors propagateUp, descending rank order: a provider
// forwards its entire local RIB (customer- and peer-learned routes alike
// — down-forwarding is not gated by received_from) down to its customers.
// Grounded on orig:simulator.cpp's propagate_down.
func (s *Simulator) propagateDown() {
	for r := len(s.ranks) - 1; r >= 0; r-- {
		asns := s.ranks[r]
		for _, asn := range asns {
			s.nodes[asn].processReceived()
		}
		for _, asn := range asns {
			node := s.nodes[asn]
			for _, ann := range node.LocalRIB {
				forwarded := ann.clone()
				forwarded.NextHopASN = asn
				forwarded.ReceivedFrom = Provider
				for _, customer := range node.Customers.Sorted() {
					s.nodes[customer].receiveAnnouncement(forwarded)
				}
			}
		}
	}
}

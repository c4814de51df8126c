package simulator

import "github.com/anaximander-sim/rovsim/internal/asnset"

// ASNode is the per-AS routing state. Nodes reference each
// other by ASN only (never by pointer), so the graph owns every node and
// neighbor sets are trivially serializable — the same ownership model as
// orig:as.h, restated in Go's idiom of "accept interfaces, own your data"
// rather than unique_ptr.
type ASNode struct {
	ASN int

	Customers asnset.Set
	Peers     asnset.Set
	Providers asnset.Set

	LocalRIB map[string]Announcement

	// ReceivedQueue groups staged announcements per prefix so a policy
	// pass for one prefix sees every competing offer at once.
	ReceivedQueue map[string][]Announcement

	PropagationRank int

	Policy Policy
}

// newASNode creates a node with the default BGP policy, per orig:as.cpp's
// AS(int asn_) : policy(std::make_unique<BGP>()).
func newASNode(asn int) *ASNode {
	return &ASNode{
		ASN:           asn,
		Customers:     asnset.New(),
		Peers:         asnset.New(),
		Providers:     asnset.New(),
		LocalRIB:      make(map[string]Announcement),
		ReceivedQueue: make(map[string][]Announcement),
		Policy:        BGPPolicy{},
	}
}

// receiveAnnouncement stages ann under its prefix in the node's inbound
// queue. Grounded on orig:as.cpp's AS::receive_announcement.
func (n *ASNode) receiveAnnouncement(ann Announcement) {
	n.ReceivedQueue[ann.Prefix] = append(n.ReceivedQueue[ann.Prefix], ann.clone())
}

// processReceived drains the node's queue through its policy, per
// orig:as.cpp's AS::process_received. The queue is always cleared even if
// it was empty.
func (n *ASNode) processReceived() {
	for _, batch := range n.ReceivedQueue {
		n.Policy.ProcessAnnouncements(batch, n.LocalRIB, n.ASN)
	}
	n.ReceivedQueue = make(map[string][]Announcement)
}

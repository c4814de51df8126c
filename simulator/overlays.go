package simulator

import (
	radix "github.com/Emeline-1/radix"
)

// Overlay describes a more-specific route that is redundant with a
// covering, less-specific route carrying the identical AS-path.
type Overlay struct {
	Aggregate    string
	MoreSpecific string
}

// DetectOverlays reports, for one AS's post-propagation local RIB, every
// CIDR prefix whose installed AS-path exactly matches a covering
// less-specific prefix's — routes that could be aggregated without
// changing reachability. Non-CIDR prefixes (an opaque text key) are
// skipped; they can't be compared for containment.
//
// Grounded on orig-go:overlays_processing.go's process_overlays /
// generate_walk_radix_tree: build a github.com/Emeline-1/radix tree keyed
// by the prefix's bitstring, value the AS-path string, then a post-order
// walk compares each leaf to its parent. There it ran over a traceroute
// collector's forwarding table; here it runs over one AS's local RIB.
func (s *Simulator) DetectOverlays(asn int) ([]Overlay, bool) {
	node, ok := s.nodes[asn]
	if !ok {
		return nil, false
	}

	tree := radix.New()
	for prefix, ann := range node.LocalRIB {
		bits, ok := prefixToBits(prefix)
		if !ok {
			continue
		}
		tree.Insert(bits, ann.PathString())
	}

	var overlays []Overlay
	tree.Walk_post(func(parent *radix.LeafNode, children []*radix.LeafNode) {
		aggregatePath, _ := parent.Val.(string)
		for _, child := range children {
			childPath, _ := child.Val.(string)
			if childPath == aggregatePath {
				overlays = append(overlays, Overlay{
					Aggregate:    bitsToPrefix(parent.Key),
					MoreSpecific: bitsToPrefix(child.Key),
				})
			}
		}
	})
	return overlays, true
}

package simulator

import (
	"strconv"

	graph "github.com/Emeline-1/basic_graph"
)

// TopologyComponents returns the connected components of the AS graph,
// treating every customer/provider/peer edge as undirected. A
// relationship file describing several disjoint AS-graphs would
// propagate each piece independently and silently; this is a read-only
// diagnostic over the frozen graph that lets a caller notice that before
// trusting GetRIBs' coverage.
//
// Grounded on orig-go:overlays_processing.go's process_overlays, which
// builds a github.com/Emeline-1/basic_graph graph from aggregate/overlay
// prefix pairs purely to enumerate connected components via
// Set_iterator/Next_connected_component/Connected_component; the same
// enumeration is repurposed here over AS adjacency instead of prefix
// containment.
func (s *Simulator) TopologyComponents() [][]int {
	g := graph.New()
	for asn, node := range s.nodes {
		from := strconv.Itoa(asn)
		for _, peer := range node.Peers.Sorted() {
			g.Add_edge(from, strconv.Itoa(peer))
		}
		for _, provider := range node.Providers.Sorted() {
			g.Add_edge(from, strconv.Itoa(provider))
		}
	}

	var components [][]int
	accounted := make(map[int]bool, len(s.nodes))
	g.Set_iterator()
	for g.Next_connected_component() {
		strs := g.Connected_component()
		component := make([]int, 0, len(strs))
		for _, str := range strs {
			asn, err := strconv.Atoi(str)
			if err != nil {
				continue
			}
			component = append(component, asn)
			accounted[asn] = true
		}
		components = append(components, component)
	}

	// basic_graph only knows about ASes that appear in an edge; an AS with
	// no peers/providers/customers at all is its own singleton component.
	for asn := range s.nodes {
		if !accounted[asn] {
			components = append(components, []int{asn})
		}
	}
	return components
}

package simulator

// RIBEntry is one row of a GetRIBs result: one AS's installed route for
// one prefix.
type RIBEntry struct {
	ASN    int
	Prefix string
	ASPath string
}

// GetRIBs returns every (asn, prefix, as_path) triple from every AS's
// local RIB. Order is not guaranteed; callers sort if needed. Grounded on
// orig:simulator.cpp's get_ribs.
func (s *Simulator) GetRIBs() []RIBEntry {
	out := make([]RIBEntry, 0)
	for asn, node := range s.nodes {
		for prefix, ann := range node.LocalRIB {
			out = append(out, RIBEntry{ASN: asn, Prefix: prefix, ASPath: ann.PathString()})
		}
	}
	return out
}

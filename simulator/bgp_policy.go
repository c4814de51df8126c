package simulator

// BGPPolicy is the default route-selection policy: loop-free acceptance
// plus best-path selection. Grounded on orig:bgp.cpp's
// BGP::process_announcements.
type BGPPolicy struct{}

// ShouldAccept implements Policy. The default policy accepts everything.
func (BGPPolicy) ShouldAccept(Announcement) bool {
	return true
}

// ProcessAnnouncements implements Policy:
//  1. should_accept filters.
//  2. loop check: skip if receivingASN already appears in the path.
//  3. prepend receivingASN to a local-copy path.
//  4. install if no incumbent, or if the candidate IsBetterThan it.
func (p BGPPolicy) ProcessAnnouncements(received []Announcement, localRIB map[string]Announcement, receivingASN int) {
	processAnnouncements(p, received, localRIB, receivingASN)
}

// processAnnouncements is the shared BGP decision loop. It is a free
// function, not a BGPPolicy method, specifically so ROVPolicy can reuse it
// while substituting its own ShouldAccept — Go's embedding does not give
// virtual dispatch back into an embedded type's methods, so sharing logic
// this way (rather than via embedding) is the idiomatic escape.
func processAnnouncements(accept interface{ ShouldAccept(Announcement) bool }, received []Announcement, localRIB map[string]Announcement, receivingASN int) {
	for _, ann := range received {
		if !accept.ShouldAccept(ann) {
			continue
		}
		if inPath(ann.ASPath, receivingASN) {
			continue
		}

		candidate := ann.withPrepend(receivingASN)

		incumbent, ok := localRIB[candidate.Prefix]
		if !ok || candidate.IsBetterThan(incumbent) {
			localRIB[candidate.Prefix] = candidate
		}
	}
}

// inPath reports whether asn already appears anywhere in path — the loop
// check that precedes installation.
func inPath(path []int, asn int) bool {
	for _, p := range path {
		if p == asn {
			return true
		}
	}
	return false
}

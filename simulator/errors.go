package simulator

import "errors"

// Sentinel errors surfaced by the simulator. Malformed relationship/seed
// lines and an unknown ASN passed to AddROVASN are not errors — they are
// silently skipped, matching CAIDA tooling's usual tolerance for mixed-
// format datasets.
var (
	// ErrTopologyLoad wraps a failure to open the relationship file.
	ErrTopologyLoad = errors.New("rovsim: cannot open AS relationships file")
	// ErrCycle is returned when the customer→provider relation contains a
	// directed cycle.
	ErrCycle = errors.New("rovsim: cycle detected in AS relationships")
	// ErrUnknownOrigin is returned by AddAnnouncement for an ASN absent
	// from the graph.
	ErrUnknownOrigin = errors.New("rovsim: unknown origin ASN")
)

package simulator

import (
	"fmt"
	"strconv"
	"strings"
)

// Relationship tags the business relationship an announcement was received
// over. Order matters: it is also the BGP-preference ordering used by
// IsBetterThan (ORIGIN most preferred, PROVIDER least).
type Relationship int

const (
	Origin Relationship = iota
	Customer
	Peer
	Provider
)

func (r Relationship) String() string {
	switch r {
	case Origin:
		return "ORIGIN"
	case Customer:
		return "CUSTOMER"
	case Peer:
		return "PEER"
	case Provider:
		return "PROVIDER"
	default:
		return "UNKNOWN"
	}
}

// defaultLocalPref is the local-pref assigned to a freshly-originated
// announcement.
const defaultLocalPref = 100

// Announcement is a route advertisement for one prefix. Values are
// value-semantic: forwarding always works on a copy so a sender's RIB
// entry is never aliased into a receiver's queue.
type Announcement struct {
	Prefix       string
	ASPath       []int
	NextHopASN   int
	ReceivedFrom Relationship
	ROVInvalid   bool
	LocalPref    int
}

// NewAnnouncement constructs an origin announcement for prefix, seeded at
// seedASN: as_path = [seedASN], next_hop_asn = seedASN,
// received_from = ORIGIN, local_pref = 100.
func NewAnnouncement(prefix string, seedASN int, rovInvalid bool) Announcement {
	return Announcement{
		Prefix:       prefix,
		ASPath:       []int{seedASN},
		NextHopASN:   seedASN,
		ReceivedFrom: Origin,
		ROVInvalid:   rovInvalid,
		LocalPref:    defaultLocalPref,
	}
}

// clone returns a deep copy of a (it copies the AS-path slice), so prepending
// to the copy never mutates the original.
func (a Announcement) clone() Announcement {
	path := make([]int, len(a.ASPath))
	copy(path, a.ASPath)
	a.ASPath = path
	return a
}

// withPrepend returns a copy of a with asn inserted at the front of the
// AS-path, leaving a untouched.
func (a Announcement) withPrepend(asn int) Announcement {
	path := make([]int, 0, len(a.ASPath)+1)
	path = append(path, asn)
	path = append(path, a.ASPath...)
	a.ASPath = path
	return a
}

// neighborASN is the ASN used for criterion 4 of IsBetterThan: as_path[1]
// if the path has at least two elements, else as_path[0].
func (a Announcement) neighborASN() int {
	if len(a.ASPath) > 1 {
		return a.ASPath[1]
	}
	return a.ASPath[0]
}

// IsBetterThan decides whether a (already path-prepended) should displace
// other as the installed route, per a five-criterion total order:
// local-pref, relationship, path length, neighbor ASN, then incumbency.
// It returns false on a full tie (first-come-first-served: the incumbent
// is kept).
func (a Announcement) IsBetterThan(other Announcement) bool {
	if a.LocalPref != other.LocalPref {
		return a.LocalPref > other.LocalPref
	}
	if a.ReceivedFrom != other.ReceivedFrom {
		return a.ReceivedFrom < other.ReceivedFrom
	}
	if len(a.ASPath) != len(other.ASPath) {
		return len(a.ASPath) < len(other.ASPath)
	}
	if n1, n2 := a.neighborASN(), other.neighborASN(); n1 != n2 {
		return n1 < n2
	}
	return false
}

// PathString renders the AS-path in the stable "(a, b, c)" / "(a,)" form
// used for external comparison.
func (a Announcement) PathString() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, asn := range a.ASPath {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(asn))
	}
	if len(a.ASPath) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}

func (a Announcement) String() string {
	return fmt.Sprintf("%s via %s pref=%d next_hop=%d", a.Prefix, a.PathString(), a.LocalPref, a.NextHopASN)
}

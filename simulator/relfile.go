package simulator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/anaximander-sim/rovsim/internal/lineio"
)

// loadRelationships reads a CAIDA-style AS-relationship file and populates
// nodes, auto-creating an ASNode for any ASN mentioned for the first time.
// Grounded on orig:read_as_rel (caida_file_readers.go) and
// orig:simulator.cpp's Simulator::load_as_relationships — same
// "asn1<sep>asn2<sep>rel" tolerant line format, same semantics:
//
//	rel == -1: asn1 is a provider of asn2 (asn2 is a customer of asn1)
//	rel ==  0: asn1 and asn2 are peers
//	anything else: both ASNs are created, but no edge is recorded
//	an unparsable line: silently skipped
func loadRelationships(path string) (map[int]*ASNode, error) {
	r := lineio.New(path)
	if err := r.Open(); err != nil {
		return nil, wrapTopologyLoad(err)
	}
	defer r.Close()

	nodes := make(map[int]*ASNode)
	get := func(asn int) *ASNode {
		n, ok := nodes[asn]
		if !ok {
			n = newASNode(asn)
			nodes[asn] = n
		}
		return n
	}

	scanner := r.Scanner()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		asn1, asn2, rel, ok := parseRelationshipLine(line)
		if !ok {
			continue
		}

		a1, a2 := get(asn1), get(asn2)
		switch rel {
		case -1:
			a1.Customers.Add(asn2)
			a2.Providers.Add(asn1)
		case 0:
			a1.Peers.Add(asn2)
			a2.Peers.Add(asn1)
		default:
			// Any other relationship code is ignored.
		}
	}
	return nodes, nil
}

// parseRelationshipLine splits a line into three integers separated by any
// run of non-numeric characters. Returns ok=false for anything that
// doesn't yield exactly three integer fields; malformed lines are
// silently skipped rather than treated as an error.
func parseRelationshipLine(line string) (asn1, asn2, rel int, ok bool) {
	matches := numberPattern.FindAllString(line, -1)
	if len(matches) != 3 {
		return 0, 0, 0, false
	}
	vals := make([]int, 3)
	for i, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = n
	}
	return vals[0], vals[1], vals[2], true
}

// numberPattern matches an optionally-signed run of digits, so "-1" parses
// as a single token instead of "-" plus "1" — any other character is
// treated as a field boundary.
var numberPattern = regexp.MustCompile(`-?\d+`)

func wrapTopologyLoad(err error) error {
	return &topologyLoadError{err: err}
}

type topologyLoadError struct{ err error }

func (e *topologyLoadError) Error() string { return ErrTopologyLoad.Error() + ": " + e.err.Error() }
func (e *topologyLoadError) Unwrap() error { return ErrTopologyLoad }
func (e *topologyLoadError) Cause() error  { return e.err }

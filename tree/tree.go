// Package tree renders an AS customer cone as an ASCII box tree, keyed
// directly by ASN. Every path this package ever builds is a chain of
// ASNs (AS1 -> AS2 -> ...), so the node type is Tree map[int]Tree rather
// than the string-segment tree this was descended from — there is no
// other path-segment kind in this module for a generic string key to
// serve.
//
// Descended from https://github.com/Tufin/asciitree (Add takes a
// []int path instead of a '/'-delimited string, plus ifAbsent/ifPresent
// callbacks), restated over int ASNs, with Fprint additionally sorting
// each level's children ascending by ASN so the printed tree is
// deterministic regardless of map iteration order.
package tree

import (
	"fmt"
	"io"
	"sort"
)

// Tree is a node keyed by ASN, each value itself a Tree.
type Tree map[int]Tree

// Add walks path into the tree, creating nodes as needed. ifAbsent is
// called on an ASN the first time it's added under its parent; ifPresent
// is called when the path revisits an ASN already present there.
func (tree Tree) Add(path []int, ifAbsent, ifPresent func(int, interface{}), arg interface{}) {
	if len(path) == 0 {
		return
	}

	nextTree, ok := tree[path[0]]
	if !ok {
		nextTree = Tree{}
		tree[path[0]] = nextTree
		ifAbsent(path[0], arg)
	} else {
		ifPresent(path[0], arg)
	}
	nextTree.Add(path[1:], ifAbsent, ifPresent, arg)
}

// Fprint writes tree to w as an ASCII box tree, one ASN per line,
// children sorted ascending at every level.
func (tree Tree) Fprint(w io.Writer, root bool, padding string) {
	if tree == nil {
		return
	}

	asns := make([]int, 0, len(tree))
	for asn := range tree {
		asns = append(asns, asn)
	}
	sort.Ints(asns)

	for i, asn := range asns {
		fmt.Fprintf(w, "%s%d\n", padding+getPadding(root, getBoxType(i, len(asns))), asn)
		tree[asn].Fprint(w, false, padding+getPadding(root, getBoxTypeExternal(i, len(asns))))
	}
}

type BoxType int

const (
	Regular BoxType = iota
	Last
	AfterLast
	Between
)

func (boxType BoxType) String() string {
	switch boxType {
	case Regular:
		return "├" // ├
	case Last:
		return "└" // └
	case AfterLast:
		return " "
	case Between:
		return "│" // │
	default:
		panic("invalid box type")
	}
}

func getBoxType(index int, len int) BoxType {
	if index+1 == len {
		return Last
	} else if index+1 > len {
		return AfterLast
	}
	return Regular
}

func getBoxTypeExternal(index int, len int) BoxType {
	if index+1 == len {
		return AfterLast
	}
	return Between
}

func getPadding(root bool, boxType BoxType) string {
	if root {
		return ""
	}

	return boxType.String() + " "
}

/* ==================================================================================== *\
   cone_print.go

   Renders an AS's customer cone as an ASCII tree using the adapted
   tree.Tree (see tree/tree.go).
\* ==================================================================================== */

package main

import (
	"fmt"
	"os"

	"github.com/anaximander-sim/rovsim/simulator"
	"github.com/anaximander-sim/rovsim/tree"
)

// printCone walks asn's customer cone depth-first, building a tree.Tree
// one path at a time (root -> customer -> customer's customer -> ...) and
// prints it with box-drawing characters.
func printCone(sim *simulator.Simulator, asn int) {
	if _, ok := sim.ASN(asn); !ok {
		fmt.Printf("unknown ASN: %d\n", asn)
		return
	}

	root := tree.Tree{}
	noop := func(int, interface{}) {}
	var walk func(current int, path []int, visited map[int]bool)
	walk = func(current int, path []int, visited map[int]bool) {
		root.Add(path, noop, noop, nil)
		for _, child := range sim.DirectCustomers(current) {
			if visited[child] {
				continue
			}
			visited[child] = true
			walk(child, append(append([]int{}, path...), child), visited)
		}
	}
	walk(asn, []int{asn}, map[int]bool{asn: true})

	fmt.Printf("%d\n", asn)
	root[asn].Fprint(os.Stdout, true, "")
}

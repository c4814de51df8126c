package simulator

import "sort"

// buildPropagationRanks assigns each AS a propagation_rank via a
// Kahn-style layered traversal, grounded on orig:simulator.cpp's
// build_propagation_ranks:
//
//  1. rank[asn] = 0 for every AS with no customers; enqueue them.
//  2. customer_count[asn] = |customers(asn)|.
//  3. pop c; for each provider p of c, rank[p] = max(rank[p], rank[c]+1),
//     decrement customer_count[p]; enqueue p once it reaches zero.
//  4. any AS never reached gets rank 0 as a fallback.
//
// Returns ranks[r] = the ASNs at rank r, sized max_rank+1, and sets
// PropagationRank on every node.
func buildPropagationRanks(nodes map[int]*ASNode) [][]int {
	rankOf := make(map[int]int, len(nodes))
	customerCount := make(map[int]int, len(nodes))

	queue := make([]int, 0, len(nodes))
	for asn, n := range nodes {
		customerCount[asn] = n.Customers.Len()
		if n.Customers.Len() == 0 {
			rankOf[asn] = 0
			queue = append(queue, asn)
		}
	}
	sort.Ints(queue)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		currentRank := rankOf[current]

		providers := nodes[current].Providers.Sorted()
		for _, provider := range providers {
			if existing, ok := rankOf[provider]; !ok || currentRank+1 > existing {
				rankOf[provider] = currentRank + 1
			}
			customerCount[provider]--
			if customerCount[provider] == 0 {
				queue = append(queue, provider)
			}
		}
	}

	// Isolated or unreached ASes fall back to rank 0.
	for asn := range nodes {
		if _, ok := rankOf[asn]; !ok {
			rankOf[asn] = 0
		}
	}

	maxRank := 0
	for asn, rank := range rankOf {
		if rank > maxRank {
			maxRank = rank
		}
		nodes[asn].PropagationRank = rank
	}

	ranks := make([][]int, maxRank+1)
	for asn, rank := range rankOf {
		ranks[rank] = append(ranks[rank], asn)
	}
	for _, bucket := range ranks {
		sort.Ints(bucket)
	}
	return ranks
}

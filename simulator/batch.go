package simulator

import (
	"fmt"
	"strconv"

	pool "github.com/Emeline-1/pool"
)

// Seed is one announcement to inject when running a Scenario.
type Seed struct {
	ASN        int
	Prefix     string
	ROVInvalid bool
}

// Scenario is one independent run: a seed set plus a set of ASes to
// enable ROV on, evaluated against a shared topology.
type Scenario struct {
	Name  string
	Seeds []Seed
	ROV   []int
}

// BatchResult pairs a Scenario's name with its outcome: either the final
// RIBs, or the error raised while seeding it.
type BatchResult struct {
	Name string
	RIBs []RIBEntry
	Err  error
}

// RunBatch loads relationshipsFile once — paying the parse, cycle check,
// and rank assignment exactly once — then runs every scenario
// concurrently against its own clone() of that validated topology, using
// a bounded worker pool. Returns one BatchResult per scenario (order not
// guaranteed, matching GetRIBs' own unordered-result convention). If the
// topology itself fails to load, every scenario reports that same error.
//
// Each scenario clones the shared, already-validated graph snapshot
// rather than sharing one live Simulator across goroutines: propagation
// itself stays single-threaded per instance and only the *set* of
// instances runs in parallel, so no mutable RIB/queue state is ever
// shared across goroutines.
//
// Grounded on orig-go:anaximander_driver.go / rib.go's
// pool.Launch_pool(n, items, f) fan-out, which there ran one
// collector/AS's parsing work per goroutine; here each goroutine runs one
// scenario's independent seed + propagate over a shared parsed topology.
func RunBatch(relationshipsFile string, scenarios []Scenario, concurrency int) []BatchResult {
	results := make([]BatchResult, len(scenarios))
	// Work items are scenario indices, so scenarios sharing a name still
	// each get their own run and result slot.
	keys := make([]string, len(scenarios))
	for i := range scenarios {
		keys[i] = strconv.Itoa(i)
	}

	base, err := NewSimulator(relationshipsFile)
	if err != nil {
		for i, sc := range scenarios {
			results[i] = BatchResult{Name: sc.Name, Err: fmt.Errorf("scenario %s: %w", sc.Name, err)}
		}
		return results
	}

	run := func(key string) {
		i, _ := strconv.Atoi(key)
		results[i] = runScenario(base, scenarios[i])
	}

	pool.Launch_pool(concurrency, keys, run)
	return results
}

func runScenario(base *Simulator, sc Scenario) BatchResult {
	sim := base.clone()
	for _, asn := range sc.ROV {
		sim.AddROVASN(asn)
	}
	for _, seed := range sc.Seeds {
		if err := sim.AddAnnouncement(seed.ASN, seed.Prefix, seed.ROVInvalid); err != nil {
			return BatchResult{Name: sc.Name, Err: fmt.Errorf("scenario %s: %w", sc.Name, err)}
		}
	}
	sim.Propagate()
	return BatchResult{Name: sc.Name, RIBs: sim.GetRIBs()}
}

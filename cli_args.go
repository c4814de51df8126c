/* ==================================================================================== *\
   cli_args.go

   Subcommand argument handling: one handle_args_X plus one runX per
   subcommand, each with its own flag.NewFlagSet.
\* ==================================================================================== */

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/anaximander-sim/rovsim/internal/lineio"
	"github.com/anaximander-sim/rovsim/simulator"
)

func handleArgsSimulate(args []string) (relFile, seedsFile, rovList, annotateFile string) {
	cmd := flag.NewFlagSet("simulate", flag.ExitOnError)
	cmd.StringVar(&relFile, "rel", "", "AS relationships file")
	cmd.StringVar(&seedsFile, "seeds", "", "Seed announcements file")
	cmd.StringVar(&rovList, "rov", "", "Comma-separated ASNs to enable ROV on")
	cmd.StringVar(&annotateFile, "annotate", "", "Optional sqlite file of (asn, name) to annotate output with")
	cmd.Parse(args)
	return
}

func handleArgsComponents(args []string) (relFile string) {
	cmd := flag.NewFlagSet("components", flag.ExitOnError)
	cmd.StringVar(&relFile, "rel", "", "AS relationships file")
	cmd.Parse(args)
	return
}

func handleArgsCone(args []string) (relFile string, asn int) {
	cmd := flag.NewFlagSet("cone", flag.ExitOnError)
	cmd.StringVar(&relFile, "rel", "", "AS relationships file")
	cmd.IntVar(&asn, "asn", 0, "ASN whose customer cone to print")
	cmd.Parse(args)
	return
}

func handleArgsBatch(args []string) (relFile, scenariosFile string, concurrency int) {
	cmd := flag.NewFlagSet("batch", flag.ExitOnError)
	cmd.StringVar(&relFile, "rel", "", "AS relationships file")
	cmd.StringVar(&scenariosFile, "scenarios", "", "Scenarios file")
	cmd.IntVar(&concurrency, "c", 4, "Number of scenarios to run concurrently")
	cmd.Parse(args)
	return
}

func runSimulate(args []string) {
	relFile, seedsFile, rovList, annotateFile := handleArgsSimulate(args)
	if relFile == "" {
		log.Fatal("simulate: -rel is required")
	}

	sim, err := simulator.NewSimulator(relFile)
	if err != nil {
		log.Fatal(err)
	}

	for _, asn := range parseASNList(rovList) {
		sim.AddROVASN(asn)
	}

	if seedsFile != "" {
		seeds, err := readSeedsFile(seedsFile)
		if err != nil {
			log.Fatal(err)
		}
		for _, seed := range seeds {
			if err := sim.AddAnnouncement(seed.ASN, seed.Prefix, seed.ROVInvalid); err != nil {
				log.Fatal(err)
			}
		}
	}

	sim.Propagate()

	var names map[int]string
	if annotateFile != "" {
		names, err = simulator.LoadASNames(annotateFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	ribs := sim.GetRIBs()
	sort.Slice(ribs, func(i, j int) bool {
		if ribs[i].ASN != ribs[j].ASN {
			return ribs[i].ASN < ribs[j].ASN
		}
		return ribs[i].Prefix < ribs[j].Prefix
	})
	for _, r := range ribs {
		if name, ok := names[r.ASN]; ok {
			fmt.Printf("%d (%s) %s %s\n", r.ASN, name, r.Prefix, r.ASPath)
		} else {
			fmt.Printf("%d %s %s\n", r.ASN, r.Prefix, r.ASPath)
		}
	}
}

func runComponents(args []string) {
	relFile := handleArgsComponents(args)
	if relFile == "" {
		log.Fatal("components: -rel is required")
	}
	sim, err := simulator.NewSimulator(relFile)
	if err != nil {
		log.Fatal(err)
	}
	for i, component := range sim.TopologyComponents() {
		sort.Ints(component)
		fmt.Printf("component %d: %v\n", i, component)
	}

	for r := 0; r <= sim.MaxRank(); r++ {
		fmt.Printf("rank %d: %v\n", r, sim.RankASNs(r))
	}
}

func runCone(args []string) {
	relFile, asn := handleArgsCone(args)
	if relFile == "" || asn == 0 {
		log.Fatal("cone: -rel and -asn are required")
	}
	sim, err := simulator.NewSimulator(relFile)
	if err != nil {
		log.Fatal(err)
	}
	printCone(sim, asn)
}

func runBatchCmd(args []string) {
	relFile, scenariosFile, concurrency := handleArgsBatch(args)
	if relFile == "" || scenariosFile == "" {
		log.Fatal("batch: -rel and -scenarios are required")
	}
	scenarios, err := readScenariosFile(scenariosFile)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("running %d scenarios with concurrency %d", len(scenarios), concurrency)
	results := simulator.RunBatch(relFile, scenarios, concurrency)
	for _, res := range results {
		if res.Err != nil {
			fmt.Printf("%s: error: %s\n", res.Name, res.Err)
			continue
		}
		sort.Slice(res.RIBs, func(i, j int) bool {
			if res.RIBs[i].ASN != res.RIBs[j].ASN {
				return res.RIBs[i].ASN < res.RIBs[j].ASN
			}
			return res.RIBs[i].Prefix < res.RIBs[j].Prefix
		})
		for _, r := range res.RIBs {
			fmt.Printf("%s: %d %s %s\n", res.Name, r.ASN, r.Prefix, r.ASPath)
		}
	}
}

// parseASNList splits a comma-separated list of integers, skipping any
// field that doesn't parse — CLI input gets the same tolerant handling as
// file input.
func parseASNList(s string) []int {
	if s == "" {
		return nil
	}
	var out []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// readSeedsFile parses "asn prefix [invalid]" whitespace-separated lines,
// skipping blank lines and "#" comments, mirroring the relationship
// file's own tolerance. The seeds format is CLI-only glue, not part of
// the relationship-file format itself.
func readSeedsFile(path string) ([]simulator.Seed, error) {
	r := lineio.New(path)
	if err := r.Open(); err != nil {
		return nil, err
	}
	defer r.Close()

	var seeds []simulator.Seed
	scanner := r.Scanner()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		asn, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		invalid := len(fields) >= 3 && fields[2] == "invalid"
		seeds = append(seeds, simulator.Seed{ASN: asn, Prefix: fields[1], ROVInvalid: invalid})
	}
	return seeds, nil
}

// readScenariosFile parses one scenario per line:
//
//	name | asn1:prefix1[:invalid],asn2:prefix2 | rovAsn1,rovAsn2
//
// "#" comments and blank lines are skipped.
func readScenariosFile(path string) ([]simulator.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var scenarios []simulator.Scenario
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) != 3 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		seeds := parseSeedList(parts[1])
		rov := parseASNList(parts[2])
		scenarios = append(scenarios, simulator.Scenario{Name: name, Seeds: seeds, ROV: rov})
	}
	return scenarios, nil
}

func parseSeedList(s string) []simulator.Seed {
	var seeds []simulator.Seed
	for _, entry := range strings.Split(s, ",") {
		fields := strings.Split(strings.TrimSpace(entry), ":")
		if len(fields) < 2 {
			continue
		}
		asn, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			continue
		}
		invalid := len(fields) >= 3 && strings.TrimSpace(fields[2]) == "invalid"
		seeds = append(seeds, simulator.Seed{ASN: asn, Prefix: strings.TrimSpace(fields[1]), ROVInvalid: invalid})
	}
	return seeds
}

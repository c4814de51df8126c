/* ==================================================================================== *\
   main.go

   CLI driver for the AS-graph route propagation simulator.
\* ==================================================================================== */

package main

import (
	"log"
	"os"
)

func usage() {
	println("\nUsage of rovsim:\n")
	println("rovsim has several subcommands:")
	println("  - simulate:   load a topology, seed announcements, propagate, print RIBs.")
	println("  - components: print the topology's connected components.")
	println("  - cone:       print one AS's customer cone as an ASCII tree.")
	println("  - batch:      run many independent scenarios concurrently over one topology.\n")
	println("Type")
	println("  ./rovsim [subcommand] -h")
	println("for further information on each subcommand.\n")
}

func main() {
	log.SetFlags(0)
	if len(os.Args) == 1 {
		usage()
		return
	}

	switch command := os.Args[1]; command {
	case "simulate":
		runSimulate(os.Args[2:])
	case "components":
		runComponents(os.Args[2:])
	case "cone":
		runCone(os.Args[2:])
	case "batch":
		runBatchCmd(os.Args[2:])
	case "-h", "--help":
		usage()
	default:
		log.Println("Unknown command:", command)
		log.Println("Type './rovsim -h' for help:")
	}
}

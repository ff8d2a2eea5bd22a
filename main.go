// Package main provides the entry point for the MIPS ALU simulator.
//
// For the full CLI, use: go run ./cmd/mipsalu
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("mipsalu - MIPS ALU Simulator")
	fmt.Println("")
	fmt.Println("Usage: mipsalu [options] <program>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config      Path to timing configuration JSON file")
	fmt.Println("  -set         Initial register values, e.g. 1=0x80000000,2=-5")
	fmt.Println("  -keep-going  Continue past unsupported instructions")
	fmt.Println("  -v           Trace every instruction")
	fmt.Println("  -dump        Dump the decoded program and statistics")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/mipsalu' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/mipsalu' instead.")
	}
}

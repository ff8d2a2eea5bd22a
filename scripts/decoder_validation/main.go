// Validate executor allocations - measures allocations per decode/execute
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sarchlab/mipsalu/emu"
	"github.com/sarchlab/mipsalu/insts"
)

func main() {
	regFile := &emu.RegFile{}
	executor := emu.NewExecutor()

	words := []uint32{
		insts.EncodeI(insts.OpcodeADDI, 1, 1, 1),      // ADDI $1, $1, 1
		insts.EncodeR(insts.FunctSLL, 0, 1, 2, 3),     // SLL  $2, $1, 3
		insts.EncodeR(insts.FunctXOR, 1, 2, 3, 0),     // XOR  $3, $1, $2
		insts.EncodeI(insts.OpcodeSLTIU, 3, 4, 0x7FF), // SLTIU $4, $3, 0x7FF
	}

	// Warm up
	for i := 0; i < 1000; i++ {
		_ = executor.ExecuteWord(regFile, words[i%len(words)])
	}

	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	iterations := 100000

	for i := 0; i < iterations; i++ {
		for _, w := range words {
			_ = executor.ExecuteWord(regFile, w)
		}
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	total := iterations * len(words)
	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc

	fmt.Printf("Executor Allocation Validation Results:\n")
	fmt.Printf("=======================================\n")
	fmt.Printf("Total instructions: %d\n", total)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Instructions per second: %.0f\n", float64(total)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per instruction: %.3f\n", float64(allocations)/float64(total))
	fmt.Printf("Bytes per instruction: %.1f\n", float64(allocatedBytes)/float64(total))
	fmt.Printf("Final $4: %d\n", regFile.ReadReg(4))
}

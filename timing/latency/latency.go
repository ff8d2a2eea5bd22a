// Package latency provides instruction timing for the MIPS execute stage.
//
// The values come from a TimingConfig, which defaults to one cycle per
// instruction and can be loaded from JSON.
package latency

import (
	"github.com/sarchlab/mipsalu/insts"
)

// Class groups operations that share a latency.
type Class uint8

// Instruction classes.
const (
	ClassUnknown Class = iota
	ClassNoop
	ClassShift
	ClassArith
	ClassLogic
	ClassCompare
)

// ClassOf returns the class of an operation.
func ClassOf(op insts.Op) Class {
	switch op {
	case insts.OpNOOP:
		return ClassNoop
	case insts.OpSLL, insts.OpSRL, insts.OpSRA, insts.OpSLLV, insts.OpSRLV:
		return ClassShift
	case insts.OpADD, insts.OpADDU, insts.OpSUB, insts.OpSUBU,
		insts.OpADDI, insts.OpADDIU:
		return ClassArith
	case insts.OpAND, insts.OpOR, insts.OpXOR:
		return ClassLogic
	case insts.OpSLT, insts.OpSLTU, insts.OpSLTI, insts.OpSLTIU:
		return ClassCompare
	default:
		return ClassUnknown
	}
}

// Table provides instruction latency lookups.
type Table struct {
	config *TimingConfig
}

// NewTable creates a new latency table with default single-cycle values.
func NewTable() *Table {
	return &Table{
		config: DefaultTimingConfig(),
	}
}

// NewTableWithConfig creates a new latency table with custom timing configuration.
func NewTableWithConfig(config *TimingConfig) *Table {
	return &Table{
		config: config,
	}
}

// GetLatency returns the execution latency in cycles for the given
// instruction. Unknown and nil instructions cost nothing since they never
// reach the ALU.
func (t *Table) GetLatency(inst *insts.Instruction) uint64 {
	if inst == nil {
		return 0
	}

	switch ClassOf(inst.Op) {
	case ClassNoop:
		return t.config.NoopLatency
	case ClassShift:
		return t.config.ShiftLatency
	case ClassArith:
		return t.config.ArithLatency
	case ClassLogic:
		return t.config.LogicLatency
	case ClassCompare:
		return t.config.CompareLatency
	default:
		return 0
	}
}

// Config returns the current timing configuration.
func (t *Table) Config() *TimingConfig {
	return t.config
}

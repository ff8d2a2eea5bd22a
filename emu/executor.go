// Package emu provides functional MIPS ALU emulation.
package emu

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/mipsalu/insts"
	"github.com/sarchlab/mipsalu/timing/latency"
)

// Hook positions invoked by the Executor.
var (
	// HookPosBeforeExecute fires after decode, before any register access.
	// Item is the *insts.Instruction.
	HookPosBeforeExecute = &sim.HookPos{Name: "BeforeExecute"}

	// HookPosAfterExecute fires once the write has been applied.
	// Item is the *insts.Instruction, Detail the RegAccess.
	HookPosAfterExecute = &sim.HookPos{Name: "AfterExecute"}

	// HookPosUnsupported fires when decode finds no operation.
	// Item is the *insts.Instruction, Detail the *UnsupportedInstructionError.
	HookPosUnsupported = &sim.HookPos{Name: "Unsupported"}
)

// RegAccess describes the register traffic of one executed instruction.
type RegAccess struct {
	Reads      int
	Writes     int
	WriteIndex uint8
	WriteValue uint32
}

// recordingRegFile forwards to another register file and records the access.
type recordingRegFile struct {
	inner  RegisterFile
	access RegAccess
}

func (r *recordingRegFile) Read(a, b uint8) (uint32, uint32) {
	r.access.Reads++
	return r.inner.Read(a, b)
}

func (r *recordingRegFile) Write(enable bool, idx uint8, value uint32) {
	r.inner.Write(enable, idx, value)
	if !enable {
		return
	}
	r.access.Writes++
	r.access.WriteIndex = idx
	r.access.WriteValue = value
}

// Stats holds execution statistics.
type Stats struct {
	// Instructions is the number of instructions executed, NOOPs included.
	Instructions uint64
	// Cycles is the sum of the latencies of executed instructions.
	Cycles uint64
	// Writes is the number of register writes performed.
	Writes uint64
	// Unsupported is the number of rejected instructions.
	Unsupported uint64
	// OpCounts counts executed instructions per operation.
	OpCounts map[insts.Op]uint64
}

// Executor decodes instruction fields, dispatches to the ALU and applies
// the result to a register file. It holds no reference to a register file
// between calls and does no locking; callers serialize access.
type Executor struct {
	*sim.HookableBase

	decoder      *insts.Decoder
	latencyTable *latency.Table
	stats        Stats
}

// ExecutorOption is a functional option for configuring the Executor.
type ExecutorOption func(*Executor)

// WithLatencyTable sets the latency table used for cycle accounting.
func WithLatencyTable(table *latency.Table) ExecutorOption {
	return func(e *Executor) {
		e.latencyTable = table
	}
}

// WithHook registers a hook on the Executor.
func WithHook(hook sim.Hook) ExecutorOption {
	return func(e *Executor) {
		e.AcceptHook(hook)
	}
}

// NewExecutor creates a new Executor.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		HookableBase: sim.NewHookableBase(),
		decoder:      insts.NewDecoder(),
		latencyTable: latency.NewTable(),
		stats:        Stats{OpCounts: make(map[insts.Op]uint64)},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Execute decodes f and executes it against rf. It returns an
// *UnsupportedInstructionError, leaving rf untouched, if no operation
// matches.
func (e *Executor) Execute(rf RegisterFile, f insts.Fields) error {
	inst := e.decoder.Decode(f)

	if inst.Op == insts.OpUnknown {
		err := &UnsupportedInstructionError{
			Opcode:       f.Opcode,
			FunctionCode: f.FunctionCode,
		}
		e.stats.Unsupported++
		e.invoke(HookPosUnsupported, inst, err)
		return err
	}

	e.invoke(HookPosBeforeExecute, inst, nil)

	rec := &recordingRegFile{inner: rf}
	if err := dispatch(NewALU(rec), inst); err != nil {
		return err
	}

	e.stats.Instructions++
	e.stats.Cycles += e.latencyTable.GetLatency(inst)
	e.stats.Writes += uint64(rec.access.Writes)
	e.stats.OpCounts[inst.Op]++

	e.invoke(HookPosAfterExecute, inst, rec.access)

	return nil
}

// ExecuteWord extracts the fields of a raw instruction word and executes it.
func (e *Executor) ExecuteWord(rf RegisterFile, word uint32) error {
	return e.Execute(rf, insts.ExtractFields(word))
}

// Stats returns a snapshot of the execution statistics.
func (e *Executor) Stats() Stats {
	s := e.stats
	s.OpCounts = make(map[insts.Op]uint64, len(e.stats.OpCounts))
	for op, n := range e.stats.OpCounts {
		s.OpCounts[op] = n
	}
	return s
}

// ResetStats clears the execution statistics.
func (e *Executor) ResetStats() {
	e.stats = Stats{OpCounts: make(map[insts.Op]uint64)}
}

func (e *Executor) invoke(pos *sim.HookPos, inst *insts.Instruction, detail interface{}) {
	if e.NumHooks() == 0 {
		return
	}

	e.InvokeHook(sim.HookCtx{
		Domain: e,
		Pos:    pos,
		Item:   inst,
		Detail: detail,
	})
}

// dispatch executes a decoded instruction on the ALU.
func dispatch(alu *ALU, inst *insts.Instruction) error {
	switch inst.Op {
	case insts.OpNOOP:
		alu.NOOP()
	case insts.OpSLL:
		alu.SLL(inst.Rs, inst.Rt, inst.Rd, inst.ShiftAmount)
	case insts.OpSRL:
		alu.SRL(inst.Rs, inst.Rt, inst.Rd, inst.ShiftAmount)
	case insts.OpSRA:
		alu.SRA(inst.Rs, inst.Rt, inst.Rd, inst.ShiftAmount)
	case insts.OpSLLV:
		alu.SLLV(inst.Rs, inst.Rt, inst.Rd)
	case insts.OpSRLV:
		alu.SRLV(inst.Rs, inst.Rt, inst.Rd)
	case insts.OpADD:
		alu.ADD(inst.Rs, inst.Rt, inst.Rd)
	case insts.OpADDU:
		alu.ADDU(inst.Rs, inst.Rt, inst.Rd)
	case insts.OpSUB:
		alu.SUB(inst.Rs, inst.Rt, inst.Rd)
	case insts.OpSUBU:
		alu.SUBU(inst.Rs, inst.Rt, inst.Rd)
	case insts.OpAND:
		alu.AND(inst.Rs, inst.Rt, inst.Rd)
	case insts.OpOR:
		alu.OR(inst.Rs, inst.Rt, inst.Rd)
	case insts.OpXOR:
		alu.XOR(inst.Rs, inst.Rt, inst.Rd)
	case insts.OpSLT:
		alu.SLT(inst.Rs, inst.Rt, inst.Rd)
	case insts.OpSLTU:
		alu.SLTU(inst.Rs, inst.Rt, inst.Rd)
	case insts.OpADDI:
		alu.ADDI(inst.Rs, inst.Rt, inst.Immediate)
	case insts.OpADDIU:
		alu.ADDIU(inst.Rs, inst.Rt, inst.Immediate)
	case insts.OpSLTI:
		alu.SLTI(inst.Rs, inst.Rt, inst.Immediate)
	case insts.OpSLTIU:
		alu.SLTIU(inst.Rs, inst.Rt, inst.Immediate)
	default:
		return fmt.Errorf("unimplemented op %v", inst.Op)
	}

	return nil
}

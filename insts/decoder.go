// Package insts provides MIPS instruction definitions and decoding.
package insts

// Op represents a MIPS operation.
type Op uint8

// MIPS operations.
const (
	OpUnknown Op = iota
	OpNOOP
	OpSLL
	OpSRL
	OpSRA
	OpSLLV
	OpSRLV
	OpADD
	OpADDU
	OpSUB
	OpSUBU
	OpAND
	OpOR
	OpXOR
	OpSLT
	OpSLTU
	OpADDI
	OpADDIU
	OpSLTI
	OpSLTIU
)

var opNames = [...]string{
	OpUnknown: "UNKNOWN",
	OpNOOP:    "NOOP",
	OpSLL:     "SLL",
	OpSRL:     "SRL",
	OpSRA:     "SRA",
	OpSLLV:    "SLLV",
	OpSRLV:    "SRLV",
	OpADD:     "ADD",
	OpADDU:    "ADDU",
	OpSUB:     "SUB",
	OpSUBU:    "SUBU",
	OpAND:     "AND",
	OpOR:      "OR",
	OpXOR:     "XOR",
	OpSLT:     "SLT",
	OpSLTU:    "SLTU",
	OpADDI:    "ADDI",
	OpADDIU:   "ADDIU",
	OpSLTI:    "SLTI",
	OpSLTIU:   "SLTIU",
}

// String returns the assembler mnemonic of the operation.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "UNKNOWN"
}

// Format represents an instruction encoding format.
type Format uint8

// Instruction formats.
const (
	FormatUnknown Format = iota
	FormatR              // Register type (opcode == 0)
	FormatI              // Immediate type
)

// Opcodes (bits [31:26]).
const (
	OpcodeSpecial uint8 = 0x00
	OpcodeADDI    uint8 = 0x08
	OpcodeADDIU   uint8 = 0x09
	OpcodeSLTI    uint8 = 0x0A
	OpcodeSLTIU   uint8 = 0x0B
)

// Function codes (bits [5:0]) for opcode 0.
const (
	FunctSLL  uint8 = 0x00
	FunctSRL  uint8 = 0x02
	FunctSRA  uint8 = 0x03
	FunctSLLV uint8 = 0x04
	FunctSRLV uint8 = 0x06
	FunctADD  uint8 = 0x20
	FunctADDU uint8 = 0x21
	FunctSUB  uint8 = 0x22
	FunctSUBU uint8 = 0x23
	FunctAND  uint8 = 0x24
	FunctOR   uint8 = 0x25
	FunctXOR  uint8 = 0x26
	FunctSLT  uint8 = 0x2A
	FunctSLTU uint8 = 0x2B
)

var rTypeOps = map[uint8]Op{
	FunctSLL:  OpSLL,
	FunctSRL:  OpSRL,
	FunctSRA:  OpSRA,
	FunctSLLV: OpSLLV,
	FunctSRLV: OpSRLV,
	FunctADD:  OpADD,
	FunctADDU: OpADDU,
	FunctSUB:  OpSUB,
	FunctSUBU: OpSUBU,
	FunctAND:  OpAND,
	FunctOR:   OpOR,
	FunctXOR:  OpXOR,
	FunctSLT:  OpSLT,
	FunctSLTU: OpSLTU,
}

var iTypeOps = map[uint8]Op{
	OpcodeADDI:  OpADDI,
	OpcodeADDIU: OpADDIU,
	OpcodeSLTI:  OpSLTI,
	OpcodeSLTIU: OpSLTIU,
}

// Fields holds the raw fields of an instruction as produced by the caller.
type Fields struct {
	Opcode       uint8  // bits [31:26]
	Rs           uint8  // bits [25:21]
	Rt           uint8  // bits [20:16]
	Rd           uint8  // bits [15:11], R-type only
	ShiftAmount  uint8  // bits [10:6], R-type only
	FunctionCode uint8  // bits [5:0], R-type only
	Immediate    uint16 // bits [15:0], I-type only
}

// IsZero reports whether every field is zero, i.e. the NOOP bit pattern.
func (f Fields) IsZero() bool {
	return f == Fields{}
}

// Instruction represents a decoded MIPS instruction.
type Instruction struct {
	Op     Op     // Operation
	Format Format // Encoding format

	Fields
}

// Decoder selects the operation named by a set of instruction fields.
type Decoder struct{}

// NewDecoder creates a new MIPS instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes already extracted instruction fields. Unsupported
// encodings decode to OpUnknown with the format still set.
func (d *Decoder) Decode(f Fields) *Instruction {
	inst := &Instruction{Op: OpUnknown, Format: FormatUnknown, Fields: f}

	if f.Opcode == OpcodeSpecial {
		d.decodeRType(inst)
	} else {
		d.decodeIType(inst)
	}

	return inst
}

// DecodeWord extracts the fields of a 32-bit instruction word and decodes them.
func (d *Decoder) DecodeWord(word uint32) *Instruction {
	return d.Decode(ExtractFields(word))
}

// decodeRType selects by function code.
// Format: 000000 | rs | rt | rd | shamt | funct
func (d *Decoder) decodeRType(inst *Instruction) {
	inst.Format = FormatR

	// SLL $0, $0, 0 and NOOP share an encoding; the all-zero pattern wins.
	if inst.FunctionCode == FunctSLL && inst.Fields.IsZero() {
		inst.Op = OpNOOP
		return
	}

	if op, ok := rTypeOps[inst.FunctionCode]; ok {
		inst.Op = op
	}
}

// decodeIType selects by opcode.
// Format: opcode | rs | rt | imm16
func (d *Decoder) decodeIType(inst *Instruction) {
	inst.Format = FormatI

	if op, ok := iTypeOps[inst.Opcode]; ok {
		inst.Op = op
	}
}

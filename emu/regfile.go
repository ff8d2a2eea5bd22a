// Package emu provides functional MIPS ALU emulation.
package emu

// NumRegs is the number of general-purpose registers.
const NumRegs = 32

// RegisterFile is the register storage an instruction executes against.
// Every access reads two registers and writes at most one.
type RegisterFile interface {
	// Read returns the values of registers a and b.
	Read(a, b uint8) (uint32, uint32)

	// Write stores value into register idx when enable is true.
	Write(enable bool, idx uint8, value uint32)
}

// RegFile represents the MIPS general-purpose register file.
// Register 0 is an ordinary register here; it is not hardwired to zero.
type RegFile struct {
	// R holds registers $0-$31.
	R [NumRegs]uint32
}

// Read reads two registers. Indices >= 32 read as 0.
func (r *RegFile) Read(a, b uint8) (uint32, uint32) {
	return r.ReadReg(a), r.ReadReg(b)
}

// Write writes a register if enable is set. Writes to indices >= 32 are
// ignored.
func (r *RegFile) Write(enable bool, idx uint8, value uint32) {
	if !enable {
		return
	}
	r.WriteReg(idx, value)
}

// ReadReg reads a single register.
func (r *RegFile) ReadReg(idx uint8) uint32 {
	if idx >= NumRegs {
		return 0
	}
	return r.R[idx]
}

// WriteReg writes a single register.
func (r *RegFile) WriteReg(idx uint8, value uint32) {
	if idx >= NumRegs {
		return
	}
	r.R[idx] = value
}

// ReadSigned reads a register as a two's-complement value.
func (r *RegFile) ReadSigned(idx uint8) int32 {
	return int32(r.ReadReg(idx))
}

// Reset clears all registers.
func (r *RegFile) Reset() {
	r.R = [NumRegs]uint32{}
}

// Package emu provides functional MIPS ALU emulation.
package emu

import "github.com/sarchlab/mipsalu/insts"

// shiftMask keeps the low five bits of a shift amount.
const shiftMask = 0x1F

// ALU implements the MIPS arithmetic, logic and shift operations.
// Each operation reads its sources with a single paired read and performs
// exactly one enabled write.
type ALU struct {
	regFile RegisterFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile RegisterFile) *ALU {
	return &ALU{regFile: regFile}
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// NOOP performs no operation. It touches no register.
func (a *ALU) NOOP() {}

// SLL performs shift left logical: $rd = $rt << shamt
func (a *ALU) SLL(rs, rt, rd, shamt uint8) {
	_, t := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rd, t<<(shamt&shiftMask))
}

// SRL performs shift right logical: $rd = $rt >> shamt (zero fill)
func (a *ALU) SRL(rs, rt, rd, shamt uint8) {
	_, t := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rd, t>>(shamt&shiftMask))
}

// SRA performs shift right arithmetic: $rd = $rt >> shamt (sign fill)
func (a *ALU) SRA(rs, rt, rd, shamt uint8) {
	_, t := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rd, uint32(int32(t)>>(shamt&shiftMask)))
}

// SLLV performs shift left logical variable: $rd = $rt << ($rs & 31)
func (a *ALU) SLLV(rs, rt, rd uint8) {
	s, t := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rd, t<<(s&shiftMask))
}

// SRLV performs shift right logical variable: $rd = $rt >> ($rs & 31)
func (a *ALU) SRLV(rs, rt, rd uint8) {
	s, t := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rd, t>>(s&shiftMask))
}

// ADD performs signed addition: $rd = $rs + $rt. Overflow wraps.
func (a *ALU) ADD(rs, rt, rd uint8) {
	s, t := a.regFile.Read(rs, rt)
	result := int32(s) + int32(t)
	a.regFile.Write(true, rd, uint32(result))
}

// ADDU performs unsigned addition: $rd = $rs + $rt
func (a *ALU) ADDU(rs, rt, rd uint8) {
	s, t := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rd, s+t)
}

// SUB performs signed subtraction: $rd = $rs - $rt. Overflow wraps.
func (a *ALU) SUB(rs, rt, rd uint8) {
	s, t := a.regFile.Read(rs, rt)
	result := int32(s) - int32(t)
	a.regFile.Write(true, rd, uint32(result))
}

// SUBU performs unsigned subtraction: $rd = $rs - $rt
func (a *ALU) SUBU(rs, rt, rd uint8) {
	s, t := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rd, s-t)
}

// AND performs bitwise AND: $rd = $rs & $rt
func (a *ALU) AND(rs, rt, rd uint8) {
	s, t := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rd, s&t)
}

// OR performs bitwise OR: $rd = $rs | $rt
func (a *ALU) OR(rs, rt, rd uint8) {
	s, t := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rd, s|t)
}

// XOR performs bitwise XOR: $rd = $rs ^ $rt
func (a *ALU) XOR(rs, rt, rd uint8) {
	s, t := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rd, s^t)
}

// SLT sets $rd to 1 if $rs < $rt as signed values, else 0.
func (a *ALU) SLT(rs, rt, rd uint8) {
	s, t := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rd, b2u(int32(s) < int32(t)))
}

// SLTU sets $rd to 1 if $rs < $rt as unsigned values, else 0.
func (a *ALU) SLTU(rs, rt, rd uint8) {
	s, t := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rd, b2u(s < t))
}

// ADDI performs signed addition with immediate: $rt = $rs + sext(imm).
// Overflow wraps.
func (a *ALU) ADDI(rs, rt uint8, imm uint16) {
	s, _ := a.regFile.Read(rs, rt)
	result := int32(s) + int32(int16(imm))
	a.regFile.Write(true, rt, uint32(result))
}

// ADDIU performs unsigned addition with immediate: $rt = $rs + sext(imm)
func (a *ALU) ADDIU(rs, rt uint8, imm uint16) {
	s, _ := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rt, s+insts.SignExtend16(imm))
}

// SLTI sets $rt to 1 if $rs < sext(imm) as signed values, else 0.
func (a *ALU) SLTI(rs, rt uint8, imm uint16) {
	s, _ := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rt, b2u(int32(s) < int32(int16(imm))))
}

// SLTIU sets $rt to 1 if $rs < sext(imm) as unsigned values, else 0.
func (a *ALU) SLTIU(rs, rt uint8, imm uint16) {
	s, _ := a.regFile.Read(rs, rt)
	a.regFile.Write(true, rt, b2u(s < insts.SignExtend16(imm)))
}

// Package insts provides MIPS instruction definitions and decoding.
//
// This package turns the fields of a 32-bit MIPS instruction word into a
// structured instruction representation. It supports:
//   - R-type shifts: SLL, SRL, SRA, SLLV, SRLV
//   - R-type arithmetic and logic: ADD, ADDU, SUB, SUBU, AND, OR, XOR, SLT, SLTU
//   - I-type arithmetic and compare: ADDI, ADDIU, SLTI, SLTIU
//   - NOOP (the all-zero word)
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.DecodeWord(0x20220005) // ADDI $2, $1, 5
//	fmt.Printf("Op: %v, Rs: %d, Rt: %d, Imm: %d\n", inst.Op, inst.Rs, inst.Rt, inst.Immediate)
package insts

package insts

// ExtractFields splits a 32-bit instruction word into its fields.
// Every field is populated regardless of format; Immediate overlaps
// Rd, ShiftAmount and FunctionCode.
func ExtractFields(word uint32) Fields {
	return Fields{
		Opcode:       uint8(word >> 26),
		Rs:           uint8((word >> 21) & 0x1F),
		Rt:           uint8((word >> 16) & 0x1F),
		Rd:           uint8((word >> 11) & 0x1F),
		ShiftAmount:  uint8((word >> 6) & 0x1F),
		FunctionCode: uint8(word & 0x3F),
		Immediate:    uint16(word & 0xFFFF),
	}
}

// Encode packs the fields back into an instruction word. R-type words
// take rd/shamt/funct, I-type words take the immediate.
func (f Fields) Encode() uint32 {
	if f.Opcode == OpcodeSpecial {
		return EncodeR(f.FunctionCode, f.Rs, f.Rt, f.Rd, f.ShiftAmount)
	}
	return EncodeI(f.Opcode, f.Rs, f.Rt, f.Immediate)
}

// EncodeR encodes an R-type instruction word.
func EncodeR(funct, rs, rt, rd, shamt uint8) uint32 {
	return (uint32(rs&0x1F) << 21) | (uint32(rt&0x1F) << 16) |
		(uint32(rd&0x1F) << 11) | (uint32(shamt&0x1F) << 6) | uint32(funct&0x3F)
}

// EncodeI encodes an I-type instruction word.
func EncodeI(opcode, rs, rt uint8, imm uint16) uint32 {
	return (uint32(opcode&0x3F) << 26) | (uint32(rs&0x1F) << 21) |
		(uint32(rt&0x1F) << 16) | uint32(imm)
}

// SignExtend16 replicates bit 15 of imm into the upper half of a word.
func SignExtend16(imm uint16) uint32 {
	return uint32(int32(int16(imm)))
}

package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsalu/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("R-type", func() {
		DescribeTable("should select the operation by function code",
			func(funct uint8, op insts.Op) {
				inst := decoder.Decode(insts.Fields{
					FunctionCode: funct, Rs: 1, Rt: 2, Rd: 3,
				})

				Expect(inst.Op).To(Equal(op))
				Expect(inst.Format).To(Equal(insts.FormatR))
				Expect(inst.Rs).To(Equal(uint8(1)))
				Expect(inst.Rt).To(Equal(uint8(2)))
				Expect(inst.Rd).To(Equal(uint8(3)))
			},
			Entry("SLL", insts.FunctSLL, insts.OpSLL),
			Entry("SRL", insts.FunctSRL, insts.OpSRL),
			Entry("SRA", insts.FunctSRA, insts.OpSRA),
			Entry("SLLV", insts.FunctSLLV, insts.OpSLLV),
			Entry("SRLV", insts.FunctSRLV, insts.OpSRLV),
			Entry("ADD", insts.FunctADD, insts.OpADD),
			Entry("ADDU", insts.FunctADDU, insts.OpADDU),
			Entry("SUB", insts.FunctSUB, insts.OpSUB),
			Entry("SUBU", insts.FunctSUBU, insts.OpSUBU),
			Entry("AND", insts.FunctAND, insts.OpAND),
			Entry("OR", insts.FunctOR, insts.OpOR),
			Entry("XOR", insts.FunctXOR, insts.OpXOR),
			Entry("SLT", insts.FunctSLT, insts.OpSLT),
			Entry("SLTU", insts.FunctSLTU, insts.OpSLTU),
		)

		It("should decode the all-zero pattern as NOOP", func() {
			inst := decoder.Decode(insts.Fields{})

			Expect(inst.Op).To(Equal(insts.OpNOOP))
			Expect(inst.Format).To(Equal(insts.FormatR))
		})

		It("should decode SLL with a non-zero field as SLL", func() {
			inst := decoder.Decode(insts.Fields{Rt: 1, Rd: 2, ShiftAmount: 3})

			Expect(inst.Op).To(Equal(insts.OpSLL))
			Expect(inst.ShiftAmount).To(Equal(uint8(3)))
		})

		It("should treat a stray immediate as breaking the NOOP pattern", func() {
			inst := decoder.Decode(insts.Fields{Immediate: 1})

			Expect(inst.Op).To(Equal(insts.OpSLL))
		})

		It("should leave unknown function codes as OpUnknown", func() {
			inst := decoder.Decode(insts.Fields{FunctionCode: 63})

			Expect(inst.Op).To(Equal(insts.OpUnknown))
			Expect(inst.Format).To(Equal(insts.FormatR))
		})

		It("should not accept SRAV or JR, which are outside the supported set", func() {
			Expect(decoder.Decode(insts.Fields{FunctionCode: 0x07}).Op).To(Equal(insts.OpUnknown))
			Expect(decoder.Decode(insts.Fields{FunctionCode: 0x08}).Op).To(Equal(insts.OpUnknown))
		})
	})

	Describe("I-type", func() {
		DescribeTable("should select the operation by opcode",
			func(opcode uint8, op insts.Op) {
				inst := decoder.Decode(insts.Fields{
					Opcode: opcode, Rs: 4, Rt: 5, Immediate: 0xFFFF,
				})

				Expect(inst.Op).To(Equal(op))
				Expect(inst.Format).To(Equal(insts.FormatI))
				Expect(inst.Immediate).To(Equal(uint16(0xFFFF)))
			},
			Entry("ADDI", insts.OpcodeADDI, insts.OpADDI),
			Entry("ADDIU", insts.OpcodeADDIU, insts.OpADDIU),
			Entry("SLTI", insts.OpcodeSLTI, insts.OpSLTI),
			Entry("SLTIU", insts.OpcodeSLTIU, insts.OpSLTIU),
		)

		It("should leave unknown opcodes as OpUnknown", func() {
			// LW
			inst := decoder.Decode(insts.Fields{Opcode: 0x23})

			Expect(inst.Op).To(Equal(insts.OpUnknown))
			Expect(inst.Format).To(Equal(insts.FormatI))
		})
	})

	Describe("DecodeWord", func() {
		// ADDI $2, $1, 5 -> 0x20220005
		It("should decode ADDI $2, $1, 5", func() {
			inst := decoder.DecodeWord(0x20220005)

			Expect(inst.Op).To(Equal(insts.OpADDI))
			Expect(inst.Rs).To(Equal(uint8(1)))
			Expect(inst.Rt).To(Equal(uint8(2)))
			Expect(inst.Immediate).To(Equal(uint16(5)))
		})

		// SRA $3, $2, 4 -> 0x00021903
		It("should decode SRA $3, $2, 4", func() {
			inst := decoder.DecodeWord(0x00021903)

			Expect(inst.Op).To(Equal(insts.OpSRA))
			Expect(inst.Rt).To(Equal(uint8(2)))
			Expect(inst.Rd).To(Equal(uint8(3)))
			Expect(inst.ShiftAmount).To(Equal(uint8(4)))
		})

		// ADDU $3, $1, $2 -> 0x00221821
		It("should decode ADDU $3, $1, $2", func() {
			inst := decoder.DecodeWord(0x00221821)

			Expect(inst.Op).To(Equal(insts.OpADDU))
			Expect(inst.Rs).To(Equal(uint8(1)))
			Expect(inst.Rt).To(Equal(uint8(2)))
			Expect(inst.Rd).To(Equal(uint8(3)))
		})

		It("should decode 0x00000000 as NOOP", func() {
			Expect(decoder.DecodeWord(0).Op).To(Equal(insts.OpNOOP))
		})
	})
})

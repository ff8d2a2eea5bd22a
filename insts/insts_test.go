package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsalu/insts"
)

var _ = Describe("Insts Package", func() {
	It("should have an Instruction type", func() {
		var i insts.Instruction
		Expect(i).To(BeZero())
	})

	It("should have a Decoder type", func() {
		decoder := insts.NewDecoder()
		Expect(decoder).ToNot(BeNil())
	})

	It("should name every operation", func() {
		Expect(insts.OpSLTIU.String()).To(Equal("SLTIU"))
		Expect(insts.OpNOOP.String()).To(Equal("NOOP"))
		Expect(insts.Op(200).String()).To(Equal("UNKNOWN"))
	})
})

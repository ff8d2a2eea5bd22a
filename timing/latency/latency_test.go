package latency_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsalu/insts"
	"github.com/sarchlab/mipsalu/timing/latency"
)

var _ = Describe("Latency", func() {
	var (
		table   *latency.Table
		decoder *insts.Decoder
	)

	BeforeEach(func() {
		table = latency.NewTable()
		decoder = insts.NewDecoder()
	})

	Describe("Default Timing Values", func() {
		It("should be single-cycle for every class", func() {
			config := table.Config()
			Expect(config.ShiftLatency).To(Equal(uint64(1)))
			Expect(config.ArithLatency).To(Equal(uint64(1)))
			Expect(config.LogicLatency).To(Equal(uint64(1)))
			Expect(config.CompareLatency).To(Equal(uint64(1)))
			Expect(config.NoopLatency).To(Equal(uint64(1)))
		})
	})

	Describe("GetLatency", func() {
		It("should return 1 cycle for ADDI $2, $1, 5", func() {
			inst := decoder.DecodeWord(0x20220005)
			Expect(table.GetLatency(inst)).To(Equal(uint64(1)))
		})

		It("should return 0 for unknown instructions", func() {
			inst := decoder.Decode(insts.Fields{FunctionCode: 63})
			Expect(table.GetLatency(inst)).To(Equal(uint64(0)))
		})

		It("should return 0 for nil", func() {
			Expect(table.GetLatency(nil)).To(Equal(uint64(0)))
		})

		It("should use the configured class latency", func() {
			config := latency.DefaultTimingConfig()
			config.ShiftLatency = 2
			config.CompareLatency = 3
			config.NoopLatency = 0
			custom := latency.NewTableWithConfig(config)

			Expect(custom.GetLatency(decoder.DecodeWord(0x00021903))).To(Equal(uint64(2))) // SRA
			Expect(custom.GetLatency(decoder.DecodeWord(0x00E8482A))).To(Equal(uint64(3))) // SLT
			Expect(custom.GetLatency(decoder.DecodeWord(0x00221821))).To(Equal(uint64(1))) // ADDU
			Expect(custom.GetLatency(decoder.DecodeWord(0))).To(Equal(uint64(0)))          // NOOP
		})
	})

	Describe("ClassOf", func() {
		DescribeTable("should group operations",
			func(op insts.Op, class latency.Class) {
				Expect(latency.ClassOf(op)).To(Equal(class))
			},
			Entry("NOOP", insts.OpNOOP, latency.ClassNoop),
			Entry("SLLV", insts.OpSLLV, latency.ClassShift),
			Entry("SUBU", insts.OpSUBU, latency.ClassArith),
			Entry("ADDIU", insts.OpADDIU, latency.ClassArith),
			Entry("XOR", insts.OpXOR, latency.ClassLogic),
			Entry("SLTIU", insts.OpSLTIU, latency.ClassCompare),
			Entry("Unknown", insts.OpUnknown, latency.ClassUnknown),
		)
	})

	Describe("TimingConfig", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "latency-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tempDir)
		})

		It("should validate the defaults", func() {
			Expect(latency.DefaultTimingConfig().Validate()).To(Succeed())
		})

		It("should reject a zero arithmetic latency", func() {
			config := latency.DefaultTimingConfig()
			config.ArithLatency = 0
			Expect(config.Validate()).To(MatchError(ContainSubstring("arith_latency")))
		})

		It("should allow a zero NOOP latency", func() {
			config := latency.DefaultTimingConfig()
			config.NoopLatency = 0
			Expect(config.Validate()).To(Succeed())
		})

		It("should save and load a config", func() {
			path := filepath.Join(tempDir, "timing.json")
			config := latency.DefaultTimingConfig()
			config.LogicLatency = 4

			Expect(config.SaveConfig(path)).To(Succeed())

			loaded, err := latency.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(config))
		})

		It("should keep defaults for fields missing from the file", func() {
			path := filepath.Join(tempDir, "partial.json")
			Expect(os.WriteFile(path, []byte(`{"shift_latency": 5}`), 0644)).To(Succeed())

			loaded, err := latency.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.ShiftLatency).To(Equal(uint64(5)))
			Expect(loaded.ArithLatency).To(Equal(uint64(1)))
		})

		It("should report a missing file", func() {
			_, err := latency.LoadConfig(filepath.Join(tempDir, "missing.json"))
			Expect(err).To(MatchError(ContainSubstring("failed to read timing config file")))
		})

		It("should report malformed JSON", func() {
			path := filepath.Join(tempDir, "bad.json")
			Expect(os.WriteFile(path, []byte(`{`), 0644)).To(Succeed())

			_, err := latency.LoadConfig(path)
			Expect(err).To(MatchError(ContainSubstring("failed to parse timing config")))
		})

		It("should clone independently", func() {
			config := latency.DefaultTimingConfig()
			clone := config.Clone()
			clone.ShiftLatency = 9

			Expect(config.ShiftLatency).To(Equal(uint64(1)))
		})
	})
})

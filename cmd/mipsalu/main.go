// Package main provides the entry point for the MIPS ALU simulator.
// It applies a stream of instructions to a register file, one at a time.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/mipsalu/emu"
	"github.com/sarchlab/mipsalu/insts"
	"github.com/sarchlab/mipsalu/loader"
	"github.com/sarchlab/mipsalu/timing/latency"
	"github.com/sarchlab/mipsalu/trace"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	set        string
	keepGoing  bool
	verbose    bool
	dump       bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mipsalu", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "Path to timing configuration JSON file")
	fs.StringVar(&opts.set, "set", "", "Initial register values, e.g. 1=0x80000000,2=-5")
	fs.BoolVar(&opts.keepGoing, "keep-going", false, "Continue past unsupported instructions")
	fs.BoolVar(&opts.verbose, "v", false, "Trace every instruction")
	fs.BoolVar(&opts.dump, "dump", false, "Dump the decoded program and statistics")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(stderr, "Usage: mipsalu [options] <program>\n")
		fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
		return 1
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	if opts.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	prog, err := loader.Load(fs.Arg(0))
	if err != nil {
		logger.WithError(err).Error("loading program")
		return 1
	}

	timingConfig := latency.DefaultTimingConfig()
	if opts.configPath != "" {
		timingConfig, err = latency.LoadConfig(opts.configPath)
		if err != nil {
			logger.WithError(err).Error("loading timing config")
			return 1
		}
	}
	if err := timingConfig.Validate(); err != nil {
		logger.WithError(err).Error("invalid timing config")
		return 1
	}

	regFile := &emu.RegFile{}
	if err := seedRegisters(regFile, opts.set); err != nil {
		logger.WithError(err).Error("parsing -set")
		return 1
	}

	executor := emu.NewExecutor(
		emu.WithLatencyTable(latency.NewTableWithConfig(timingConfig)),
		emu.WithHook(trace.NewLogHook(logger)),
	)

	printer := pp.New()
	printer.SetOutput(stdout)
	printer.SetColoringEnabled(false)

	if opts.dump {
		decoder := insts.NewDecoder()
		for i, word := range prog.Words {
			inst := decoder.DecodeWord(word)
			fmt.Fprintf(stdout, "%d: 0x%08X %v ", i, word, inst.Op)
			_, _ = printer.Println(inst.Fields)
		}
	}

	exitCode := 0
	for i, word := range prog.Words {
		err := executor.ExecuteWord(regFile, word)
		if err == nil {
			continue
		}

		logger.WithFields(logrus.Fields{
			"index": i,
			"word":  fmt.Sprintf("0x%08X", word),
		}).WithError(err).Error("execution failed")

		if !errors.Is(err, emu.ErrUnsupportedInstruction) || !opts.keepGoing {
			exitCode = 1
			break
		}
	}

	printRegisters(stdout, regFile)

	stats := executor.Stats()
	fmt.Fprintf(stdout, "\nInstructions: %d\n", stats.Instructions)
	fmt.Fprintf(stdout, "Cycles:       %d\n", stats.Cycles)
	fmt.Fprintf(stdout, "Writes:       %d\n", stats.Writes)
	fmt.Fprintf(stdout, "Unsupported:  %d\n", stats.Unsupported)

	if opts.dump {
		_, _ = printer.Println(stats)
	}

	return exitCode
}

// seedRegisters applies a comma separated list of reg=value assignments.
// Values may be decimal, negative, or 0x-prefixed hex.
func seedRegisters(regFile *emu.RegFile, spec string) error {
	if spec == "" {
		return nil
	}

	for _, assign := range strings.Split(spec, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(assign), "=")
		if !ok {
			return fmt.Errorf("expected reg=value, got %q", assign)
		}

		idx, err := strconv.ParseUint(strings.TrimPrefix(name, "$"), 10, 8)
		if err != nil || idx >= emu.NumRegs {
			return fmt.Errorf("invalid register %q", name)
		}

		v, err := parseWord(value)
		if err != nil {
			return fmt.Errorf("invalid value for $%d: %w", idx, err)
		}

		regFile.WriteReg(uint8(idx), v)
	}

	return nil
}

func parseWord(s string) (uint32, error) {
	if strings.HasPrefix(s, "-") {
		v, err := strconv.ParseInt(s, 0, 32)
		return uint32(int32(v)), err
	}
	v, err := strconv.ParseUint(s, 0, 32)
	return uint32(v), err
}

// printRegisters prints every non-zero register.
func printRegisters(w io.Writer, regFile *emu.RegFile) {
	fmt.Fprintf(w, "Registers:\n")
	for i, v := range regFile.R {
		if v == 0 {
			continue
		}
		fmt.Fprintf(w, "  $%-2d = 0x%08X (%d)\n", i, v, int32(v))
	}
}

package latency

import (
	"encoding/json"
	"fmt"
	"os"
)

// TimingConfig holds latency values for the MIPS instruction classes.
// The execute stage is single-cycle, so every default is 1.
type TimingConfig struct {
	// ShiftLatency applies to SLL, SRL, SRA, SLLV and SRLV.
	ShiftLatency uint64 `json:"shift_latency"`

	// ArithLatency applies to ADD, ADDU, SUB, SUBU, ADDI and ADDIU.
	ArithLatency uint64 `json:"arith_latency"`

	// LogicLatency applies to AND, OR and XOR.
	LogicLatency uint64 `json:"logic_latency"`

	// CompareLatency applies to SLT, SLTU, SLTI and SLTIU.
	CompareLatency uint64 `json:"compare_latency"`

	// NoopLatency is the cost of a NOOP. May be 0.
	NoopLatency uint64 `json:"noop_latency"`
}

// DefaultTimingConfig returns a single-cycle TimingConfig.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		ShiftLatency:   1,
		ArithLatency:   1,
		LogicLatency:   1,
		CompareLatency: 1,
		NoopLatency:    1,
	}
}

// LoadConfig loads a TimingConfig from a JSON file. Fields absent from the
// file keep their default values.
func LoadConfig(path string) (*TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timing config file: %w", err)
	}

	config := DefaultTimingConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse timing config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a TimingConfig to a JSON file.
func (c *TimingConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize timing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timing config file: %w", err)
	}

	return nil
}

// Validate checks that every latency that must take time is > 0.
func (c *TimingConfig) Validate() error {
	if c.ShiftLatency == 0 {
		return fmt.Errorf("shift_latency must be > 0")
	}
	if c.ArithLatency == 0 {
		return fmt.Errorf("arith_latency must be > 0")
	}
	if c.LogicLatency == 0 {
		return fmt.Errorf("logic_latency must be > 0")
	}
	if c.CompareLatency == 0 {
		return fmt.Errorf("compare_latency must be > 0")
	}
	return nil
}

// Clone returns a copy of the TimingConfig.
func (c *TimingConfig) Clone() *TimingConfig {
	clone := *c
	return &clone
}

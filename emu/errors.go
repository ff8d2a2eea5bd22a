package emu

import (
	"errors"
	"fmt"
)

// ErrUnsupportedInstruction matches any *UnsupportedInstructionError with
// errors.Is.
var ErrUnsupportedInstruction = errors.New("unsupported instruction")

// UnsupportedInstructionError is returned when no operation matches the
// opcode/function-code pair. No register is touched when it is returned.
type UnsupportedInstructionError struct {
	Opcode       uint8
	FunctionCode uint8
}

func (e *UnsupportedInstructionError) Error() string {
	return fmt.Sprintf("unsupported instruction: opcode=0x%02X funct=0x%02X",
		e.Opcode, e.FunctionCode)
}

// Is reports whether target is ErrUnsupportedInstruction.
func (e *UnsupportedInstructionError) Is(target error) bool {
	return target == ErrUnsupportedInstruction
}

// Package trace provides hooks that observe instruction execution.
//
// The hooks attach to any akita sim.Hookable; emu.Executor invokes them at
// emu.HookPosBeforeExecute, emu.HookPosAfterExecute and
// emu.HookPosUnsupported.
//
// Usage:
//
//	logger := logrus.New()
//	logger.SetLevel(logrus.DebugLevel)
//	executor := emu.NewExecutor(emu.WithHook(trace.NewLogHook(logger)))
package trace

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/mipsalu/emu"
	"github.com/sarchlab/mipsalu/insts"
)

// LogHook writes one structured log entry per hook invocation.
type LogHook struct {
	logger logrus.FieldLogger
}

// NewLogHook creates a LogHook writing to logger.
func NewLogHook(logger logrus.FieldLogger) *LogHook {
	return &LogHook{logger: logger}
}

// Func implements sim.Hook.
func (h *LogHook) Func(ctx sim.HookCtx) {
	inst, ok := ctx.Item.(*insts.Instruction)
	if !ok {
		return
	}

	fields := instFields(inst)

	switch ctx.Pos {
	case emu.HookPosBeforeExecute:
		h.logger.WithFields(fields).Debug("execute")
	case emu.HookPosAfterExecute:
		if access, ok := ctx.Detail.(emu.RegAccess); ok && access.Writes > 0 {
			fields["dest"] = access.WriteIndex
			fields["value"] = access.WriteValue
		}
		h.logger.WithFields(fields).Debug("retired")
	case emu.HookPosUnsupported:
		h.logger.WithFields(fields).Warn("unsupported instruction")
	}
}

func instFields(inst *insts.Instruction) logrus.Fields {
	fields := logrus.Fields{
		"op":     inst.Op.String(),
		"opcode": inst.Opcode,
		"rs":     inst.Rs,
		"rt":     inst.Rt,
	}

	if inst.Format == insts.FormatR {
		fields["rd"] = inst.Rd
		fields["shamt"] = inst.ShiftAmount
		fields["funct"] = inst.FunctionCode
	} else {
		fields["imm"] = inst.Immediate
	}

	return fields
}

// Event is one recorded hook invocation.
type Event struct {
	Pos    string
	Op     insts.Op
	Access emu.RegAccess
}

// Recorder keeps every hook invocation in memory, in order.
type Recorder struct {
	Events []Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Func implements sim.Hook.
func (r *Recorder) Func(ctx sim.HookCtx) {
	ev := Event{Pos: ctx.Pos.Name}

	if inst, ok := ctx.Item.(*insts.Instruction); ok {
		ev.Op = inst.Op
	}
	if access, ok := ctx.Detail.(emu.RegAccess); ok {
		ev.Access = access
	}

	r.Events = append(r.Events, ev)
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

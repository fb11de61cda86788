package cpu

import (
	"fmt"

	"github.com/oisee/m6502core/pkg/inst"
	m6502 "github.com/retroenv/retrogolib/arch/cpu/cpu6502"
	"github.com/retroenv/retrogolib/log"
)

// operand fetches whatever the addressing mode needs and returns the value
// the instruction operates on, charging cycles as it goes.
type operand func(c *CPU, cycles *int, bus Bus) uint8

// operation applies an instruction to a resolved operand value.
type operation func(c *CPU, v uint8)

type handler struct {
	info    inst.Info
	operand operand
	apply   operation
}

var operands = map[m6502.AddressingMode]operand{
	m6502.ImmediateAddressing: func(c *CPU, cycles *int, bus Bus) uint8 {
		return c.FetchByte(cycles, bus)
	},
	m6502.ZeroPageAddressing: func(c *CPU, cycles *int, bus Bus) uint8 {
		zp := c.FetchByte(cycles, bus)
		return c.ReadByte(cycles, uint16(zp), bus)
	},
	m6502.ZeroPageXAddressing: func(c *CPU, cycles *int, bus Bus) uint8 {
		zp := c.FetchByte(cycles, bus)
		zp += c.X // wraps within page 0
		*cycles--
		return c.ReadByte(cycles, uint16(zp), bus)
	},
}

var operations = map[string]operation{
	"LDA": func(c *CPU, v uint8) {
		c.A = v
		c.P.setZN(v)
	},
}

// dispatch maps every opcode byte to its handler; nil means unrecognized.
var dispatch [256]*handler

func init() {
	for _, op := range inst.DefinedOps() {
		info := inst.Catalog[op]
		fetch, ok := operands[info.Mode]
		if !ok {
			panic(fmt.Sprintf("cpu: no operand fetch for mode %s (opcode %02X)", inst.ModeName(info.Mode), op))
		}
		apply, ok := operations[info.Mnemonic]
		if !ok {
			panic(fmt.Sprintf("cpu: no operation for %s (opcode %02X)", info.Mnemonic, op))
		}
		dispatch[op] = &handler{info: info, operand: fetch, apply: apply}
	}
}

// Stats summarizes one Execute call.
type Stats struct {
	Cycles       int // consumed; can exceed the budget by part of the last instruction
	Instructions int // successfully executed instructions
	Faults       int // unrecognized opcodes
}

// Execute runs instructions until the cycle budget is used up. The budget is
// only checked between instructions, so the final instruction always runs to
// completion even if it costs more than what was left. A budget <= 0 runs
// nothing.
func (c *CPU) Execute(cycles int, bus Bus) Stats {
	var st Stats
	budget := cycles
	for cycles > 0 {
		if c.step(&cycles, bus) {
			st.Instructions++
		} else {
			st.Faults++
		}
	}
	st.Cycles = budget - cycles
	return st
}

// Step runs exactly one instruction and returns the cycles it consumed.
func (c *CPU) Step(bus Bus) int {
	cycles := 0
	c.step(&cycles, bus)
	return -cycles
}

// step fetches, decodes and executes one instruction. It returns false if
// the opcode was unrecognized.
func (c *CPU) step(cycles *int, bus Bus) bool {
	at := c.PC
	op := c.FetchByte(cycles, bus)

	h := dispatch[op]
	if h == nil {
		c.fault(op, at)
		return false
	}

	h.apply(c, h.operand(c, cycles, bus))

	if c.logger != nil {
		c.logger.Debug("Executed instruction",
			log.Hex("address", at),
			log.String("instruction", inst.Syntax(inst.OpCode(op))),
			log.Hex("a", c.A),
			log.Stringer("p", c.P))
	}
	return true
}

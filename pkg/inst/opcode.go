package inst

import m6502 "github.com/retroenv/retrogolib/arch/cpu/cpu6502"

// OpCode is the raw first byte of a 6502 instruction.
type OpCode uint8

// OperandBytes returns the number of operand bytes following the opcode for
// the addressing modes the catalog uses.
func OperandBytes(mode m6502.AddressingMode) int {
	switch mode {
	case m6502.ImmediateAddressing, m6502.ZeroPageAddressing, m6502.ZeroPageXAddressing:
		return 1
	}
	return 0
}

// ModeName returns a short name for an addressing mode.
func ModeName(mode m6502.AddressingMode) string {
	switch mode {
	case m6502.ImmediateAddressing:
		return "immediate"
	case m6502.ZeroPageAddressing:
		return "zeropage"
	case m6502.ZeroPageXAddressing:
		return "zeropage,x"
	}
	return "implied"
}

// Opcodes bound to handlers. The opcode space is sparse; everything else is
// reported as unrecognized by the CPU.
const (
	LDA_IM  OpCode = 0xA9
	LDA_ZP  OpCode = 0xA5
	LDA_ZPX OpCode = 0xB5
)

// Instruction is one decoded instruction: opcode plus its operand byte (if any).
type Instruction struct {
	Op      OpCode
	Operand uint8
}

// Bytes returns the machine encoding of the instruction.
func (i Instruction) Bytes() []byte {
	if OperandBytes(Catalog[i.Op].Mode) == 0 {
		return []byte{byte(i.Op)}
	}
	return []byte{byte(i.Op), i.Operand}
}

// Encode concatenates the encodings of a sequence of instructions.
func Encode(seq []Instruction) []byte {
	out := make([]byte, 0, len(seq)*2)
	for _, i := range seq {
		out = append(out, i.Bytes()...)
	}
	return out
}

package inst

import m6502 "github.com/retroenv/retrogolib/arch/cpu/cpu6502"

// Info holds static metadata for an opcode.
type Info struct {
	Mnemonic string // Instruction name, e.g. "LDA"
	Mode     m6502.AddressingMode
	Cycles   int // Total bus cycles including the opcode fetch
	Defined  bool
}

// Catalog maps every opcode byte to its Info. Undefined slots have Defined == false.
var Catalog [256]Info

func init() {
	def := func(op OpCode, mnemonic string, mode m6502.AddressingMode, cycles int) {
		Catalog[op] = Info{Mnemonic: mnemonic, Mode: mode, Cycles: cycles, Defined: true}
	}

	def(LDA_IM, "LDA", m6502.ImmediateAddressing, 2)
	def(LDA_ZP, "LDA", m6502.ZeroPageAddressing, 3)
	def(LDA_ZPX, "LDA", m6502.ZeroPageXAddressing, 4)
}

// Lookup returns the catalog entry for op and whether it is defined.
func Lookup(op OpCode) (Info, bool) {
	info := Catalog[op]
	return info, info.Defined
}

// Find returns the opcode for a mnemonic/mode pair.
func Find(mnemonic string, mode m6502.AddressingMode) (OpCode, bool) {
	for op := range Catalog {
		info := &Catalog[op]
		if info.Defined && info.Mnemonic == mnemonic && info.Mode == mode {
			return OpCode(op), true
		}
	}
	return 0, false
}

// DefinedOps returns all opcodes that have a catalog entry, in ascending order.
func DefinedOps() []OpCode {
	var ops []OpCode
	for op := range Catalog {
		if Catalog[op].Defined {
			ops = append(ops, OpCode(op))
		}
	}
	return ops
}

// Syntax returns the assembler form of an opcode with "n" as operand placeholder,
// e.g. "LDA #n", "LDA n,X".
func Syntax(op OpCode) string {
	info := &Catalog[op]
	switch info.Mode {
	case m6502.ImmediateAddressing:
		return info.Mnemonic + " #n"
	case m6502.ZeroPageAddressing:
		return info.Mnemonic + " n"
	case m6502.ZeroPageXAddressing:
		return info.Mnemonic + " n,X"
	}
	return info.Mnemonic
}

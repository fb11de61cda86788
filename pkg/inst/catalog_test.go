package inst

import (
	"bytes"
	"strings"
	"testing"

	m6502 "github.com/retroenv/retrogolib/arch/cpu/cpu6502"
	"github.com/retroenv/retrogolib/assert"
)

// TestCatalogCompleteness verifies every defined opcode has a usable entry.
func TestCatalogCompleteness(t *testing.T) {
	ops := DefinedOps()
	if len(ops) != 3 {
		t.Fatalf("expected 3 defined opcodes, got %d", len(ops))
	}
	for _, op := range ops {
		info := &Catalog[op]
		if info.Mnemonic == "" {
			t.Errorf("opcode %02X has no mnemonic", op)
		}
		if info.Cycles != 1+OperandBytes(info.Mode)+extraCycles(info.Mode) {
			t.Errorf("opcode %02X (%s): %d cycles does not match its addressing mode", op, Syntax(op), info.Cycles)
		}
	}
}

func extraCycles(m m6502.AddressingMode) int {
	switch m {
	case m6502.ZeroPageAddressing:
		return 1 // memory read
	case m6502.ZeroPageXAddressing:
		return 2 // index add + memory read
	}
	return 0
}

// TestCatalogMatchesOpcodeTable checks every defined entry against the
// m6502 opcode table: instruction, addressing mode and base timing.
func TestCatalogMatchesOpcodeTable(t *testing.T) {
	for _, op := range DefinedOps() {
		info := Catalog[op]
		ref := m6502.Opcodes[byte(op)]
		assert.True(t, ref.Instruction != nil, "opcode has no instruction in the m6502 table")
		assert.True(t, strings.EqualFold(info.Mnemonic, ref.Instruction.Name), "mnemonic mismatch")
		assert.Equal(t, ref.Addressing, info.Mode)
		assert.Equal(t, int(ref.Timing), info.Cycles)
	}
}

func TestSyntax(t *testing.T) {
	expected := map[OpCode]string{
		LDA_IM:  "LDA #n",
		LDA_ZP:  "LDA n",
		LDA_ZPX: "LDA n,X",
	}
	for op, want := range expected {
		if got := Syntax(op); got != want {
			t.Errorf("Syntax(%02X) = %q, want %q", op, got, want)
		}
	}
}

func TestUndefinedOpcode(t *testing.T) {
	for _, op := range []OpCode{0x00, 0xEA, 0xFF} {
		if _, ok := Lookup(op); ok {
			t.Errorf("opcode %02X should be undefined", op)
		}
	}
}

func TestFind(t *testing.T) {
	op, ok := Find("LDA", m6502.ZeroPageXAddressing)
	if !ok || op != LDA_ZPX {
		t.Errorf("Find(LDA, zeropage,x) = %02X, %v", op, ok)
	}
	if _, ok := Find("LDX", m6502.ImmediateAddressing); ok {
		t.Error("Find(LDX, Immediate) should fail")
	}
}

func TestEncode(t *testing.T) {
	seq := []Instruction{
		{Op: LDA_IM, Operand: 0x37},
		{Op: LDA_ZPX, Operand: 0xF0},
	}
	want := []byte{0xA9, 0x37, 0xB5, 0xF0}
	if got := Encode(seq); !bytes.Equal(got, want) {
		t.Errorf("Encode = % X, want % X", got, want)
	}
	// undefined opcodes encode as a single byte
	if got := (Instruction{Op: 0x02, Operand: 0x99}).Bytes(); !bytes.Equal(got, []byte{0x02}) {
		t.Errorf("Bytes of undefined opcode = % X, want 02", got)
	}
}

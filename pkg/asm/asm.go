// Package asm turns short assembly snippets into machine code for the catalog's
// instructions. It exists so programs can be written as text on the command line.
package asm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/oisee/m6502core/pkg/inst"
	m6502 "github.com/retroenv/retrogolib/arch/cpu/cpu6502"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("syntax error")

// Assemble converts text like "LDA #$37 : LDA $42,X" into bytes. Statements are
// separated by ':' or newlines. ".byte v[,v...]" emits raw bytes, which is how
// undefined opcodes can be placed in a program.
func Assemble(text string) ([]byte, error) {
	var out []byte
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == ':' || r == '\n' }) {
		line = stripComment(line)
		if line == "" {
			continue
		}
		b, err := assembleStatement(line)
		if err != nil {
			return nil, fmt.Errorf("cannot assemble %q: %w", line, err)
		}
		out = append(out, b...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no instructions in %q: %w", text, ErrSyntax)
	}
	return out, nil
}

func stripComment(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func assembleStatement(s string) ([]byte, error) {
	mnemonic, arg, _ := strings.Cut(s, " ")
	mnemonic = strings.ToUpper(mnemonic)
	arg = strings.ReplaceAll(strings.TrimSpace(arg), " ", "")

	if mnemonic == ".BYTE" || mnemonic == ".DB" {
		return parseBytes(arg)
	}

	mode, valStr, err := parseOperand(arg)
	if err != nil {
		return nil, err
	}
	op, ok := inst.Find(mnemonic, mode)
	if !ok {
		return nil, fmt.Errorf("unknown instruction %s (%s): %w", mnemonic, inst.ModeName(mode), ErrSyntax)
	}

	var operand uint8
	if inst.OperandBytes(mode) > 0 {
		v, err := ParseValue(valStr)
		if err != nil {
			return nil, err
		}
		if v > 0xFF {
			return nil, fmt.Errorf("operand %s does not fit in a byte: %w", valStr, ErrSyntax)
		}
		operand = uint8(v)
	}
	return inst.Instruction{Op: op, Operand: operand}.Bytes(), nil
}

func parseOperand(arg string) (m6502.AddressingMode, string, error) {
	upper := strings.ToUpper(arg)
	switch {
	case arg == "":
		return m6502.ImpliedAddressing, "", nil
	case strings.HasPrefix(arg, "#"):
		return m6502.ImmediateAddressing, arg[1:], nil
	case strings.HasSuffix(upper, ",X"):
		return m6502.ZeroPageXAddressing, arg[:len(arg)-2], nil
	case strings.Contains(arg, ","):
		return m6502.ImpliedAddressing, "", fmt.Errorf("unsupported operand %q: %w", arg, ErrSyntax)
	}
	return m6502.ZeroPageAddressing, arg, nil
}

func parseBytes(arg string) ([]byte, error) {
	if arg == "" {
		return nil, fmt.Errorf(".byte needs a value: %w", ErrSyntax)
	}
	var out []byte
	for _, part := range strings.Split(arg, ",") {
		v, err := ParseValue(part)
		if err != nil {
			return nil, err
		}
		if v > 0xFF {
			return nil, fmt.Errorf("value %s does not fit in a byte: %w", part, ErrSyntax)
		}
		out = append(out, uint8(v))
	}
	return out, nil
}

// ParseValue parses a number written as $FF, 0xFF, FFh or decimal.
func ParseValue(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	base := 10
	switch {
	case s == "":
		return 0, fmt.Errorf("empty value: %w", ErrSyntax)
	case strings.HasPrefix(s, "$"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	case strings.HasSuffix(s, "h") || strings.HasSuffix(s, "H"):
		s, base = s[:len(s)-1], 16
	}
	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, fmt.Errorf("bad value %q: %w", s, ErrSyntax)
	}
	return uint16(v), nil
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oisee/m6502core/pkg/asm"
	"github.com/oisee/m6502core/pkg/machine"
	"github.com/spf13/pflag"
)

// hexValue is a pflag.Value for addresses and bytes given as $FF, 0xFF, FFh or decimal.
type hexValue struct {
	v    uint16
	bits int
}

var _ pflag.Value = (*hexValue)(nil)

func newHex(v uint16, bits int) *hexValue {
	return &hexValue{v: v, bits: bits}
}

func (h *hexValue) String() string {
	if h.bits == 8 {
		return fmt.Sprintf("$%02X", h.v)
	}
	return fmt.Sprintf("$%04X", h.v)
}

func (h *hexValue) Set(s string) error {
	v, err := asm.ParseValue(s)
	if err != nil {
		return err
	}
	if h.bits == 8 && v > 0xFF {
		return fmt.Errorf("%s does not fit in a byte", s)
	}
	h.v = v
	return nil
}

func (h *hexValue) Type() string {
	if h.bits == 8 {
		return "byte"
	}
	return "addr"
}

// parsePokes converts "ADDR=VAL" pairs.
func parsePokes(specs []string) ([]machine.Poke, error) {
	var pokes []machine.Poke
	for _, s := range specs {
		addrStr, valStr, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("poke %q: expected ADDR=VAL", s)
		}
		addr, err := asm.ParseValue(addrStr)
		if err != nil {
			return nil, fmt.Errorf("poke %q: %w", s, err)
		}
		val, err := asm.ParseValue(valStr)
		if err != nil {
			return nil, fmt.Errorf("poke %q: %w", s, err)
		}
		if val > 0xFF {
			return nil, fmt.Errorf("poke %q: value does not fit in a byte", s)
		}
		pokes = append(pokes, machine.Poke{Addr: addr, Value: uint8(val)})
	}
	return pokes, nil
}

// parseDumps converts "ADDR:LEN" ranges.
func parseDumps(specs []string) ([]machine.Range, error) {
	var ranges []machine.Range
	for _, s := range specs {
		addrStr, lenStr, ok := strings.Cut(s, ":")
		if !ok {
			return nil, fmt.Errorf("dump %q: expected ADDR:LEN", s)
		}
		addr, err := asm.ParseValue(addrStr)
		if err != nil {
			return nil, fmt.Errorf("dump %q: %w", s, err)
		}
		n, err := strconv.Atoi(lenStr)
		if err != nil || n <= 0 || n > 0x10000 {
			return nil, fmt.Errorf("dump %q: bad length", s)
		}
		ranges = append(ranges, machine.Range{Addr: addr, Len: n})
	}
	return ranges, nil
}

package cpu

// Flags is the processor status register. Each flag owns one bit, at the
// position the 6502 uses when P is pushed to the stack.
type Flags uint8

// 6502 flag bit positions in P. Bit 5 is unused.
const (
	FlagC Flags = 0x01 // Carry
	FlagZ Flags = 0x02 // Zero
	FlagI Flags = 0x04 // Interrupt disable
	FlagD Flags = 0x08 // Decimal mode
	FlagB Flags = 0x10 // Break
	FlagV Flags = 0x40 // Overflow
	FlagN Flags = 0x80 // Negative
)

// AllFlags is the mask of every defined flag bit.
const AllFlags = FlagC | FlagZ | FlagI | FlagD | FlagB | FlagV | FlagN

// Has reports whether every bit in f is set.
func (p Flags) Has(f Flags) bool {
	return p&f == f
}

// Set turns f on or off.
func (p *Flags) Set(f Flags, on bool) {
	if on {
		*p |= f
	} else {
		*p &^= f
	}
}

// Named accessors for the individual flags.
func (p Flags) Carry() bool     { return p.Has(FlagC) }
func (p Flags) Zero() bool      { return p.Has(FlagZ) }
func (p Flags) Interrupt() bool { return p.Has(FlagI) }
func (p Flags) Decimal() bool   { return p.Has(FlagD) }
func (p Flags) Break() bool     { return p.Has(FlagB) }
func (p Flags) Overflow() bool  { return p.Has(FlagV) }
func (p Flags) Negative() bool  { return p.Has(FlagN) }

// String renders P in the usual "NV-BDIZC" layout, uppercase when set.
func (p Flags) String() string {
	const names = "NV-BDIZC"
	buf := []byte("nv-bdizc")
	for i := 0; i < 8; i++ {
		bit := Flags(0x80 >> i)
		if bit&AllFlags != 0 && p.Has(bit) {
			buf[i] = names[i]
		}
	}
	return string(buf)
}

// setZN updates Zero and Negative from a freshly loaded value.
func (p *Flags) setZN(v uint8) {
	p.Set(FlagZ, v == 0)
	p.Set(FlagN, v&0x80 != 0)
}

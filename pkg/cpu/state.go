package cpu

// Registers is the 6502 register file. Cheap to copy by value, which is how
// callers snapshot state before and after a run.
type Registers struct {
	PC uint16 // next instruction byte
	SP uint16 // stack page 0x0100-0x01FF, not enforced here
	A  uint8
	X  uint8
	Y  uint8
	P  Flags
}

// Equal returns true if two register files are identical.
func (r Registers) Equal(o Registers) bool {
	return r == o
}

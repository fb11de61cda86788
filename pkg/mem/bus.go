package mem

// Size is the number of addressable bytes on a 16-bit address bus.
const Size = 1 << 16

// Bus is the flat 64 KiB memory seen by the CPU.
// The backing array is exactly as large as the address space, so every
// uint16 address is valid and no bounds checks are needed on access.
type Bus struct {
	data [Size]uint8
}

// New creates a zeroed bus.
func New() *Bus {
	return &Bus{}
}

// Read returns the byte at addr. Cycle accounting is up to the caller.
func (b *Bus) Read(addr uint16) uint8 {
	return b.data[addr]
}

// Write stores v at addr.
func (b *Bus) Write(addr uint16, v uint8) {
	b.data[addr] = v
}

// Initialise zero-fills the whole address space.
func (b *Bus) Initialise() {
	clear(b.data[:])
}

// Load copies data into memory starting at addr, wrapping past 0xFFFF.
func (b *Bus) Load(addr uint16, data []byte) {
	for i, v := range data {
		b.data[addr+uint16(i)] = v
	}
}

// Slice returns a copy of n bytes starting at addr, wrapping past 0xFFFF.
func (b *Bus) Slice(addr uint16, n int) []byte {
	if n <= 0 {
		return nil
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = b.data[addr+uint16(i)]
	}
	return out
}

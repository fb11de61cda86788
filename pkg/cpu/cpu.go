package cpu

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

const (
	ResetVector uint16 = 0xFFFC // PC after Reset
	StackBase   uint16 = 0x0100 // SP after Reset
)

// Bus is the memory the CPU runs against. The CPU borrows it for the
// duration of a call and never keeps a reference.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
	Initialise()
}

// ErrUnknownOpcode is wrapped by every Fault.
var ErrUnknownOpcode = errors.New("unrecognized opcode")

// Fault describes an opcode the dispatcher has no handler for.
type Fault struct {
	Opcode  uint8
	Address uint16 // where the opcode was fetched from
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s $%02X at $%04X", ErrUnknownOpcode, f.Opcode, f.Address)
}

func (f *Fault) Unwrap() error {
	return ErrUnknownOpcode
}

// CPU is the processor core: registers, flags and the dispatch table.
type CPU struct {
	Registers

	logger  *log.Logger // nil keeps the core silent
	onFault func(*Fault)
	faults  int
}

// Option configures a CPU.
type Option func(*CPU)

// WithLogger sets the logger faults and instruction traces are written to.
func WithLogger(l *log.Logger) Option {
	return func(c *CPU) {
		c.logger = l
	}
}

// WithFaultHandler registers fn to be called for every unrecognized opcode.
func WithFaultHandler(fn func(*Fault)) Option {
	return func(c *CPU) {
		c.onFault = fn
	}
}

// New creates a CPU. Its state is undefined until Reset is called.
func New(opts ...Option) *CPU {
	c := &CPU{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset pins PC to the reset vector, SP to the stack base, clears A/X/Y and
// all flags and zero-fills the bus. Programs must be loaded afterwards.
func (c *CPU) Reset(bus Bus) {
	c.Registers = Registers{
		PC: ResetVector,
		SP: StackBase,
	}
	c.faults = 0
	bus.Initialise()
}

// Faults returns the number of unrecognized opcodes seen since Reset.
func (c *CPU) Faults() int {
	return c.faults
}

// FetchByte reads the byte at PC and advances PC. Costs one cycle.
func (c *CPU) FetchByte(cycles *int, bus Bus) uint8 {
	v := bus.Read(c.PC)
	c.PC++
	*cycles--
	return v
}

// FetchWord reads a little-endian word at PC and advances PC by two.
// Costs two cycles.
func (c *CPU) FetchWord(cycles *int, bus Bus) uint16 {
	lo := uint16(c.FetchByte(cycles, bus))
	hi := uint16(c.FetchByte(cycles, bus))
	return hi<<8 | lo
}

// ReadByte reads the byte at an effective address without touching PC.
// Costs one cycle.
func (c *CPU) ReadByte(cycles *int, addr uint16, bus Bus) uint8 {
	v := bus.Read(addr)
	*cycles--
	return v
}

func (c *CPU) fault(op uint8, at uint16) {
	f := &Fault{Opcode: op, Address: at}
	c.faults++
	if c.logger != nil {
		c.logger.Warn("Faulty instruction",
			log.Hex("opcode", op),
			log.Hex("address", at),
			log.Err(f))
	}
	if c.onFault != nil {
		c.onFault(f)
	}
}

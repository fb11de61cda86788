package machine

import (
	"errors"
	"fmt"

	"github.com/oisee/m6502core/pkg/cpu"
	"github.com/oisee/m6502core/pkg/mem"
	"github.com/oisee/m6502core/pkg/result"
	"github.com/retroenv/retrogolib/log"
)

// ErrNoProgram is returned when a run is requested without a program image.
var ErrNoProgram = errors.New("no program")

// Poke is a single byte written to memory after Reset.
type Poke struct {
	Addr  uint16
	Value uint8
}

// Range selects memory to copy into the report.
type Range struct {
	Addr uint16
	Len  int
}

// Config holds run configuration.
type Config struct {
	Program []byte // Machine code placed at Origin after Reset
	Origin  *uint16 // Load address and starting PC; nil means the reset vector
	Cycles  int    // Cycle budget
	X, Y    uint8  // Index registers preset after Reset
	Pokes   []Poke // Extra memory contents, applied after the program
	Dumps   []Range
	Logger  *log.Logger // nil runs silently
}

// Machine is a bus plus a processor, wired the way a driver uses them.
type Machine struct {
	Bus *mem.Bus
	CPU *cpu.CPU
}

// New creates a machine whose CPU logs through logger (nil = silent).
func New(logger *log.Logger, opts ...cpu.Option) *Machine {
	opts = append([]cpu.Option{cpu.WithLogger(logger)}, opts...)
	return &Machine{
		Bus: mem.New(),
		CPU: cpu.New(opts...),
	}
}

// Reset resets the CPU, which also clears memory.
func (m *Machine) Reset() {
	m.CPU.Reset(m.Bus)
}

// Execute runs the CPU for the given cycle budget.
func (m *Machine) Execute(cycles int) cpu.Stats {
	return m.CPU.Execute(cycles, m.Bus)
}

// Run resets a fresh machine, loads the program and memory contents, runs the
// budget and returns what the caller can observe afterwards.
func Run(cfg Config) (*result.Report, error) {
	if len(cfg.Program) == 0 {
		return nil, ErrNoProgram
	}
	if cfg.Cycles <= 0 {
		return nil, fmt.Errorf("cycle budget must be positive, got %d", cfg.Cycles)
	}
	origin := cpu.ResetVector
	if cfg.Origin != nil {
		origin = *cfg.Origin
	}
	logger := cfg.Logger

	m := New(logger)
	m.Reset()
	// Reset zero-fills memory, so everything is loaded after it.
	m.Bus.Load(origin, cfg.Program)
	for _, p := range cfg.Pokes {
		m.Bus.Write(p.Addr, p.Value)
	}
	m.CPU.PC = origin
	m.CPU.X = cfg.X
	m.CPU.Y = cfg.Y

	if logger != nil {
		logger.Debug("Running program",
			log.Hex("origin", origin),
			log.Int("bytes", len(cfg.Program)),
			log.Int("cycles", cfg.Cycles))
	}

	st := m.Execute(cfg.Cycles)
	if st.Faults > 0 && logger != nil {
		logger.Warn("Program hit unrecognized opcodes", log.Int("faults", st.Faults))
	}

	rep := result.New(m.CPU.Registers, cfg.Cycles, st)
	for _, d := range cfg.Dumps {
		rep.Memory = append(rep.Memory, result.Dump{Address: d.Addr, Bytes: m.Bus.Slice(d.Addr, d.Len)})
	}
	return rep, nil
}

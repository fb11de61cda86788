package result

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/oisee/m6502core/pkg/cpu"
)

// Report is the observable outcome of one run: final registers, flags,
// cycle accounting and any memory ranges the caller asked for.
type Report struct {
	PC     uint16 `json:"pc"`
	SP     uint16 `json:"sp"`
	A      uint8  `json:"a"`
	X      uint8  `json:"x"`
	Y      uint8  `json:"y"`
	P      uint8  `json:"p"`
	Flags  string `json:"flags"` // NV-BDIZC, uppercase = set
	Budget int    `json:"budget"`

	Cycles       int `json:"cycles"`
	Instructions int `json:"instructions"`
	Faults       int `json:"faults"`

	Memory []Dump `json:"memory,omitempty"`
}

// Dump is a copy of a memory range.
type Dump struct {
	Address uint16 `json:"address"`
	Bytes   Hex    `json:"bytes"`
}

// Hex marshals as a hex string instead of base64.
type Hex []byte

func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decoding memory dump: %w", err)
	}
	*h = b
	return nil
}

// New builds a report from the final register file and execution stats.
func New(regs cpu.Registers, budget int, st cpu.Stats) *Report {
	return &Report{
		PC:           regs.PC,
		SP:           regs.SP,
		A:            regs.A,
		X:            regs.X,
		Y:            regs.Y,
		P:            uint8(regs.P),
		Flags:        regs.P.String(),
		Budget:       budget,
		Cycles:       st.Cycles,
		Instructions: st.Instructions,
		Faults:       st.Faults,
	}
}

// Registers returns the register file the report was built from.
func (r *Report) Registers() cpu.Registers {
	return cpu.Registers{PC: r.PC, SP: r.SP, A: r.A, X: r.X, Y: r.Y, P: cpu.Flags(r.P)}
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ReadJSON reads a report written by WriteJSON.
func ReadJSON(rd io.Reader) (*Report, error) {
	var r Report
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// WriteText prints the report in a short human readable form.
func WriteText(w io.Writer, r *Report) error {
	_, err := fmt.Fprintf(w, "PC=%04X SP=%04X A=%02X X=%02X Y=%02X P=%s\ncycles: %d/%d  instructions: %d  faults: %d\n",
		r.PC, r.SP, r.A, r.X, r.Y, r.Flags, r.Cycles, r.Budget, r.Instructions, r.Faults)
	if err != nil {
		return err
	}
	for _, d := range r.Memory {
		if _, err := fmt.Fprintf(w, "$%04X: % X\n", d.Address, []byte(d.Bytes)); err != nil {
			return err
		}
	}
	return nil
}

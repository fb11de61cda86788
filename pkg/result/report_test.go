package result

import (
	"bytes"
	"strings"
	"testing"

	"github.com/oisee/m6502core/pkg/cpu"
)

func TestReportJSON(t *testing.T) {
	regs := cpu.Registers{PC: 0xFFFE, SP: 0x0100, A: 0x84, P: cpu.FlagN}
	r := New(regs, 3, cpu.Stats{Cycles: 3, Instructions: 1})
	r.Memory = []Dump{{Address: 0x0042, Bytes: Hex{0x84, 0x00}}}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, r); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"bytes": "8400"`) {
		t.Errorf("memory dump not hex encoded:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `"flags": "Nv-bdizc"`) {
		t.Errorf("flags string missing:\n%s", buf.String())
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Registers().Equal(regs) {
		t.Errorf("registers = %+v, want %+v", got.Registers(), regs)
	}
	if len(got.Memory) != 1 || !bytes.Equal(got.Memory[0].Bytes, []byte{0x84, 0x00}) {
		t.Errorf("memory = %+v", got.Memory)
	}
}

func TestReadJSONBadHex(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"memory":[{"address":0,"bytes":"zz"}]}`))
	if err == nil {
		t.Error("expected error for bad hex dump")
	}
}

func TestWriteText(t *testing.T) {
	r := New(cpu.Registers{PC: 0xFFFE, SP: 0x0100, A: 0x37}, 2, cpu.Stats{Cycles: 2, Instructions: 1})
	r.Memory = []Dump{{Address: 0x10, Bytes: Hex{0xAB}}}
	var buf bytes.Buffer
	if err := WriteText(&buf, r); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"PC=FFFE", "A=37", "P=nv-bdizc", "cycles: 2/2", "$0010: AB"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

package asm

import (
	"bytes"
	"errors"
	"testing"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		text string
		want []byte
	}{
		{"LDA #$37", []byte{0xA9, 0x37}},
		{"lda $42", []byte{0xA5, 0x42}},
		{"LDA $F0,X", []byte{0xB5, 0xF0}},
		{"LDA $F0, x", []byte{0xB5, 0xF0}},
		{"LDA #0x80 : LDA 66", []byte{0xA9, 0x80, 0xA5, 0x42}},
		{"LDA #10h ; comment\nLDA 0,X", []byte{0xA9, 0x10, 0xB5, 0x00}},
		{".byte $02, 3 : LDA #1", []byte{0x02, 0x03, 0xA9, 0x01}},
	}
	for _, tc := range tests {
		got, err := Assemble(tc.text)
		if err != nil {
			t.Errorf("Assemble(%q): %v", tc.text, err)
			continue
		}
		if !bytes.Equal(got, tc.want) {
			t.Errorf("Assemble(%q) = % X, want % X", tc.text, got, tc.want)
		}
	}
}

func TestAssembleErrors(t *testing.T) {
	for _, text := range []string{
		"",
		" : ; nothing",
		"LDX #1",
		"LDA",
		"LDA #$100",
		"LDA $10,Y",
		"LDA #zz",
		".byte",
		".byte 256",
	} {
		_, err := Assemble(text)
		if err == nil {
			t.Errorf("Assemble(%q) succeeded, want error", text)
			continue
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("Assemble(%q) error %v does not wrap ErrSyntax", text, err)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		s    string
		want uint16
	}{
		{"$FFFC", 0xFFFC},
		{"0x42", 0x42},
		{"0XfF", 0xFF},
		{"FFh", 0xFF},
		{"255", 255},
		{" 7 ", 7},
	}
	for _, tc := range tests {
		got, err := ParseValue(tc.s)
		if err != nil || got != tc.want {
			t.Errorf("ParseValue(%q) = %d, %v; want %d", tc.s, got, err, tc.want)
		}
	}
	if _, err := ParseValue("$10000"); err == nil {
		t.Error("ParseValue($10000) should overflow")
	}
}

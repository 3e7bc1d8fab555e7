package cbus

import (
	"errors"
	"testing"
)

func TestProcessorFromCodes(t *testing.T) {
	tests := []struct {
		name         string
		cpuID        uint8
		manufacturer uint8
		kind         ProcessorKind
		str          string
	}{
		{"pic18f25k80", 13, 1, ProcessorKindMicrochip, "Microchip/P18F25K80"},
		{"cortex a53", 3, 3, ProcessorKindArm, "Arm/ARMCortex_A53"},
		{"atmel", 42, 2, ProcessorKindAtmel, "Atmel(0x2A)"},
		{"microchip undefined", 200, 1, ProcessorKindUnknown, "Unknown(cpu=0xC8, manufacturer=0x01)"},
		{"arm undefined", 9, 3, ProcessorKindUnknown, "Unknown(cpu=0x09, manufacturer=0x03)"},
		{"unknown manufacturer", 1, 9, ProcessorKindUnknown, "Unknown(cpu=0x01, manufacturer=0x09)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ProcessorFromCodes(tt.cpuID, tt.manufacturer)
			if p.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", p.Kind(), tt.kind)
			}
			if p.CPUID() != tt.cpuID || p.ManufacturerCode() != tt.manufacturer {
				t.Errorf("raw bytes = (%d, %d), want (%d, %d)", p.CPUID(), p.ManufacturerCode(), tt.cpuID, tt.manufacturer)
			}
			if p.String() != tt.str {
				t.Errorf("String() = %q, want %q", p.String(), tt.str)
			}
		})
	}
}

func TestProcessorRawBytesTotal(t *testing.T) {
	for m := 0; m < 256; m++ {
		for c := 0; c < 256; c++ {
			p := ProcessorFromCodes(uint8(c), uint8(m))
			if p.CPUID() != uint8(c) || p.ManufacturerCode() != uint8(m) {
				t.Fatalf("(%d, %d) decoded to (%d, %d)", c, m, p.CPUID(), p.ManufacturerCode())
			}
		}
	}
}

func TestProcessorFromCodesChecked(t *testing.T) {
	p, err := ProcessorFromCodesChecked(uint8(ArmCortexA7), uint8(ProcessorARM))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a, ok := p.Arm(); !ok || a != ArmCortexA7 {
		t.Errorf("Arm() = %v, %v", a, ok)
	}

	tests := []struct {
		name         string
		cpuID        uint8
		manufacturer uint8
		space        Space
	}{
		{"undefined microchip part", 200, 1, SpaceProcessor},
		{"undefined manufacturer", 1, 9, SpaceProcessorManufacturer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProcessorFromCodesChecked(tt.cpuID, tt.manufacturer)
			var undef *UndefinedCodeError
			if !errors.As(err, &undef) {
				t.Fatalf("error = %v, want *UndefinedCodeError", err)
			}
			if undef.Space != tt.space {
				t.Errorf("Space = %s, want %s", undef.Space, tt.space)
			}
		})
	}
}

func TestProcessorFromCodesUnchecked(t *testing.T) {
	p := ProcessorFromCodesUnchecked(200, uint8(ProcessorMicrochip))
	mc, ok := p.Microchip()
	if !ok {
		t.Fatalf("Kind() = %v, want Microchip", p.Kind())
	}
	if mc.IsValid() {
		t.Error("Microchip 200 reported valid")
	}
	if !ProcessorFromCodesUnchecked(5, 77).IsUnknown() {
		t.Error("unregistered manufacturer not Unknown")
	}
	if !ProcessorFromCodesUnchecked(5, uint8(ProcessorAtmel)).IsAtmel() {
		t.Error("Atmel manufacturer not Atmel")
	}
}

func TestCPUManufacturerIDString(t *testing.T) {
	id := CPUManufacturerID{0x00, 0x61, 0x12, 0xAB}
	if got := id.String(); got != "006112AB" {
		t.Errorf("String() = %q", got)
	}
}

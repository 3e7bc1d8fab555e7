package cbus

import (
	"errors"
	"testing"
)

func TestSpacesAreBijective(t *testing.T) {
	for _, space := range Spaces() {
		t.Run(string(space), func(t *testing.T) {
			entries, ok := Entries(space)
			if !ok {
				t.Fatalf("Entries(%q) not found", space)
			}
			if len(entries) == 0 {
				t.Fatalf("space %q has no entries", space)
			}
			defined := make(map[uint8]Entry, len(entries))
			for i, e := range entries {
				if i > 0 && entries[i-1].Code >= e.Code {
					t.Errorf("entries not strictly ascending at %d: 0x%02X then 0x%02X", i, entries[i-1].Code, e.Code)
				}
				if e.Name == "" {
					t.Errorf("code 0x%02X has no name", e.Code)
				}
				defined[e.Code] = e
			}
			for c := 0; c < 256; c++ {
				code := uint8(c)
				got, err := Lookup(space, code)
				want, isDefined := defined[code]
				if isDefined {
					if err != nil {
						t.Fatalf("Lookup(0x%02X) error: %v", code, err)
					}
					if got != want {
						t.Errorf("Lookup(0x%02X) = %+v, want %+v", code, got, want)
					}
					byName, ok := LookupName(space, want.Name)
					if !ok || byName.Code != code {
						t.Errorf("LookupName(%q) = 0x%02X, %v; want 0x%02X", want.Name, byName.Code, ok, code)
					}
					continue
				}
				if !errors.Is(err, ErrUndefinedCode) {
					t.Fatalf("Lookup(0x%02X) error = %v, want ErrUndefinedCode", code, err)
				}
				var undef *UndefinedCodeError
				if !errors.As(err, &undef) || undef.Space != space || undef.Value != code {
					t.Errorf("Lookup(0x%02X) error = %#v", code, err)
				}
			}
		})
	}
}

func TestNamesUniqueWithinSpace(t *testing.T) {
	for _, space := range Spaces() {
		entries, _ := Entries(space)
		seen := make(map[string]uint8)
		for _, e := range entries {
			if prev, dup := seen[e.Name]; dup {
				t.Errorf("%s: name %q used by 0x%02X and 0x%02X", space, e.Name, prev, e.Code)
			}
			seen[e.Name] = e.Code
		}
	}
}

func TestLookupUnknownSpace(t *testing.T) {
	if _, err := Lookup("nope", 1); err == nil {
		t.Fatal("expected error for unknown space")
	} else if errors.Is(err, ErrUndefinedCode) {
		t.Errorf("unknown space should not report an undefined code: %v", err)
	}
	if IsKnownSpace("nope") {
		t.Error("IsKnownSpace(nope) = true")
	}
	if !IsKnownSpace(SpaceOpCode) {
		t.Error("IsKnownSpace(opcode) = false")
	}
	if _, ok := LookupName("nope", "ACK"); ok {
		t.Error("LookupName on unknown space succeeded")
	}
}

// Every typed FromCode function is checked against its space, so a typed
// wrapper wired to the wrong table shows up here.
func TestTypedConversionsMatchSpaces(t *testing.T) {
	conversions := []struct {
		space Space
		check func(uint8) (uint8, error)
		valid func(uint8) bool
	}{
		{SpaceOpCode, func(c uint8) (uint8, error) { v, err := OpCodeFromCode(c); return v.Code(), err }, func(c uint8) bool { return OpCodeFromCodeUnchecked(c).IsValid() }},
		{SpaceServiceType, func(c uint8) (uint8, error) { v, err := ServiceTypeFromCode(c); return v.Code(), err }, func(c uint8) bool { return ServiceTypeFromCodeUnchecked(c).IsValid() }},
		{SpaceModeParam, func(c uint8) (uint8, error) { v, err := ModeParamFromCode(c); return v.Code(), err }, func(c uint8) bool { return ModeParamFromCodeUnchecked(c).IsValid() }},
		{SpaceGRSPCode, func(c uint8) (uint8, error) { v, err := GRSPCodeFromCode(c); return v.Code(), err }, func(c uint8) bool { return GRSPCodeFromCodeUnchecked(c).IsValid() }},
		{SpaceErrorCode, func(c uint8) (uint8, error) { v, err := ErrorCodeFromCode(c); return v.Code(), err }, func(c uint8) bool { return ErrorCodeFromCodeUnchecked(c).IsValid() }},
		{SpaceCommandError, func(c uint8) (uint8, error) { v, err := CommandErrorFromCode(c); return v.Code(), err }, func(c uint8) bool { return CommandErrorFromCodeUnchecked(c).IsValid() }},
		{SpaceParam, func(c uint8) (uint8, error) { v, err := ParamFromCode(c); return v.Code(), err }, func(c uint8) bool { return ParamFromCodeUnchecked(c).IsValid() }},
		{SpacePICParamOffset, func(c uint8) (uint8, error) { v, err := PICParamOffsetFromCode(c); return v.Code(), err }, func(c uint8) bool { return PICParamOffsetFromCodeUnchecked(c).IsValid() }},
		{SpaceBusType, func(c uint8) (uint8, error) { v, err := BusTypeFromCode(c); return v.Code(), err }, func(c uint8) bool { return BusTypeFromCodeUnchecked(c).IsValid() }},
		{SpaceManufacturer, func(c uint8) (uint8, error) { v, err := ManufacturerFromCode(c); return v.Code(), err }, func(c uint8) bool { return ManufacturerFromCodeUnchecked(c).IsValid() }},
		{SpaceProcessorManufacturer, func(c uint8) (uint8, error) { v, err := ProcessorManufacturerFromCode(c); return v.Code(), err }, func(c uint8) bool { return ProcessorManufacturerFromCodeUnchecked(c).IsValid() }},
		{SpaceMicrochipProcessor, func(c uint8) (uint8, error) { v, err := MicrochipProcessorFromCode(c); return v.Code(), err }, func(c uint8) bool { return MicrochipProcessorFromCodeUnchecked(c).IsValid() }},
		{SpaceArmProcessor, func(c uint8) (uint8, error) { v, err := ArmProcessorFromCode(c); return v.Code(), err }, func(c uint8) bool { return ArmProcessorFromCodeUnchecked(c).IsValid() }},
		{SpaceMergModuleType, func(c uint8) (uint8, error) { v, err := MergModuleTypeFromCode(c); return v.Code(), err }, func(c uint8) bool { return MergModuleTypeFromCodeUnchecked(c).IsValid() }},
		{SpaceSprogModuleType, func(c uint8) (uint8, error) { v, err := SprogModuleTypeFromCode(c); return v.Code(), err }, func(c uint8) bool { return SprogModuleTypeFromCodeUnchecked(c).IsValid() }},
		{SpaceRocRailModuleType, func(c uint8) (uint8, error) { v, err := RocRailModuleTypeFromCode(c); return v.Code(), err }, func(c uint8) bool { return RocRailModuleTypeFromCodeUnchecked(c).IsValid() }},
		{SpaceSpectrumModuleType, func(c uint8) (uint8, error) { v, err := SpectrumModuleTypeFromCode(c); return v.Code(), err }, func(c uint8) bool { return SpectrumModuleTypeFromCodeUnchecked(c).IsValid() }},
		{SpaceSysPixieModuleType, func(c uint8) (uint8, error) { v, err := SysPixieModuleTypeFromCode(c); return v.Code(), err }, func(c uint8) bool { return SysPixieModuleTypeFromCodeUnchecked(c).IsValid() }},
		{SpaceStmodMode, func(c uint8) (uint8, error) { v, err := StmodModeFromCode(c); return v.Code(), err }, func(c uint8) bool { return StmodModeFromCodeUnchecked(c).IsValid() }},
		{SpaceSStat, func(c uint8) (uint8, error) { v, err := SStatFromCode(c); return v.Code(), err }, func(c uint8) bool { return SStatFromCodeUnchecked(c).IsValid() }},
		{SpaceCabSigAspect1, func(c uint8) (uint8, error) { v, err := CabSigAspect1FromCode(c); return v.Code(), err }, func(c uint8) bool { return CabSigAspect1FromCodeUnchecked(c).IsValid() }},
		{SpaceCabSigAspect2, func(c uint8) (uint8, error) { v, err := CabSigAspect2FromCode(c); return v.Code(), err }, func(c uint8) bool { return CabSigAspect2FromCodeUnchecked(c).IsValid() }},
		{SpaceCabDatOpcode, func(c uint8) (uint8, error) { v, err := CabDatOpcodeFromCode(c); return v.Code(), err }, func(c uint8) bool { return CabDatOpcodeFromCodeUnchecked(c).IsValid() }},
	}
	if len(conversions) != len(Spaces()) {
		t.Fatalf("%d conversions tested, %d spaces registered", len(conversions), len(Spaces()))
	}
	for _, conv := range conversions {
		t.Run(string(conv.space), func(t *testing.T) {
			for c := 0; c < 256; c++ {
				code := uint8(c)
				_, lookupErr := Lookup(conv.space, code)
				got, err := conv.check(code)
				if (err == nil) != (lookupErr == nil) {
					t.Fatalf("0x%02X: typed error %v, lookup error %v", code, err, lookupErr)
				}
				if conv.valid(code) != (err == nil) {
					t.Errorf("0x%02X: IsValid disagrees with FromCode", code)
				}
				if err == nil && got != code {
					t.Errorf("0x%02X: round trip gave 0x%02X", code, got)
				}
				if err != nil {
					var undef *UndefinedCodeError
					if !errors.As(err, &undef) || undef.Space != conv.space {
						t.Errorf("0x%02X: error %v does not name space %s", code, err, conv.space)
					}
				}
			}
		})
	}
}

func TestUndefinedCodeError(t *testing.T) {
	_, err := ErrorCodeFromCode(0)
	if err == nil {
		t.Fatal("expected error for ERR code 0")
	}
	if got, want := err.Error(), "cbus: undefined error code 0x00"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUndefinedCode) {
		t.Error("errors.Is(err, ErrUndefinedCode) = false")
	}
}

func TestUnknownNames(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"opcode", OpCodeFromCodeUnchecked(0x0B).String(), "Unknown(0x0B)"},
		{"grsp", GRSPCodeFromCodeUnchecked(0x01).String(), "Unknown(0x01)"},
		{"manufacturer", ManufacturerFromCodeUnchecked(0xFF).String(), "Unknown(0xFF)"},
		{"bus", BusTypeFromCodeUnchecked(0).String(), "Unknown(0x00)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestTypedLists(t *testing.T) {
	if got := len(OpCodes()); got != 143 {
		t.Errorf("len(OpCodes()) = %d, want 143", got)
	}
	if got := len(Manufacturers()); got != 8 {
		t.Errorf("len(Manufacturers()) = %d, want 8", got)
	}
	ops := OpCodes()
	ops[0] = 0xFE
	if OpCodes()[0] != OpACK {
		t.Error("OpCodes returned shared backing array")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		space   Space
		in      string
		want    uint8
		wantErr bool
	}{
		{SpaceOpCode, "0x90", 0x90, false},
		{SpaceOpCode, "144", 0x90, false},
		{SpaceOpCode, "acon", 0x90, false},
		{SpaceManufacturer, "MERG", 165, false},
		{SpaceManufacturer, " 165 ", 165, false},
		{SpaceOpCode, "010", 0x0A, false},
		{SpaceOpCode, "090", 0x5A, false},
		{SpaceOpCode, "0X5a", 0x5A, false},
		{SpaceOpCode, "0b1", 0, true},
		{SpaceOpCode, "0x2F", 0, true},
		{SpaceOpCode, "256", 0, true},
		{SpaceOpCode, "nope", 0, true},
		{"nope", "ACK", 0, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.space, tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%s, %q) error = %v", tt.space, tt.in, err)
			continue
		}
		if !tt.wantErr && got.Code != tt.want {
			t.Errorf("Parse(%s, %q) = 0x%02X, want 0x%02X", tt.space, tt.in, got.Code, tt.want)
		}
	}
}

func TestParseByte(t *testing.T) {
	tests := []struct {
		in      string
		want    uint8
		wantErr bool
	}{
		{"0xff", 255, false},
		{"0XFF", 255, false},
		{"010", 10, false},
		{"090", 90, false},
		{" 7 ", 7, false},
		{"0", 0, false},
		{"0x100", 0, true},
		{"256", 0, true},
		{"0x", 0, true},
		{"0b101", 0, true},
		{"0o17", 0, true},
		{"-1", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseByte(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseByte(%q) error = %v", tt.in, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseByte(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

package cbus

import "testing"

func TestParamFlagsBits(t *testing.T) {
	tests := []struct {
		flag ParamFlags
		code uint8
	}{
		{FlagEventsUnsupported, 0x00},
		{FlagEventConsumer, 0x01},
		{FlagEventProducer, 0x02},
		{FlagEventCombi, 0x03},
		{FlagFLiM, 0x04},
		{FlagNormalMode, 0x04},
		{FlagBootloader, 0x08},
		{FlagConsumeOwnEvents, 0x10},
		{FlagLearnMode, 0x20},
		{FlagVLCB, 0x40},
		{FlagServiceDiscovery, 0x40},
	}
	for _, tt := range tests {
		if tt.flag.Code() != tt.code {
			t.Errorf("%v.Code() = 0x%02X, want 0x%02X", tt.flag, tt.flag.Code(), tt.code)
		}
	}
}

func TestParamFlagsFromCodePreservesEveryByte(t *testing.T) {
	for c := 0; c < 256; c++ {
		if got := ParamFlagsFromCode(uint8(c)).Code(); got != uint8(c) {
			t.Fatalf("ParamFlagsFromCode(0x%02X).Code() = 0x%02X", c, got)
		}
	}
}

func TestParamFlagsSetOperations(t *testing.T) {
	f := FlagEventConsumer.Union(FlagLearnMode)
	if !f.Contains(FlagEventConsumer) || !f.Contains(FlagLearnMode) {
		t.Errorf("Union = %v", f)
	}
	if f.Contains(FlagEventCombi) {
		t.Error("consumer-only set contains EventCombi")
	}
	if got := FlagEventCombi.Intersect(FlagEventProducer | FlagBootloader); got != FlagEventProducer {
		t.Errorf("Intersect = %v", got)
	}
	if got := FlagEventCombi.Difference(FlagEventConsumer); got != FlagEventProducer {
		t.Errorf("Difference = %v", got)
	}
	if !f.Contains(FlagEventsUnsupported) {
		t.Error("every set contains the empty set")
	}
}

func TestParamFlagsAliases(t *testing.T) {
	f := ParamFlagsFromCode(0x44)
	if !f.InFLiM() || !f.InNormalMode() {
		t.Error("bit 2 not reported under both names")
	}
	if !f.IsVLCB() || !f.SupportsServiceDiscovery() {
		t.Error("bit 6 not reported under both names")
	}
	g := ParamFlagsFromCode(0x3B)
	if g.InFLiM() || g.InNormalMode() || g.IsVLCB() || g.SupportsServiceDiscovery() {
		t.Errorf("0x3B reported alias bits: %v", g)
	}
}

func TestParamFlagsString(t *testing.T) {
	tests := []struct {
		code uint8
		want string
	}{
		{0x00, "EventsUnsupported"},
		{0x03, "EventConsumer|EventProducer"},
		{0x04, "NormalMode"},
		{0x48, "Bootloader|VLCB"},
		{0x80, "Unknown(0x80)"},
		{0xFF, "EventConsumer|EventProducer|NormalMode|Bootloader|ConsumeOwnEvents|LearnMode|VLCB|Unknown(0x80)"},
	}
	for _, tt := range tests {
		if got := ParamFlagsFromCode(tt.code).String(); got != tt.want {
			t.Errorf("0x%02X: String() = %q, want %q", tt.code, got, tt.want)
		}
	}
	if ParamFlagsFromCode(0x81).Reserved() != 0x80 {
		t.Error("Reserved() lost bit 7")
	}
}

func TestParamFlagBits(t *testing.T) {
	bits := ParamFlagBits()
	if len(bits) != 7 {
		t.Fatalf("len = %d, want 7", len(bits))
	}
	var all ParamFlags
	for _, b := range bits {
		if b.Flag&(b.Flag-1) != 0 {
			t.Errorf("%s is not a single bit", b.Name)
		}
		all |= b.Flag
	}
	if all != 0x7F {
		t.Errorf("named bits = 0x%02X, want 0x7F", uint8(all))
	}
}

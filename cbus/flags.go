package cbus

import "strings"

// ParamFlags is the node flags byte (parameter 8).
//
// Any byte is a legal flag set. Bits without a name are reserved and are
// preserved as-is so that relayed parameter blocks round trip exactly.
type ParamFlags uint8

const (
	FlagEventsUnsupported ParamFlags = 0
	FlagEventConsumer     ParamFlags = 1 << 0
	FlagEventProducer     ParamFlags = 1 << 1
	FlagEventCombi        ParamFlags = FlagEventConsumer | FlagEventProducer

	// Bit 2 is FLiM on CBUS nodes and Normal mode on VLCB nodes. Which name
	// applies depends on the protocol generation the node speaks.
	FlagFLiM       ParamFlags = 1 << 2
	FlagNormalMode ParamFlags = FlagFLiM

	FlagBootloader       ParamFlags = 1 << 3
	FlagConsumeOwnEvents ParamFlags = 1 << 4
	FlagLearnMode        ParamFlags = 1 << 5

	// Bit 6 was introduced as service discovery support and later renamed.
	FlagVLCB             ParamFlags = 1 << 6
	FlagServiceDiscovery ParamFlags = FlagVLCB // deprecated in favour of FlagVLCB

	flagReserved ParamFlags = 1 << 7
)

// flagBits names each single bit once, using the current protocol name.
var flagBits = []struct {
	flag  ParamFlags
	name  string
	alias string
	desc  string
}{
	{FlagEventConsumer, "EventConsumer", "", "Module is a consumer of events"},
	{FlagEventProducer, "EventProducer", "", "Module is a producer of events"},
	{FlagFLiM, "NormalMode", "FLiM", "Module is in Normal mode (VLCB) / FLiM (CBUS)"},
	{FlagBootloader, "Bootloader", "", "Module supports the FCU bootloader protocol"},
	{FlagConsumeOwnEvents, "ConsumeOwnEvents", "", "Module can consume its own events"},
	{FlagLearnMode, "LearnMode", "", "Module is in learn mode"},
	{FlagVLCB, "VLCB", "ServiceDiscovery", "Module is VLCB compatible (formerly: supports Service Discovery)"},
}

// ParamFlagsFromCode converts a flags byte. It never fails.
func ParamFlagsFromCode(c uint8) ParamFlags {
	return ParamFlags(c)
}

func (f ParamFlags) Code() uint8 { return uint8(f) }

func (f ParamFlags) Union(o ParamFlags) ParamFlags      { return f | o }
func (f ParamFlags) Intersect(o ParamFlags) ParamFlags  { return f & o }
func (f ParamFlags) Difference(o ParamFlags) ParamFlags { return f &^ o }

// Contains reports whether every bit of o is set in f.
func (f ParamFlags) Contains(o ParamFlags) bool {
	return f&o == o
}

// Reserved returns the bits with no assigned meaning.
func (f ParamFlags) Reserved() ParamFlags {
	return f & flagReserved
}

// InFLiM and InNormalMode test the same bit under its CBUS and VLCB names.
func (f ParamFlags) InFLiM() bool       { return f.Contains(FlagFLiM) }
func (f ParamFlags) InNormalMode() bool { return f.Contains(FlagNormalMode) }

// IsVLCB and SupportsServiceDiscovery test the same bit.
func (f ParamFlags) IsVLCB() bool                   { return f.Contains(FlagVLCB) }
func (f ParamFlags) SupportsServiceDiscovery() bool { return f.Contains(FlagServiceDiscovery) }

// String lists the set bits joined with "|", e.g. "EventConsumer|LearnMode".
// Reserved bits are rendered as hex. The empty set is "EventsUnsupported".
func (f ParamFlags) String() string {
	if f == FlagEventsUnsupported {
		return "EventsUnsupported"
	}
	var parts []string
	for _, b := range flagBits {
		if f.Contains(b.flag) {
			parts = append(parts, b.name)
		}
	}
	if r := f.Reserved(); r != 0 {
		parts = append(parts, unknownName(uint8(r)))
	}
	return strings.Join(parts, "|")
}

// ParamFlagBits describes each named bit, for tooling.
func ParamFlagBits() []FlagBit {
	out := make([]FlagBit, 0, len(flagBits))
	for _, b := range flagBits {
		out = append(out, FlagBit{Flag: b.flag, Name: b.name, Alias: b.alias, Description: b.desc})
	}
	return out
}

// FlagBit is the exported description of one named flag bit.
type FlagBit struct {
	Flag        ParamFlags
	Name        string
	Alias       string
	Description string
}

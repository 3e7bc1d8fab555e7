package cbus

import (
	"fmt"
	"strconv"
	"strings"
)

// spaceTable is the untyped view of a codeTable used for lookups by name.
type spaceTable interface {
	spaceName() Space
	lookup(c uint8) (Entry, bool)
	lookupName(name string) (Entry, bool)
	entryList() []Entry
}

// spaceTables lists every closed code space in display order.
var spaceTables = []spaceTable{
	opcodeTable,
	serviceTypeTable,
	modeParamTable,
	grspTable,
	errorCodeTable,
	commandErrorTable,
	paramTable,
	picParamOffsetTable,
	busTypeTable,
	manufacturerTable,
	processorManufacturerTable,
	microchipTable,
	armTable,
	mergModuleTable,
	sprogModuleTable,
	rocRailModuleTable,
	spectrumModuleTable,
	sysPixieModuleTable,
	stmodModeTable,
	sstatTable,
	cabSigAspect1Table,
	cabSigAspect2Table,
	cabDatOpcodeTable,
}

func findSpace(space Space) (spaceTable, bool) {
	for _, t := range spaceTables {
		if t.spaceName() == space {
			return t, true
		}
	}
	return nil, false
}

// Spaces returns the names of all closed code spaces.
func Spaces() []Space {
	out := make([]Space, 0, len(spaceTables))
	for _, t := range spaceTables {
		out = append(out, t.spaceName())
	}
	return out
}

// IsKnownSpace reports whether space names a closed code space.
func IsKnownSpace(space Space) bool {
	_, ok := findSpace(space)
	return ok
}

// Entries lists the defined codes of a space in ascending order.
func Entries(space Space) ([]Entry, bool) {
	t, ok := findSpace(space)
	if !ok {
		return nil, false
	}
	return t.entryList(), true
}

// Lookup is the checked conversion for callers that only know the space at
// run time, such as tooling.
func Lookup(space Space, code uint8) (Entry, error) {
	t, ok := findSpace(space)
	if !ok {
		return Entry{}, fmt.Errorf("cbus: unknown code space %q", space)
	}
	e, ok := t.lookup(code)
	if !ok {
		return Entry{}, &UndefinedCodeError{Space: space, Value: code}
	}
	return e, nil
}

// LookupName finds a code by its protocol mnemonic, ignoring case.
func LookupName(space Space, name string) (Entry, bool) {
	t, ok := findSpace(space)
	if !ok {
		return Entry{}, false
	}
	return t.lookupName(name)
}

// Parse resolves s in space. s may be decimal, 0x-prefixed hex, or a
// mnemonic.
func Parse(space Space, s string) (Entry, error) {
	s = strings.TrimSpace(s)
	if v, err := ParseByte(s); err == nil {
		return Lookup(space, v)
	}
	if !IsKnownSpace(space) {
		return Entry{}, fmt.Errorf("cbus: unknown code space %q", space)
	}
	if e, ok := LookupName(space, s); ok {
		return e, nil
	}
	return Entry{}, fmt.Errorf("cbus: %q is neither a byte value nor a %s mnemonic", s, space)
}

// ParseByte parses decimal or 0x-prefixed hex into a byte. Leading zeros
// are decimal.
func ParseByte(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

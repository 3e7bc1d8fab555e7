package cbus

import (
	"errors"
	"fmt"
	"strings"
)

// Space names a closed code space. The same byte value means different things
// in different spaces, so every decoded value is tied to exactly one of these.
type Space string

const (
	SpaceOpCode                Space = "opcode"
	SpaceServiceType           Space = "service_type"
	SpaceModeParam             Space = "mode"
	SpaceGRSPCode              Space = "grsp"
	SpaceErrorCode             Space = "error"
	SpaceCommandError          Space = "cmderr"
	SpaceParam                 Space = "param"
	SpacePICParamOffset        Space = "pic_param_offset"
	SpaceBusType               Space = "bus_type"
	SpaceManufacturer          Space = "manufacturer"
	SpaceProcessorManufacturer Space = "processor_manufacturer"
	SpaceMicrochipProcessor    Space = "microchip_processor"
	SpaceArmProcessor          Space = "arm_processor"
	SpaceMergModuleType        Space = "merg_module_type"
	SpaceSprogModuleType       Space = "sprog_module_type"
	SpaceRocRailModuleType     Space = "rocrail_module_type"
	SpaceSpectrumModuleType    Space = "spectrum_module_type"
	SpaceSysPixieModuleType    Space = "syspixie_module_type"
	SpaceStmodMode             Space = "stmod_mode"
	SpaceSStat                 Space = "sstat"
	SpaceCabSigAspect1         Space = "cabsig_aspect1"
	SpaceCabSigAspect2         Space = "cabsig_aspect2"
	SpaceCabDatOpcode          Space = "cabdat_opcode"

	// SpaceModuleType is the composite vendor module-type space. It has no
	// table of its own; errors from ModuleTypeFromCodeChecked carry it.
	SpaceModuleType Space = "module_type"
	// SpaceProcessor is the composite processor identity space.
	SpaceProcessor Space = "processor"
)

// ErrUndefinedCode is matched by every *UndefinedCodeError.
var ErrUndefinedCode = errors.New("cbus: undefined code")

// UndefinedCodeError reports a byte with no assigned meaning in a code space.
type UndefinedCodeError struct {
	Space Space
	Value uint8
}

func (e *UndefinedCodeError) Error() string {
	return fmt.Sprintf("cbus: undefined %s code 0x%02X", e.Space, e.Value)
}

// Is reports whether target is ErrUndefinedCode.
func (e *UndefinedCodeError) Is(target error) bool {
	return target == ErrUndefinedCode
}

// Entry is the exported description of one defined code.
type Entry struct {
	Code        uint8
	Name        string
	Description string
}

// entry is the static name and description of a defined code.
type entry struct {
	name string
	desc string
}

// codeTable backs one closed code space. Tables are built once from map
// literals keyed by typed constants, so a duplicated value does not compile.
// After construction a table is read-only and safe for concurrent use.
type codeTable[T ~uint8] struct {
	space   Space
	entries [256]entry
	defined [256]bool
	values  []T
}

func newCodeTable[T ~uint8](space Space, defs map[T]entry) *codeTable[T] {
	t := &codeTable[T]{space: space, values: make([]T, 0, len(defs))}
	for v, e := range defs {
		t.entries[v] = e
		t.defined[v] = true
	}
	for c := 0; c < len(t.defined); c++ {
		if t.defined[c] {
			t.values = append(t.values, T(c))
		}
	}
	return t
}

func (t *codeTable[T]) valid(v T) bool {
	return t.defined[v]
}

func (t *codeTable[T]) name(v T) string {
	if !t.defined[v] {
		return unknownName(uint8(v))
	}
	return t.entries[v].name
}

func (t *codeTable[T]) desc(v T) string {
	return t.entries[v].desc
}

// fromCode is the checked conversion shared by every code space.
func (t *codeTable[T]) fromCode(c uint8) (T, error) {
	if !t.defined[c] {
		return 0, &UndefinedCodeError{Space: t.space, Value: c}
	}
	return T(c), nil
}

// fromName matches the protocol mnemonic, ignoring case.
func (t *codeTable[T]) fromName(name string) (T, bool) {
	name = strings.TrimSpace(name)
	for _, v := range t.values {
		if strings.EqualFold(t.entries[v].name, name) {
			return v, true
		}
	}
	return 0, false
}

func (t *codeTable[T]) list() []T {
	out := make([]T, len(t.values))
	copy(out, t.values)
	return out
}

func (t *codeTable[T]) spaceName() Space {
	return t.space
}

func (t *codeTable[T]) lookup(c uint8) (Entry, bool) {
	if !t.defined[c] {
		return Entry{}, false
	}
	return Entry{Code: c, Name: t.entries[c].name, Description: t.entries[c].desc}, true
}

func (t *codeTable[T]) lookupName(name string) (Entry, bool) {
	v, ok := t.fromName(name)
	if !ok {
		return Entry{}, false
	}
	return t.lookup(uint8(v))
}

func (t *codeTable[T]) entryList() []Entry {
	out := make([]Entry, 0, len(t.values))
	for _, v := range t.values {
		e, _ := t.lookup(uint8(v))
		out = append(out, e)
	}
	return out
}

func unknownName(c uint8) string {
	return fmt.Sprintf("Unknown(0x%02X)", c)
}

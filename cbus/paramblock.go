package cbus

import (
	"encoding/binary"
	"fmt"
)

// ParamBlockLen is the number of parameters returned by PARAN for indices
// 1 through 20.
const ParamBlockLen = 20

// ParameterBlock holds parameters 1 to 20 of a module. Parameter i is stored
// at offset i-1; parameter 0, the count, is not stored.
type ParameterBlock [ParamBlockLen]byte

// ModuleInfo is the input to NewParameterBlock.
type ModuleInfo struct {
	Manufacturer      Manufacturer
	ModuleType        ModuleType
	Version           ModuleVersion
	MaxEvents         uint8
	EVsPerEvent       uint8
	NVCount           uint8
	Flags             ParamFlags
	Processor         Processor
	BusType           BusType
	LoadAddress       uint32
	CPUManufacturerID CPUManufacturerID
}

// NewParameterBlock lays out info as a module would report it.
func NewParameterBlock(info ModuleInfo) ParameterBlock {
	var b ParameterBlock
	b.set(ParamManufacturer, info.Manufacturer.Code())
	b.set(ParamMinorVersion, byte(info.Version.Minor()))
	b.set(ParamModuleType, info.ModuleType.Code())
	b.set(ParamMaxEvents, info.MaxEvents)
	b.set(ParamEVsPerEvent, info.EVsPerEvent)
	b.set(ParamNVCount, info.NVCount)
	b.set(ParamMajorVersion, info.Version.Major())
	b.set(ParamNodeFlags, info.Flags.Code())
	b.set(ParamCPUID, info.Processor.CPUID())
	b.set(ParamBusType, info.BusType.Code())
	binary.LittleEndian.PutUint32(b[ParamLoadAddress-1:], info.LoadAddress)
	copy(b[ParamCPUManufacturerID-1:], info.CPUManufacturerID[:])
	b.set(ParamCPUManufacturer, info.Processor.ManufacturerCode())
	b.set(ParamBetaVersion, info.Version.Beta())
	return b
}

// ParameterBlockFromBytes copies a block read from a module. Short input is
// zero padded.
func ParameterBlockFromBytes(p []byte) (ParameterBlock, error) {
	var b ParameterBlock
	if len(p) > ParamBlockLen {
		return b, fmt.Errorf("cbus: parameter block has %d bytes, want at most %d", len(p), ParamBlockLen)
	}
	copy(b[:], p)
	return b, nil
}

func (b *ParameterBlock) set(p Param, v byte) {
	b[p-1] = v
}

// Param returns the byte at a parameter index. Index 0 yields the count.
func (b ParameterBlock) Param(idx uint8) (byte, bool) {
	switch {
	case idx == 0:
		return ParamBlockLen, true
	case int(idx) > ParamBlockLen:
		return 0, false
	default:
		return b[idx-1], true
	}
}

func (b ParameterBlock) get(p Param) byte { return b[p-1] }

func (b ParameterBlock) Manufacturer() Manufacturer {
	return ManufacturerFromCodeUnchecked(b.get(ParamManufacturer))
}

// ModuleType decodes parameter 3 in the namespace of parameter 1.
func (b ParameterBlock) ModuleType() ModuleType {
	return ModuleTypeFromCode(b.Manufacturer(), b.get(ParamModuleType))
}

func (b ParameterBlock) Version() (ModuleVersion, error) {
	return ModuleVersionFromParams(b.get(ParamMajorVersion), b.get(ParamMinorVersion), b.get(ParamBetaVersion))
}

func (b ParameterBlock) Flags() ParamFlags {
	return ParamFlagsFromCode(b.get(ParamNodeFlags))
}

func (b ParameterBlock) Processor() Processor {
	return ProcessorFromCodes(b.get(ParamCPUID), b.get(ParamCPUManufacturer))
}

func (b ParameterBlock) BusType() (BusType, error) {
	return BusTypeFromCode(b.get(ParamBusType))
}

func (b ParameterBlock) MaxEvents() uint8   { return b.get(ParamMaxEvents) }
func (b ParameterBlock) EVsPerEvent() uint8 { return b.get(ParamEVsPerEvent) }
func (b ParameterBlock) NVCount() uint8     { return b.get(ParamNVCount) }

func (b ParameterBlock) LoadAddress() uint32 {
	return binary.LittleEndian.Uint32(b[ParamLoadAddress-1:])
}

func (b ParameterBlock) CPUManufacturerID() CPUManufacturerID {
	var id CPUManufacturerID
	copy(id[:], b[ParamCPUManufacturerID-1:])
	return id
}

// Bytes returns a copy of the block.
func (b ParameterBlock) Bytes() []byte {
	out := make([]byte, ParamBlockLen)
	copy(out, b[:])
	return out
}

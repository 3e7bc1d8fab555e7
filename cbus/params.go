package cbus

// Param is a parameter index as read with RQNPN and returned in PARAN.
// Index 0 returns the parameter count; index i > 0 is stored at offset i-1
// of the parameter block.
type Param uint8

const (
	ParamCount             Param = 0
	ParamManufacturer      Param = 1
	ParamMinorVersion      Param = 2 // single alphabetic character
	ParamModuleType        Param = 3
	ParamMaxEvents         Param = 4
	ParamEVsPerEvent       Param = 5
	ParamNVCount           Param = 6
	ParamMajorVersion      Param = 7
	ParamNodeFlags         Param = 8
	ParamCPUID             Param = 9
	ParamBusType           Param = 10
	ParamLoadAddress       Param = 11 // 4 bytes
	ParamCPUManufacturerID Param = 15 // 4 bytes, read from the chip at run time
	ParamCPUManufacturer   Param = 19
	ParamBetaVersion       Param = 20
)

var paramTable = newCodeTable(SpaceParam, map[Param]entry{
	ParamCount:             {"ModuleParameterCount", "Number of parameters"},
	ParamManufacturer:      {"ModuleManufacturer", "Manufacturer id"},
	ParamMinorVersion:      {"MinorVersion", "Minor version (single alphabetic character)"},
	ParamModuleType:        {"ModuleType", "Module type code"},
	ParamMaxEvents:         {"MaxEventCount", "Number of events supported"},
	ParamEVsPerEvent:       {"EventVariableCount", "Event variables per event"},
	ParamNVCount:           {"NodeVariableCount", "Number of Node variables"},
	ParamMajorVersion:      {"MajorVersion", "Major version (numeric)"},
	ParamNodeFlags:         {"NodeFlags", "Node flags"},
	ParamCPUID:             {"CpuId", "Processor type"},
	ParamBusType:           {"BusType", "Bus type"},
	ParamLoadAddress:       {"LoadAddress", "Load address, 4 bytes"},
	ParamCPUManufacturerID: {"CpuManufacturerId", "CPU manufacturer's id as read from the chip config space, 4 bytes (not included in checksum)"},
	ParamCPUManufacturer:   {"CpuManufacturer", "CPU manufacturer code"},
	ParamBetaVersion:       {"BetaVersion", "Beta revision (numeric), or 0 if release"},
})

// ParamFromCode validates a parameter index. Indices inside the multi-byte
// load address and CPU manufacturer id fields are not named and fail.
func ParamFromCode(c uint8) (Param, error) {
	return paramTable.fromCode(c)
}

// ParamFromCodeUnchecked trusts that c is a named parameter index.
func ParamFromCodeUnchecked(c uint8) Param {
	return Param(c)
}

// Params returns every named parameter index.
func Params() []Param { return paramTable.list() }

func (p Param) Code() uint8         { return uint8(p) }
func (p Param) IsValid() bool       { return paramTable.valid(p) }
func (p Param) String() string      { return paramTable.name(p) }
func (p Param) Description() string { return paramTable.desc(p) }

// Width returns the number of parameter bytes the index spans.
func (p Param) Width() int {
	switch p {
	case ParamLoadAddress, ParamCPUManufacturerID:
		return 4
	default:
		return 1
	}
}

// PICParamOffset locates values stored above the parameter block in PIC
// firmware images. They are not returned by PARAN but are present in the hex
// file for the FCU.
type PICParamOffset uint8

const (
	PICParamCount    PICParamOffset = 24 // number of parameters implemented
	PICParamName     PICParamOffset = 26 // 4 byte address of the module type name
	PICParamChecksum PICParamOffset = 30
)

var picParamOffsetTable = newCodeTable(SpacePICParamOffset, map[PICParamOffset]entry{
	PICParamCount:    {"COUNT", "Number of parameters implemented"},
	PICParamName:     {"NAME", "4 byte Address of Module type name, up to 8 characters null terminated"},
	PICParamChecksum: {"CKSUM", "Checksum word at end of parameters"},
})

func PICParamOffsetFromCode(c uint8) (PICParamOffset, error) {
	return picParamOffsetTable.fromCode(c)
}

func PICParamOffsetFromCodeUnchecked(c uint8) PICParamOffset {
	return PICParamOffset(c)
}

func (o PICParamOffset) Code() uint8         { return uint8(o) }
func (o PICParamOffset) IsValid() bool       { return picParamOffsetTable.valid(o) }
func (o PICParamOffset) String() string      { return picParamOffsetTable.name(o) }
func (o PICParamOffset) Description() string { return picParamOffsetTable.desc(o) }

// BusType identifies the bus a module is attached to.
type BusType uint8

const (
	BusCAN      BusType = 1
	BusEthernet BusType = 2
	BusMiWi     BusType = 3
	BusUSB      BusType = 4
)

var busTypeTable = newCodeTable(SpaceBusType, map[BusType]entry{
	BusCAN:      {"CAN", "CAN bus"},
	BusEthernet: {"Ethernet", "Ethernet"},
	BusMiWi:     {"MiWi", "MiWi wireless"},
	BusUSB:      {"USB", "USB"},
})

// BusTypeFromCode validates a bus type byte.
func BusTypeFromCode(c uint8) (BusType, error) {
	return busTypeTable.fromCode(c)
}

// BusTypeFromCodeUnchecked trusts that c is a defined bus type.
func BusTypeFromCodeUnchecked(c uint8) BusType {
	return BusType(c)
}

func BusTypes() []BusType { return busTypeTable.list() }

func (b BusType) Code() uint8         { return uint8(b) }
func (b BusType) IsValid() bool       { return busTypeTable.valid(b) }
func (b BusType) String() string      { return busTypeTable.name(b) }
func (b BusType) Description() string { return busTypeTable.desc(b) }

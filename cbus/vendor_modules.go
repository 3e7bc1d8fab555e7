package cbus

// MergModuleType is a module type in the MERG namespace.
type MergModuleType uint8

func MergModuleTypeFromCode(c uint8) (MergModuleType, error) {
	return mergModuleTable.fromCode(c)
}

// MergModuleTypeFromCodeUnchecked trusts that c is a defined MERG module type.
func MergModuleTypeFromCodeUnchecked(c uint8) MergModuleType {
	return MergModuleType(c)
}

func MergModuleTypes() []MergModuleType { return mergModuleTable.list() }

func (t MergModuleType) Code() uint8         { return uint8(t) }
func (t MergModuleType) IsValid() bool       { return mergModuleTable.valid(t) }
func (t MergModuleType) String() string      { return mergModuleTable.name(t) }
func (t MergModuleType) Description() string { return mergModuleTable.desc(t) }

// SprogModuleType is a module type in the SPROG namespace.
type SprogModuleType uint8

const (
	SprogCANPiSPRG3 SprogModuleType = 1
	SprogCANSPROG3P SprogModuleType = 2
	SprogCANSPROG   SprogModuleType = 3
	SprogCANSBOOST  SprogModuleType = 4
	SprogCANPiSPRGP SprogModuleType = 5
	SprogCANSOLNOID SprogModuleType = 8
	SprogCANSERVOIO SprogModuleType = 50
	SprogCANISB     SprogModuleType = 100
	SprogCANSOLIO   SprogModuleType = 101
)

var sprogModuleTable = newCodeTable(SpaceSprogModuleType, map[SprogModuleType]entry{
	SprogCANPiSPRG3: {"CANPiSPRG3", "Pi-SPROG 3 programmer/command station"},
	SprogCANSPROG3P: {"CANSPROG3P", "SPROG 3 Plus programmer/command station"},
	SprogCANSPROG:   {"CANSPROG", "CAN SPROG programmer/command station"},
	SprogCANSBOOST:  {"CANSBOOST", "System Booster"},
	SprogCANPiSPRGP: {"CANPiSPRGP", "Pi-SPROG 3 Plus programmer/command station"},
	SprogCANSOLNOID: {"CANSOLNOID", "8-channel (4-pairs) Solenoid I/O module"},
	SprogCANSERVOIO: {"CANSERVOIO", "8-channel Servo I/O module"},
	SprogCANISB:     {"CANISB", "CAN ISB Isolated CAN USB Interface"},
	SprogCANSOLIO:   {"CANSOLIO", "8-channel (4-pairs) Solenoid I/O module"},
})

func SprogModuleTypeFromCode(c uint8) (SprogModuleType, error) {
	return sprogModuleTable.fromCode(c)
}

func SprogModuleTypeFromCodeUnchecked(c uint8) SprogModuleType {
	return SprogModuleType(c)
}

func SprogModuleTypes() []SprogModuleType { return sprogModuleTable.list() }

func (t SprogModuleType) Code() uint8         { return uint8(t) }
func (t SprogModuleType) IsValid() bool       { return sprogModuleTable.valid(t) }
func (t SprogModuleType) String() string      { return sprogModuleTable.name(t) }
func (t SprogModuleType) Description() string { return sprogModuleTable.desc(t) }

// RocRailModuleType is a module type in the Rocrail namespace.
type RocRailModuleType uint8

const (
	RocRailCANGC1  RocRailModuleType = 1
	RocRailCANGC2  RocRailModuleType = 2
	RocRailCANGC3  RocRailModuleType = 3
	RocRailCANGC4  RocRailModuleType = 4
	RocRailCANGC5  RocRailModuleType = 5
	RocRailCANGC6  RocRailModuleType = 6
	RocRailCANGC7  RocRailModuleType = 7
	RocRailCANGC1e RocRailModuleType = 11
)

var rocRailModuleTable = newCodeTable(SpaceRocRailModuleType, map[RocRailModuleType]entry{
	RocRailCANGC1:  {"CANGC1", "RS232 PC interface"},
	RocRailCANGC2:  {"CANGC2", "16 I/O"},
	RocRailCANGC3:  {"CANGC3", "Command station (derived from cancmd)"},
	RocRailCANGC4:  {"CANGC4", "8 channel RFID reader"},
	RocRailCANGC5:  {"CANGC5", "Cab for fixed panels (derived from cancab)"},
	RocRailCANGC6:  {"CANGC6", "4 channel servo controller"},
	RocRailCANGC7:  {"CANGC7", "Fast clock module"},
	RocRailCANGC1e: {"CANGC1e", "CAN<->Ethernet interface"},
})

func RocRailModuleTypeFromCode(c uint8) (RocRailModuleType, error) {
	return rocRailModuleTable.fromCode(c)
}

func RocRailModuleTypeFromCodeUnchecked(c uint8) RocRailModuleType {
	return RocRailModuleType(c)
}

func RocRailModuleTypes() []RocRailModuleType { return rocRailModuleTable.list() }

func (t RocRailModuleType) Code() uint8         { return uint8(t) }
func (t RocRailModuleType) IsValid() bool       { return rocRailModuleTable.valid(t) }
func (t RocRailModuleType) String() string      { return rocRailModuleTable.name(t) }
func (t RocRailModuleType) Description() string { return rocRailModuleTable.desc(t) }

// SpectrumModuleType is a module type in the Spectrum Engineering namespace.
type SpectrumModuleType uint8

const (
	SpectrumAMCTRLR SpectrumModuleType = 1
	SpectrumDUALCAB SpectrumModuleType = 2
)

var spectrumModuleTable = newCodeTable(SpaceSpectrumModuleType, map[SpectrumModuleType]entry{
	SpectrumAMCTRLR: {"AMCTRLR", "Animation controller (firmware derived from cancmd)"},
	SpectrumDUALCAB: {"DUALCAB", "Dual cab based on cancab"},
})

func SpectrumModuleTypeFromCode(c uint8) (SpectrumModuleType, error) {
	return spectrumModuleTable.fromCode(c)
}

func SpectrumModuleTypeFromCodeUnchecked(c uint8) SpectrumModuleType {
	return SpectrumModuleType(c)
}

func (t SpectrumModuleType) Code() uint8         { return uint8(t) }
func (t SpectrumModuleType) IsValid() bool       { return spectrumModuleTable.valid(t) }
func (t SpectrumModuleType) String() string      { return spectrumModuleTable.name(t) }
func (t SpectrumModuleType) Description() string { return spectrumModuleTable.desc(t) }

// SysPixieModuleType is a module type in the SysPixie namespace.
type SysPixieModuleType uint8

const (
	SysPixieCANPMSense SysPixieModuleType = 1
)

var sysPixieModuleTable = newCodeTable(SpaceSysPixieModuleType, map[SysPixieModuleType]entry{
	SysPixieCANPMSense: {"CANPMSense", "Motorised point motor driver with current sense"},
})

func SysPixieModuleTypeFromCode(c uint8) (SysPixieModuleType, error) {
	return sysPixieModuleTable.fromCode(c)
}

func SysPixieModuleTypeFromCodeUnchecked(c uint8) SysPixieModuleType {
	return SysPixieModuleType(c)
}

func (t SysPixieModuleType) Code() uint8         { return uint8(t) }
func (t SysPixieModuleType) IsValid() bool       { return sysPixieModuleTable.valid(t) }
func (t SysPixieModuleType) String() string      { return sysPixieModuleTable.name(t) }
func (t SysPixieModuleType) Description() string { return sysPixieModuleTable.desc(t) }

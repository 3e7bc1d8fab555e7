package cbus

// ServiceType identifies a VLCB service as reported by RQSD/SD.
type ServiceType uint8

const (
	// ServiceInternal is used for behaviour implemented with the service
	// pattern; it is never listed in an RQSD response.
	ServiceInternal            ServiceType = 0
	ServiceMinimumNode         ServiceType = 1 // all modules must implement this
	ServiceNodeVariable        ServiceType = 2
	ServiceCANBus              ServiceType = 3 // CANID enumeration
	ServiceLegacyEventTeaching ServiceType = 4
	ServiceEventProducer       ServiceType = 5
	ServiceEventConsumer       ServiceType = 6
	ServiceEventTeaching       ServiceType = 7
	ServiceConsumeOwnEvents    ServiceType = 8
	ServiceEventAcknowledge    ServiceType = 9
	ServiceBootloader          ServiceType = 10
	ServiceStreaming           ServiceType = 17 // long messages
)

var serviceTypeTable = newCodeTable(SpaceServiceType, map[ServiceType]entry{
	ServiceInternal:            {"Internal", "Internal service"},
	ServiceMinimumNode:         {"MinimumNodeService", "The minimum node service"},
	ServiceNodeVariable:        {"NodeVariable", "The NV service"},
	ServiceCANBus:              {"CanBus", "CAN service"},
	ServiceLegacyEventTeaching: {"LegacyEventTeaching", "Old (CBUS) event teaching service"},
	ServiceEventProducer:       {"EventProducer", "Event producer service"},
	ServiceEventConsumer:       {"EventConsumer", "Event consumer service"},
	ServiceEventTeaching:       {"EventTeaching", "New event teaching service"},
	ServiceConsumeOwnEvents:    {"ConsumeOwnEvents", "Consume own events service"},
	ServiceEventAcknowledge:    {"EventAcknowledge", "Event acknowledge service"},
	ServiceBootloader:          {"Bootloader", "FCU/PIC bootloader service"},
	ServiceStreaming:           {"Streaming", "Streaming (Long Messages) service"},
})

// ServiceTypeFromCode validates c against the VLCB service list.
func ServiceTypeFromCode(c uint8) (ServiceType, error) {
	return serviceTypeTable.fromCode(c)
}

// ServiceTypeFromCodeUnchecked trusts that c is a defined service type.
func ServiceTypeFromCodeUnchecked(c uint8) ServiceType {
	return ServiceType(c)
}

// ServiceTypes returns every defined service type.
func ServiceTypes() []ServiceType { return serviceTypeTable.list() }

func (s ServiceType) Code() uint8         { return uint8(s) }
func (s ServiceType) IsValid() bool       { return serviceTypeTable.valid(s) }
func (s ServiceType) String() string      { return serviceTypeTable.name(s) }
func (s ServiceType) Description() string { return serviceTypeTable.desc(s) }

// Listed reports whether the service appears in service discovery.
func (s ServiceType) Listed() bool {
	return s != ServiceInternal && s.IsValid()
}

// ModeParam is the parameter byte of the MODE opcode.
type ModeParam uint8

const (
	ModeInSetup          ModeParam = 0
	ModeNormal           ModeParam = 1
	ModeEnableLearn      ModeParam = 8
	ModeDisableLearn     ModeParam = 9
	ModeEnableEventAck   ModeParam = 10
	ModeDisableEventAck  ModeParam = 11
	ModeEnableHeartbeat  ModeParam = 12
	ModeDisableHeartbeat ModeParam = 13
	ModeBootloader       ModeParam = 14
	ModeUninitialised    ModeParam = 255 // factory settings
)

var modeParamTable = newCodeTable(SpaceModeParam, map[ModeParam]entry{
	ModeInSetup:          {"InSetup", "Set up mode"},
	ModeNormal:           {"Normal", "Normal operation mode"},
	ModeEnableLearn:      {"EnableLearnMode", "Turn on learn mode"},
	ModeDisableLearn:     {"DisableLearnMode", "Turn off learn mode"},
	ModeEnableEventAck:   {"EnableEventAck", "Turn on event acknowledgements"},
	ModeDisableEventAck:  {"DisableEventAck", "Turn off event acknowledgements"},
	ModeEnableHeartbeat:  {"EnableHeartbeat", "Turn on heartbeat"},
	ModeDisableHeartbeat: {"DisableHeartbeat", "Turn off heartbeat"},
	ModeBootloader:       {"Bootloader", "PIC Boot loader mode"},
	ModeUninitialised:    {"Uninitialised", "Uninitialised / factory settings"},
})

// ModeParamFromCode validates a MODE parameter byte.
func ModeParamFromCode(c uint8) (ModeParam, error) {
	return modeParamTable.fromCode(c)
}

// ModeParamFromCodeUnchecked trusts that c is a defined MODE parameter.
func ModeParamFromCodeUnchecked(c uint8) ModeParam {
	return ModeParam(c)
}

// ModeParams returns every defined MODE parameter.
func ModeParams() []ModeParam { return modeParamTable.list() }

func (m ModeParam) Code() uint8         { return uint8(m) }
func (m ModeParam) IsValid() bool       { return modeParamTable.valid(m) }
func (m ModeParam) String() string      { return modeParamTable.name(m) }
func (m ModeParam) Description() string { return modeParamTable.desc(m) }

// IsExclusive reports whether the parameter selects one of the mutually
// exclusive operating modes rather than toggling a feature.
func (m ModeParam) IsExclusive() bool {
	switch m {
	case ModeInSetup, ModeNormal, ModeUninitialised, ModeBootloader:
		return true
	default:
		return false
	}
}

// GRSPCode is the result byte of a GRSP (general response) message.
type GRSPCode uint8

const (
	GRSPOk                      GRSPCode = 0
	GRSPInvalidMode             GRSPCode = 250
	GRSPInvalidCommandParameter GRSPCode = 251
	GRSPInvalidService          GRSPCode = 252
	GRSPInvalidDiagnostic       GRSPCode = 253
	GRSPUnknownNVMType          GRSPCode = 254
)

var grspTable = newCodeTable(SpaceGRSPCode, map[GRSPCode]entry{
	GRSPOk:                      {"Ok", "Success"},
	GRSPInvalidMode:             {"InvalidMode", "Invalid Mode"},
	GRSPInvalidCommandParameter: {"InvalidCommandParameter", "Invalid parameter in command"},
	GRSPInvalidService:          {"InvalidService", "Invalid service"},
	GRSPInvalidDiagnostic:       {"InvalidDiagnostic", "Invalid diagnostic"},
	GRSPUnknownNVMType:          {"UnknownPersistentMemoryType", "Unknown non volatile memory type"},
})

// GRSPCodeFromCode validates a GRSP result byte. GRSP also carries CMDERR
// values (1-13); those belong to the CommandError space.
func GRSPCodeFromCode(c uint8) (GRSPCode, error) {
	return grspTable.fromCode(c)
}

// GRSPCodeFromCodeUnchecked trusts that c is a defined GRSP code.
func GRSPCodeFromCodeUnchecked(c uint8) GRSPCode {
	return GRSPCode(c)
}

// GRSPCodes returns every defined GRSP code.
func GRSPCodes() []GRSPCode { return grspTable.list() }

func (g GRSPCode) Code() uint8         { return uint8(g) }
func (g GRSPCode) IsValid() bool       { return grspTable.valid(g) }
func (g GRSPCode) String() string      { return grspTable.name(g) }
func (g GRSPCode) Description() string { return grspTable.desc(g) }

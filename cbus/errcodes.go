package cbus

// ErrorCode is the status byte of an ERR message sent by a command station.
type ErrorCode uint8

const (
	ErrLocoStackFull     ErrorCode = 1
	ErrLocoAddressTaken  ErrorCode = 2
	ErrSessionNotPresent ErrorCode = 3
	ErrConsistEmpty      ErrorCode = 4
	ErrLocoNotFound      ErrorCode = 5
	ErrRxBufferOverflow  ErrorCode = 6
	ErrInvalidRequest    ErrorCode = 7
	ErrSessionCancelled  ErrorCode = 8
)

var errorCodeTable = newCodeTable(SpaceErrorCode, map[ErrorCode]entry{
	ErrLocoStackFull:     {"LocoStackIsFull", "Loco stack is full"},
	ErrLocoAddressTaken:  {"LocoAddressIsTaken", "Loco address is taken"},
	ErrSessionNotPresent: {"SessionIsNotPresent", "Session is not present"},
	ErrConsistEmpty:      {"EmptyConsist", "Consist is empty"},
	ErrLocoNotFound:      {"LocoWasNotFound", "Loco was not found"},
	ErrRxBufferOverflow:  {"RxBufferOverflow", "CAN receive buffer overflow"},
	ErrInvalidRequest:    {"InvalidRequest", "Invalid request"},
	ErrSessionCancelled:  {"SessionWasCancelled", "Session was cancelled"},
})

func ErrorCodeFromCode(c uint8) (ErrorCode, error) {
	return errorCodeTable.fromCode(c)
}

// ErrorCodeFromCodeUnchecked trusts that c is a defined ERR code.
func ErrorCodeFromCodeUnchecked(c uint8) ErrorCode {
	return ErrorCode(c)
}

func ErrorCodes() []ErrorCode { return errorCodeTable.list() }

func (e ErrorCode) Code() uint8         { return uint8(e) }
func (e ErrorCode) IsValid() bool       { return errorCodeTable.valid(e) }
func (e ErrorCode) String() string      { return errorCodeTable.name(e) }
func (e ErrorCode) Description() string { return errorCodeTable.desc(e) }

// CommandError is the error byte of a CMDERR message, reported by nodes
// while they are being configured. VLCB nodes also return these values
// inside GRSP.
type CommandError uint8

const (
	CmdErrInvalidCommand        CommandError = 1
	CmdErrNotInLearnMode        CommandError = 2
	CmdErrNotInSetupMode        CommandError = 3
	CmdErrTooManyEvents         CommandError = 4 // event storage exhausted
	CmdErrNoEV                  CommandError = 5
	CmdErrInvalidEVIndex        CommandError = 6
	CmdErrInvalidEvent          CommandError = 7
	CmdErrInvalidEventIndex     CommandError = 8
	CmdErrInvalidParamIndex     CommandError = 9
	CmdErrInvalidNVIndex        CommandError = 10
	CmdErrInvalidEVValue        CommandError = 11
	CmdErrInvalidNVValue        CommandError = 12
	CmdErrAnotherModuleLearning CommandError = 13
)

var commandErrorTable = newCodeTable(SpaceCommandError, map[CommandError]entry{
	CmdErrInvalidCommand:        {"InvalidCommand", "Invalid command"},
	CmdErrNotInLearnMode:        {"NotInLearnMode", "The module is not currently in learn mode"},
	CmdErrNotInSetupMode:        {"NotInSetupMode", "The module is not currently in setup mode"},
	CmdErrTooManyEvents:         {"TooManyEvents", "Too many events provisioned in module"},
	CmdErrNoEV:                  {"NoEv", "No Event-Variable"},
	CmdErrInvalidEVIndex:        {"InvalidEvIndex", "Invalid EV index"},
	CmdErrInvalidEvent:          {"InvalidEvent", "Invalid event"},
	CmdErrInvalidEventIndex:     {"InvalidEventIndex", "Invalid event index"},
	CmdErrInvalidParamIndex:     {"InvalidParamIndex", "Invalid param index"},
	CmdErrInvalidNVIndex:        {"InvalidNvIndex", "Invalid NV index"},
	CmdErrInvalidEVValue:        {"InvalidEvValue", "Invalid EV value"},
	CmdErrInvalidNVValue:        {"InvalidNvValue", "Invalid NV value"},
	CmdErrAnotherModuleLearning: {"AnotherModuleIsInLearnMode", "Another module is already in learn mode"},
})

// CommandErrorFromCode validates a CMDERR byte.
func CommandErrorFromCode(c uint8) (CommandError, error) {
	return commandErrorTable.fromCode(c)
}

// CommandErrorFromCodeUnchecked trusts that c is a defined CMDERR value.
func CommandErrorFromCodeUnchecked(c uint8) CommandError {
	return CommandError(c)
}

// CommandErrors returns every defined CMDERR value.
func CommandErrors() []CommandError { return commandErrorTable.list() }

func (e CommandError) Code() uint8         { return uint8(e) }
func (e CommandError) IsValid() bool       { return commandErrorTable.valid(e) }
func (e CommandError) String() string      { return commandErrorTable.name(e) }
func (e CommandError) Description() string { return commandErrorTable.desc(e) }

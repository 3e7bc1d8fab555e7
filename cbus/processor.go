package cbus

import "fmt"

// MicrochipProcessor is a Microchip CPU code (parameter 9 when parameter 19
// is ProcessorMicrochip).
type MicrochipProcessor uint8

func MicrochipProcessorFromCode(c uint8) (MicrochipProcessor, error) {
	return microchipTable.fromCode(c)
}

func MicrochipProcessorFromCodeUnchecked(c uint8) MicrochipProcessor {
	return MicrochipProcessor(c)
}

func MicrochipProcessors() []MicrochipProcessor { return microchipTable.list() }

func (p MicrochipProcessor) Code() uint8         { return uint8(p) }
func (p MicrochipProcessor) IsValid() bool       { return microchipTable.valid(p) }
func (p MicrochipProcessor) String() string      { return microchipTable.name(p) }
func (p MicrochipProcessor) Description() string { return microchipTable.desc(p) }

// ArmProcessor is an ARM CPU code.
type ArmProcessor uint8

const (
	ArmARM1176JZFS ArmProcessor = 1
	ArmCortexA7    ArmProcessor = 2
	ArmCortexA53   ArmProcessor = 3
)

var armTable = newCodeTable(SpaceArmProcessor, map[ArmProcessor]entry{
	ArmARM1176JZFS: {"ARM1176JZF_S", "As used in Raspberry Pi"},
	ArmCortexA7:    {"ARMCortex_A7", "As used in Raspberry Pi 2"},
	ArmCortexA53:   {"ARMCortex_A53", "As used in Raspberry Pi 3"},
})

func ArmProcessorFromCode(c uint8) (ArmProcessor, error) {
	return armTable.fromCode(c)
}

func ArmProcessorFromCodeUnchecked(c uint8) ArmProcessor {
	return ArmProcessor(c)
}

func ArmProcessors() []ArmProcessor { return armTable.list() }

func (p ArmProcessor) Code() uint8         { return uint8(p) }
func (p ArmProcessor) IsValid() bool       { return armTable.valid(p) }
func (p ArmProcessor) String() string      { return armTable.name(p) }
func (p ArmProcessor) Description() string { return armTable.desc(p) }

// CPUManufacturerID is the 4-byte id read from the chip configuration
// space at run time (parameters 15-18).
type CPUManufacturerID [4]byte

func (id CPUManufacturerID) String() string {
	return fmt.Sprintf("%02X%02X%02X%02X", id[0], id[1], id[2], id[3])
}

// ProcessorKind selects the arm of a Processor.
type ProcessorKind uint8

const (
	ProcessorKindUnknown ProcessorKind = iota
	ProcessorKindMicrochip
	ProcessorKindArm
	ProcessorKindAtmel
)

func (k ProcessorKind) String() string {
	switch k {
	case ProcessorKindMicrochip:
		return "Microchip"
	case ProcessorKindArm:
		return "Arm"
	case ProcessorKindAtmel:
		return "Atmel"
	default:
		return "Unknown"
	}
}

// Processor identifies a module CPU from the (cpu id, cpu manufacturer)
// parameter pair. Every pair has a representation: pairs that no registry
// claims keep both raw bytes in the Unknown arm.
type Processor struct {
	kind         ProcessorKind
	cpuID        uint8
	manufacturer uint8
}

func NewMicrochipProcessor(p MicrochipProcessor) Processor {
	return Processor{kind: ProcessorKindMicrochip, cpuID: uint8(p), manufacturer: uint8(ProcessorMicrochip)}
}

func NewArmProcessor(p ArmProcessor) Processor {
	return Processor{kind: ProcessorKindArm, cpuID: uint8(p), manufacturer: uint8(ProcessorARM)}
}

// NewAtmelProcessor keeps the raw cpu id; Atmel parts have no registry.
func NewAtmelProcessor(cpuID uint8) Processor {
	return Processor{kind: ProcessorKindAtmel, cpuID: cpuID, manufacturer: uint8(ProcessorAtmel)}
}

func UnknownProcessor(cpuID, manufacturer uint8) Processor {
	return Processor{kind: ProcessorKindUnknown, cpuID: cpuID, manufacturer: manufacturer}
}

// ProcessorFromCodes decodes parameters 9 and 19. It never fails.
func ProcessorFromCodes(cpuID, manufacturer uint8) Processor {
	switch ProcessorManufacturer(manufacturer) {
	case ProcessorMicrochip:
		if p, err := MicrochipProcessorFromCode(cpuID); err == nil {
			return NewMicrochipProcessor(p)
		}
	case ProcessorARM:
		if p, err := ArmProcessorFromCode(cpuID); err == nil {
			return NewArmProcessor(p)
		}
	case ProcessorAtmel:
		return NewAtmelProcessor(cpuID)
	}
	return UnknownProcessor(cpuID, manufacturer)
}

// ProcessorFromCodesChecked fails when the pair would decode to Unknown. The
// error names the processor space when the manufacturer is known and the
// processor manufacturer space otherwise.
func ProcessorFromCodesChecked(cpuID, manufacturer uint8) (Processor, error) {
	if _, err := ProcessorManufacturerFromCode(manufacturer); err != nil {
		return Processor{}, err
	}
	p := ProcessorFromCodes(cpuID, manufacturer)
	if p.kind == ProcessorKindUnknown {
		return Processor{}, &UndefinedCodeError{Space: SpaceProcessor, Value: cpuID}
	}
	return p, nil
}

// ProcessorFromCodesUnchecked selects the arm from the manufacturer alone.
func ProcessorFromCodesUnchecked(cpuID, manufacturer uint8) Processor {
	switch ProcessorManufacturer(manufacturer) {
	case ProcessorMicrochip:
		return NewMicrochipProcessor(MicrochipProcessorFromCodeUnchecked(cpuID))
	case ProcessorARM:
		return NewArmProcessor(ArmProcessorFromCodeUnchecked(cpuID))
	case ProcessorAtmel:
		return NewAtmelProcessor(cpuID)
	default:
		return UnknownProcessor(cpuID, manufacturer)
	}
}

func (p Processor) Kind() ProcessorKind { return p.kind }

// CPUID and ManufacturerCode return the parameter 9 and 19 bytes.
func (p Processor) CPUID() uint8            { return p.cpuID }
func (p Processor) ManufacturerCode() uint8 { return p.manufacturer }

func (p Processor) Microchip() (MicrochipProcessor, bool) {
	return MicrochipProcessor(p.cpuID), p.kind == ProcessorKindMicrochip
}

func (p Processor) Arm() (ArmProcessor, bool) {
	return ArmProcessor(p.cpuID), p.kind == ProcessorKindArm
}

func (p Processor) IsAtmel() bool   { return p.kind == ProcessorKindAtmel }
func (p Processor) IsUnknown() bool { return p.kind == ProcessorKindUnknown }

func (p Processor) String() string {
	switch p.kind {
	case ProcessorKindMicrochip:
		return "Microchip/" + MicrochipProcessor(p.cpuID).String()
	case ProcessorKindArm:
		return "Arm/" + ArmProcessor(p.cpuID).String()
	case ProcessorKindAtmel:
		return fmt.Sprintf("Atmel(0x%02X)", p.cpuID)
	default:
		return fmt.Sprintf("Unknown(cpu=0x%02X, manufacturer=0x%02X)", p.cpuID, p.manufacturer)
	}
}

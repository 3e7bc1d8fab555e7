package cbus

// Manufacturer is a MERG registered manufacturer id (parameter 1). It is
// the discriminator for the vendor module-type namespaces.
type Manufacturer uint8

const (
	// ManufacturerDevelopment is for manufacturers without an id yet and for
	// library testing. Do not use in production.
	ManufacturerDevelopment Manufacturer = 13
	ManufacturerSPROG       Manufacturer = 44
	ManufacturerRocRail     Manufacturer = 70
	ManufacturerSpectrum    Manufacturer = 80
	ManufacturerMERG        Manufacturer = 165
	ManufacturerRME         Manufacturer = 248
	ManufacturerSysPixie    Manufacturer = 249
	ManufacturerMERGVLCB    Manufacturer = 250
)

var manufacturerTable = newCodeTable(SpaceManufacturer, map[Manufacturer]entry{
	ManufacturerDevelopment: {"Development", "Development mode manufacturer"},
	ManufacturerSPROG:       {"SPROG", "https://www.sprog-dcc.co.uk/"},
	ManufacturerRocRail:     {"ROCRAIL", "http://www.rocrail.net"},
	ManufacturerSpectrum:    {"SPECTRUM", "http://animatedmodeler.com (Spectrum Engineering)"},
	ManufacturerMERG:        {"MERG", "https://www.merg.co.uk"},
	ManufacturerRME:         {"RME", "http://rmeuk.com (Railway Modelling Experts Limited)"},
	ManufacturerSysPixie:    {"SYSPIXIE", "Konrad Orlowski"},
	ManufacturerMERGVLCB:    {"MERG_VLCB", "Range of MERG VLCB modules"},
})

// ManufacturerFromCode validates a manufacturer id.
func ManufacturerFromCode(c uint8) (Manufacturer, error) {
	return manufacturerTable.fromCode(c)
}

// ManufacturerFromCodeUnchecked trusts that c is a registered manufacturer.
// Unregistered ids are still usable as a module-type hint; they decode to
// the generic module type.
func ManufacturerFromCodeUnchecked(c uint8) Manufacturer {
	return Manufacturer(c)
}

// ManufacturerFromName finds a manufacturer by name ("MERG", "sprog").
func ManufacturerFromName(name string) (Manufacturer, bool) {
	return manufacturerTable.fromName(name)
}

// Manufacturers returns every registered manufacturer.
func Manufacturers() []Manufacturer { return manufacturerTable.list() }

func (m Manufacturer) Code() uint8         { return uint8(m) }
func (m Manufacturer) IsValid() bool       { return manufacturerTable.valid(m) }
func (m Manufacturer) String() string      { return manufacturerTable.name(m) }
func (m Manufacturer) Description() string { return manufacturerTable.desc(m) }

// ProcessorManufacturer is the CPU manufacturer code (parameter 19). It is
// the discriminator for the processor code spaces.
type ProcessorManufacturer uint8

const (
	ProcessorMicrochip ProcessorManufacturer = 1
	ProcessorAtmel     ProcessorManufacturer = 2
	ProcessorARM       ProcessorManufacturer = 3
)

var processorManufacturerTable = newCodeTable(SpaceProcessorManufacturer, map[ProcessorManufacturer]entry{
	ProcessorMicrochip: {"Microchip", "Microchip Technology"},
	ProcessorAtmel:     {"Atmel", "Atmel"},
	ProcessorARM:       {"Arm", "ARM"},
})

func ProcessorManufacturerFromCode(c uint8) (ProcessorManufacturer, error) {
	return processorManufacturerTable.fromCode(c)
}

func ProcessorManufacturerFromCodeUnchecked(c uint8) ProcessorManufacturer {
	return ProcessorManufacturer(c)
}

func ProcessorManufacturers() []ProcessorManufacturer { return processorManufacturerTable.list() }

func (m ProcessorManufacturer) Code() uint8         { return uint8(m) }
func (m ProcessorManufacturer) IsValid() bool       { return processorManufacturerTable.valid(m) }
func (m ProcessorManufacturer) String() string      { return processorManufacturerTable.name(m) }
func (m ProcessorManufacturer) Description() string { return processorManufacturerTable.desc(m) }

package cbus

// StmodMode is the speed step mode carried by STMOD.
type StmodMode uint8

const (
	StmodStep128           StmodMode = 0
	StmodStep14            StmodMode = 1
	StmodStep28Interleaved StmodMode = 2
	StmodStep28            StmodMode = 3
)

var stmodModeTable = newCodeTable(SpaceStmodMode, map[StmodMode]entry{
	StmodStep128:           {"Step128", "128-step speed mode"},
	StmodStep14:            {"Step14", "14-step speed mode"},
	StmodStep28Interleaved: {"Step28Interleaved", "interleaved 28-step speed mode"},
	StmodStep28:            {"Step28", "28-step speed mode"},
})

func StmodModeFromCode(c uint8) (StmodMode, error) { return stmodModeTable.fromCode(c) }
func StmodModeFromCodeUnchecked(c uint8) StmodMode { return StmodMode(c) }

func (m StmodMode) Code() uint8         { return uint8(m) }
func (m StmodMode) IsValid() bool       { return stmodModeTable.valid(m) }
func (m StmodMode) String() string      { return stmodModeTable.name(m) }
func (m StmodMode) Description() string { return stmodModeTable.desc(m) }

// SStat is the service mode status returned by SSTAT.
type SStat uint8

const (
	SStatNoAck    SStat = 1
	SStatOverload SStat = 2
	SStatWriteAck SStat = 3
	SStatBusy     SStat = 4
	SStatCVError  SStat = 5
)

var sstatTable = newCodeTable(SpaceSStat, map[SStat]entry{
	SStatNoAck:    {"NoAck", "No acknowledge"},
	SStatOverload: {"Ovld", "Overload on programming track"},
	SStatWriteAck: {"WriteAck", "Write acknowledged"},
	SStatBusy:     {"Busy", "Command station busy"},
	SStatCVError:  {"CvError", "CV out of range"},
})

func SStatFromCode(c uint8) (SStat, error) { return sstatTable.fromCode(c) }
func SStatFromCodeUnchecked(c uint8) SStat { return SStat(c) }

func (s SStat) Code() uint8         { return uint8(s) }
func (s SStat) IsValid() bool       { return sstatTable.valid(s) }
func (s SStat) String() string      { return sstatTable.name(s) }
func (s SStat) Description() string { return sstatTable.desc(s) }

// CabSigAspect1 is the first aspect byte of a CABDAT cab signal.
type CabSigAspect1 uint8

const (
	CabSigDanger             CabSigAspect1 = 0
	CabSigCaution            CabSigAspect1 = 1
	CabSigPreliminaryCaution CabSigAspect1 = 2
	CabSigProceed            CabSigAspect1 = 3
	CabSigCallOn             CabSigAspect1 = 4 // main aspect usually at danger
	CabSigTheatre            CabSigAspect1 = 8
)

var cabSigAspect1Table = newCodeTable(SpaceCabSigAspect1, map[CabSigAspect1]entry{
	CabSigDanger:             {"Danger", "Danger"},
	CabSigCaution:            {"Caution", "Caution"},
	CabSigPreliminaryCaution: {"PreliminaryCaution", "Preliminary caution"},
	CabSigProceed:            {"Proceed", "Proceed"},
	CabSigCallOn:             {"CallOn", "Set bit 2 for call-on - main aspect will usually be at danger"},
	CabSigTheatre:            {"Theatre", "Set bit 3 to 0 for upper nibble is feather location, set 1 for upper nibble is theatre code"},
})

func CabSigAspect1FromCode(c uint8) (CabSigAspect1, error) { return cabSigAspect1Table.fromCode(c) }
func CabSigAspect1FromCodeUnchecked(c uint8) CabSigAspect1 { return CabSigAspect1(c) }

func (a CabSigAspect1) Code() uint8         { return uint8(a) }
func (a CabSigAspect1) IsValid() bool       { return cabSigAspect1Table.valid(a) }
func (a CabSigAspect1) String() string      { return cabSigAspect1Table.name(a) }
func (a CabSigAspect1) Description() string { return cabSigAspect1Table.desc(a) }

// CabSigAspect2 is the second aspect byte of a CABDAT cab signal.
type CabSigAspect2 uint8

const (
	CabSigLit   CabSigAspect2 = 0
	CabSigLunar CabSigAspect2 = 1
)

var cabSigAspect2Table = newCodeTable(SpaceCabSigAspect2, map[CabSigAspect2]entry{
	CabSigLit:   {"Lit", "Set bit 0 to indicate lit"},
	CabSigLunar: {"Lunar", "Set bit 1 for lunar indication"},
})

func CabSigAspect2FromCode(c uint8) (CabSigAspect2, error) { return cabSigAspect2Table.fromCode(c) }
func CabSigAspect2FromCodeUnchecked(c uint8) CabSigAspect2 { return CabSigAspect2(c) }

func (a CabSigAspect2) Code() uint8         { return uint8(a) }
func (a CabSigAspect2) IsValid() bool       { return cabSigAspect2Table.valid(a) }
func (a CabSigAspect2) String() string      { return cabSigAspect2Table.name(a) }
func (a CabSigAspect2) Description() string { return cabSigAspect2Table.desc(a) }

// CabDatOpcode is the sub-opcode in the first data byte of CABDAT.
type CabDatOpcode uint8

const CabDatCabSig CabDatOpcode = 1

var cabDatOpcodeTable = newCodeTable(SpaceCabDatOpcode, map[CabDatOpcode]entry{
	CabDatCabSig: {"CABSIG", "Cab signalling"},
})

func CabDatOpcodeFromCode(c uint8) (CabDatOpcode, error) { return cabDatOpcodeTable.fromCode(c) }
func CabDatOpcodeFromCodeUnchecked(c uint8) CabDatOpcode { return CabDatOpcode(c) }

func (o CabDatOpcode) Code() uint8         { return uint8(o) }
func (o CabDatOpcode) IsValid() bool       { return cabDatOpcodeTable.valid(o) }
func (o CabDatOpcode) String() string      { return cabDatOpcodeTable.name(o) }
func (o CabDatOpcode) Description() string { return cabDatOpcodeTable.desc(o) }
